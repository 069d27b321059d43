package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	listingRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/listing"
	slotRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/slot"
	"github.com/m04kA/BNB-RentalService/internal/service/slots/models"
)

// Service сервис жизненного цикла слотов со стороны хоста:
// установка цены, снятие с публикации, удаление, просмотр расписания
// Бронирование и отмена живут в usecase/book_slot и service/bookings
type Service struct {
	slotRepo     SlotRepository
	listingRepo  ListingRepository
	ledgerRepo   LedgerRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	listingRepo ListingRepository,
	ledgerRepo LedgerRepository,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:     slotRepo,
		listingRepo:  listingRepo,
		ledgerRepo:   ledgerRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetPrice устанавливает цену аренды слота
// Разрешено только владельцу листинга и только для open слотов
// с непрошедшей датой
func (s *Service) SetPrice(ctx context.Context, slotID, userID int64, price float64) (*models.SlotView, error) {
	s.logger.Info("SetPrice: slot=%d, user=%d, price=%.2f", slotID, userID, price)

	if price < domain.MinRentalPrice {
		s.logger.Warn("SetPrice: invalid price %.2f for slot=%d", price, slotID)
		return nil, ErrInvalidPrice
	}

	slot, _, err := s.getOwnedSlot(ctx, slotID, userID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	if err := s.checkMutable(slot, now, "SetPrice"); err != nil {
		return nil, err
	}

	if err := s.slotRepo.SetPrice(ctx, slotID, price); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("SetPrice: repository error for slot=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: SetPrice - repository error: %v", ErrInternal, err)
	}

	slot.RentalPrice = &price

	s.logger.Info("SetPrice: slot=%d priced at %.2f", slotID, price)
	view := models.FromDomainSlot(slot, now)
	return &view, nil
}

// Retract снимает слот с публикации (open -> retracted)
// Обратного перехода нет: хост удаляет слот и создает заново
func (s *Service) Retract(ctx context.Context, slotID, userID int64) error {
	s.logger.Info("Retract: slot=%d, user=%d", slotID, userID)

	slot, _, err := s.getOwnedSlot(ctx, slotID, userID)
	if err != nil {
		return err
	}

	now := s.timeProvider.Now()
	if err := s.checkMutable(slot, now, "Retract"); err != nil {
		return err
	}

	if err := s.slotRepo.MarkRetracted(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotUnavailable) {
			s.logger.Warn("Retract: slot=%d state changed concurrently", slotID)
			return ErrConflict
		}
		s.logger.Error("Retract: repository error for slot=%d: %v", slotID, err)
		return fmt.Errorf("%w: Retract - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Retract: slot=%d retracted", slotID)
	return nil
}

// Delete удаляет слот
// Слот с активным бронированием удалить нельзя: сначала отмена
func (s *Service) Delete(ctx context.Context, slotID, userID int64) error {
	s.logger.Info("Delete: slot=%d, user=%d", slotID, userID)

	slot, _, err := s.getOwnedSlot(ctx, slotID, userID)
	if err != nil {
		return err
	}

	if slot.Status == domain.StatusBooked {
		s.logger.Warn("Delete: slot=%d has an active booking", slotID)
		return ErrSlotBooked
	}

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot=%d: %v", slotID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: slot=%d deleted", slotID)
	return nil
}

// GetSchedule возвращает расписание листинга: предстоящие слоты
// (начиная с сегодня, по возрастанию даты) и прошедшие
// Доступно только владельцу листинга
func (s *Service) GetSchedule(ctx context.Context, listingID, userID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: listing=%d, user=%d", listingID, userID)

	listing, err := s.getListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID != userID {
		s.logger.Warn("GetSchedule: user=%d is not the owner of listing=%d", userID, listingID)
		return nil, ErrAccessDenied
	}

	now := s.timeProvider.Now()
	today := truncateToDay(now)

	upcoming, err := s.slotRepo.ListForListing(ctx, listingID, today)
	if err != nil {
		s.logger.Error("GetSchedule: failed to list upcoming slots for listing=%d: %v", listingID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	past, err := s.slotRepo.ListPastForListing(ctx, listingID, today)
	if err != nil {
		s.logger.Error("GetSchedule: failed to list past slots for listing=%d: %v", listingID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: listing=%d has %d upcoming and %d past slots",
		listingID, len(upcoming), len(past))

	return &models.ScheduleResponse{
		ListingID: listingID,
		Upcoming:  models.FromDomainSlotList(upcoming, now),
		Past:      models.FromDomainSlotList(past, now),
	}, nil
}

// GetSlotInfo возвращает слот с историей отмен из журнала
// Доступно только владельцу листинга
func (s *Service) GetSlotInfo(ctx context.Context, slotID, userID int64) (*models.SlotInfoResponse, error) {
	s.logger.Info("GetSlotInfo: slot=%d, user=%d", slotID, userID)

	slot, _, err := s.getOwnedSlot(ctx, slotID, userID)
	if err != nil {
		return nil, err
	}

	cancellations, err := s.ledgerRepo.ListCancellationsBySlot(ctx, slotID)
	if err != nil {
		s.logger.Error("GetSlotInfo: failed to list cancellations for slot=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: GetSlotInfo - ledger error: %v", ErrInternal, err)
	}

	return &models.SlotInfoResponse{
		Slot:          models.FromDomainSlot(slot, s.timeProvider.Now()),
		Cancellations: models.FromDomainCancellations(cancellations),
	}, nil
}

// Вспомогательные методы

// getOwnedSlot получает слот и его листинг, проверяя владение
func (s *Service) getOwnedSlot(ctx context.Context, slotID, userID int64) (*domain.BookingSlot, *domain.Listing, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("slot=%d not found", slotID)
			return nil, nil, ErrSlotNotFound
		}
		s.logger.Error("failed to get slot=%d: %v", slotID, err)
		return nil, nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	listing, err := s.getListing(ctx, slot.ListingID)
	if err != nil {
		return nil, nil, err
	}

	if listing.OwnerID != userID {
		s.logger.Warn("user=%d is not the owner of listing=%d", userID, listing.ID)
		return nil, nil, ErrAccessDenied
	}

	return slot, listing, nil
}

func (s *Service) getListing(ctx context.Context, listingID int64) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			s.logger.Warn("listing=%d not found", listingID)
			return nil, ErrListingNotFound
		}
		s.logger.Error("failed to get listing=%d: %v", listingID, err)
		return nil, fmt.Errorf("%w: failed to get listing: %v", ErrInternal, err)
	}
	return listing, nil
}

// checkMutable проверяет, что слот можно изменять (set price / retract):
// дата не прошла, слот не забронирован и не снят с публикации
func (s *Service) checkMutable(slot *domain.BookingSlot, now time.Time, op string) error {
	switch slot.StateAt(now) {
	case domain.StatePast:
		s.logger.Warn("%s: slot=%d date is in the past", op, slot.ID)
		return ErrSlotExpired
	case domain.StateBooked:
		s.logger.Warn("%s: slot=%d has an active booking", op, slot.ID)
		return ErrSlotBooked
	case domain.StateRetracted:
		s.logger.Warn("%s: slot=%d is retracted", op, slot.ID)
		return ErrSlotRetracted
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
