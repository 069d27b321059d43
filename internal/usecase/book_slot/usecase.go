package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/booking"
	listingRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/listing"
	slotRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/slot"
	userClient "github.com/m04kA/BNB-RentalService/internal/integrations/userservice"
	"github.com/m04kA/BNB-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/BNB-RentalService/pkg/txmanager"
)

// UseCase use case бронирования слота
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	listingRepo  ListingRepository
	ledgerRepo   LedgerRepository
	userClient   UserServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	listingRepo ListingRepository,
	ledgerRepo LedgerRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		listingRepo:  listingRepo,
		ledgerRepo:   ledgerRepo,
		userClient:   userClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования слота
// Использует сериализуемую транзакцию и условный UPDATE, чтобы из двух
// конкурентных запросов на один слот выиграл ровно один
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: slot=%d, user=%d", req.SlotID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем роль арендатора в UserService
	user, err := uc.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("BookSlot: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("BookSlot: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %w", ErrInternal, err)
	}
	if !user.IsRenter {
		uc.logger.Warn("BookSlot: user id=%d is not a renter", req.UserID)
		return nil, ErrNotRenter
	}

	// Переменные для хранения результата
	var (
		result *domain.Booking
		slot   *domain.BookingSlot
	)

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем слот с блокировкой (FOR UPDATE)
		s, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			uc.logger.Error("BookSlot: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %w", ErrInternal, err)
		}

		// 4.2. Хост не может бронировать собственный листинг
		listing, err := uc.listingRepo.GetByID(txCtx, s.ListingID)
		if err != nil {
			if errors.Is(err, listingRepo.ErrListingNotFound) {
				return ErrListingNotFound
			}
			uc.logger.Error("BookSlot: failed to get listing id=%d: %v", s.ListingID, err)
			return fmt.Errorf("%w: failed to get listing: %w", ErrInternal, err)
		}
		if listing.OwnerID == req.UserID {
			return ErrOwnListing
		}

		// 4.3. Проверяем состояние слота
		if err := validateSlotBookable(s, now); err != nil {
			return err
		}

		// 4.4. Условный UPDATE: помечаем слот забронированным
		// только если он все еще open и с ценой
		if err := uc.slotRepo.MarkBooked(txCtx, req.SlotID, req.UserID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotUnavailable) {
				uc.logger.Warn("BookSlot: slot id=%d lost to a concurrent booking", req.SlotID)
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("BookSlot: failed to mark slot id=%d booked: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to mark slot booked: %w", ErrInternal, err)
		}

		// 4.5. Создаем запись активного бронирования
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			SlotID:    s.ID,
			ListingID: s.ListingID,
			RenterID:  req.UserID,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotAlreadyBooked) {
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("BookSlot: failed to create booking for slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		// 4.6. Пишем событие бронирования в журнал
		event := &domain.LedgerEvent{
			SlotID:    s.ID,
			ListingID: s.ListingID,
			RenterID:  req.UserID,
			SlotDate:  s.Date,
			Price:     s.RentalPrice,
			ActorID:   req.UserID,
		}
		if err := uc.ledgerRepo.RecordBooking(txCtx, event); err != nil {
			uc.logger.Error("BookSlot: failed to record booking event for slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to record booking event: %w", ErrInternal, err)
		}

		result = created
		slot = s
		return nil
	})

	if err != nil {
		// Проигрыш сериализации - это та же гонка за слот
		if errors.Is(err, txmanager.ErrSerialization) || errors.Is(err, simpletxmanager.ErrSerialization) {
			uc.logger.Warn("BookSlot: slot=%d serialization conflict", req.SlotID)
			return nil, ErrSlotAlreadyBooked
		}
		return nil, err
	}

	uc.logger.Info("BookSlot: slot=%d booked by user=%d, booking id=%d",
		req.SlotID, req.UserID, result.ID)

	return &Response{
		BookingID: result.ID,
		SlotID:    slot.ID,
		ListingID: slot.ListingID,
		Date:      slot.Date,
		Price:     *slot.RentalPrice,
		BookedAt:  result.CreatedAt,
	}, nil
}
