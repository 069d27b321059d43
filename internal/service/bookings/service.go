package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/booking"
	listingRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/listing"
	slotRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/slot"
	"github.com/m04kA/BNB-RentalService/internal/service/bookings/models"
)

// Service сервис активных бронирований: отмена, аренды пользователя,
// проверка права на оценку хоста
type Service struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	listingRepo  ListingRepository
	ledgerRepo   LedgerRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	listingRepo ListingRepository,
	ledgerRepo LedgerRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		listingRepo:  listingRepo,
		ledgerRepo:   ledgerRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Cancel отменяет бронирование слота
// Разрешено арендатору бронирования или хосту листинга
// Слот возвращается в open с сохраненной ценой, отмена пишется в журнал
func (s *Service) Cancel(ctx context.Context, slotID, userID int64) error {
	s.logger.Info("Cancel: slot=%d, user=%d", slotID, userID)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		slot, err := s.slotRepo.GetByID(ctx, slotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Cancel - failed to get slot: %v", ErrInternal, err)
		}

		booking, err := s.bookingRepo.GetBySlotID(ctx, slotID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: slot=%d has no active booking", slotID)
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - failed to get booking: %v", ErrInternal, err)
		}

		listing, err := s.listingRepo.GetByID(ctx, slot.ListingID)
		if err != nil {
			if errors.Is(err, listingRepo.ErrListingNotFound) {
				return ErrListingNotFound
			}
			return fmt.Errorf("%w: Cancel - failed to get listing: %v", ErrInternal, err)
		}

		if booking.RenterID != userID && listing.OwnerID != userID {
			s.logger.Warn("Cancel: user=%d is neither the renter nor the host of slot=%d", userID, slotID)
			return ErrAccessDenied
		}

		if err := s.bookingRepo.DeleteBySlotID(ctx, slotID); err != nil {
			return fmt.Errorf("%w: Cancel - failed to delete booking: %v", ErrInternal, err)
		}

		if err := s.slotRepo.MarkOpen(ctx, slotID); err != nil {
			return fmt.Errorf("%w: Cancel - failed to reopen slot: %v", ErrInternal, err)
		}

		event := &domain.LedgerEvent{
			SlotID:    slotID,
			ListingID: slot.ListingID,
			RenterID:  booking.RenterID,
			SlotDate:  slot.Date,
			Price:     slot.RentalPrice,
			ActorID:   userID,
		}
		if err := s.ledgerRepo.RecordCancellation(ctx, event); err != nil {
			return fmt.Errorf("%w: Cancel - failed to record cancellation: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: slot=%d booking cancelled by user=%d", slotID, userID)
	return nil
}

// GetUserRentals возвращает аренды пользователя:
// предстоящие (начиная с сегодня) и прошедшие, по возрастанию даты
func (s *Service) GetUserRentals(ctx context.Context, userID int64) (*models.RentalsResponse, error) {
	s.logger.Info("GetUserRentals: user=%d", userID)

	today := truncateToDay(s.timeProvider.Now())

	upcoming, err := s.bookingRepo.ListRentalsForRenter(ctx, userID, today, false)
	if err != nil {
		s.logger.Error("GetUserRentals: failed to list upcoming rentals for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserRentals - repository error: %v", ErrInternal, err)
	}

	past, err := s.bookingRepo.ListRentalsForRenter(ctx, userID, today, true)
	if err != nil {
		s.logger.Error("GetUserRentals: failed to list past rentals for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserRentals - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserRentals: user=%d has %d upcoming and %d past rentals",
		userID, len(upcoming), len(past))

	return &models.RentalsResponse{
		UserID:   userID,
		Upcoming: models.FromDomainRentalList(upcoming),
		Past:     models.FromDomainRentalList(past),
	}, nil
}

// CheckRatingEligibility проверяет, вправе ли пользователь оценить хоста:
// в журнале должно быть хотя бы одно бронирование листинга этого хоста
func (s *Service) CheckRatingEligibility(ctx context.Context, renterID, hostID int64) (*models.EligibilityResponse, error) {
	s.logger.Info("CheckRatingEligibility: renter=%d, host=%d", renterID, hostID)

	eligible, err := s.ledgerRepo.HasBookingHistory(ctx, renterID, hostID)
	if err != nil {
		s.logger.Error("CheckRatingEligibility: ledger error for renter=%d, host=%d: %v", renterID, hostID, err)
		return nil, fmt.Errorf("%w: CheckRatingEligibility - ledger error: %v", ErrInternal, err)
	}

	return &models.EligibilityResponse{
		RenterID: renterID,
		HostID:   hostID,
		Eligible: eligible,
	}, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
