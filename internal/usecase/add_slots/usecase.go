package add_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	listingRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/listing"
	slotRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/slot"
	userClient "github.com/m04kA/BNB-RentalService/internal/integrations/userservice"
)

// UseCase use case добавления слотов доступности
type UseCase struct {
	slotRepo     SlotRepository
	listingRepo  ListingRepository
	userClient   UserServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	listingRepo ListingRepository,
	userClient UserServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		listingRepo:  listingRepo,
		userClient:   userClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает слоты на каждую дату диапазона [DateFrom, DateTo]
// Даты с существующим слотом пропускаются, слот не перезаписывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddSlots: listing=%d, user=%d, from=%s, to=%s",
		req.ListingID, req.UserID,
		req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddSlots: validation failed: %v", err)
		return nil, err
	}

	from := truncateToDay(req.DateFrom)
	to := truncateToDay(req.DateTo)
	if from.After(to) {
		uc.logger.Warn("AddSlots: range start %s is after end %s",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat))
		return nil, ErrInvalidRange
	}

	// 2. Проверяем роль хоста и владение листингом
	if err := uc.checkHostOwnsListing(ctx, req.ListingID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Создаем слоты по дням
	return uc.createRange(ctx, req.ListingID, from, to)
}

// ExecuteNextWeek создает семь слотов, продолжающих расписание листинга:
// со дня после последнего существующего слота, либо с сегодняшнего дня,
// если слотов нет или расписание закончилось в прошлом
func (uc *UseCase) ExecuteNextWeek(ctx context.Context, req *NextWeekRequest) (*Response, error) {
	uc.logger.Info("AddNextWeek: listing=%d, user=%d", req.ListingID, req.UserID)

	if req.ListingID <= 0 {
		return nil, fmt.Errorf("%w: listingID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if err := uc.checkHostOwnsListing(ctx, req.ListingID, req.UserID); err != nil {
		return nil, err
	}

	today := truncateToDay(uc.timeProvider.Now())

	start := today
	latest, err := uc.slotRepo.GetLatestForListing(ctx, req.ListingID)
	if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
		uc.logger.Error("AddNextWeek: failed to get latest slot for listing=%d: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: failed to get latest slot: %v", ErrInternal, err)
	}
	if latest != nil {
		next := truncateToDay(latest.Date).AddDate(0, 0, 1)
		if next.After(start) {
			start = next
		}
	}

	end := start.AddDate(0, 0, domain.WeekSlotCount-1)
	return uc.createRange(ctx, req.ListingID, start, end)
}

// checkHostOwnsListing проверяет роль хоста в UserService и владение листингом
func (uc *UseCase) checkHostOwnsListing(ctx context.Context, listingID, userID int64) error {
	user, err := uc.userClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("AddSlots: user id=%d not found", userID)
			return ErrUserNotFound
		}
		uc.logger.Error("AddSlots: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.IsHost {
		uc.logger.Warn("AddSlots: user id=%d is not a host", userID)
		return ErrNotHost
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			uc.logger.Warn("AddSlots: listing id=%d not found", listingID)
			return ErrListingNotFound
		}
		uc.logger.Error("AddSlots: failed to get listing id=%d: %v", listingID, err)
		return fmt.Errorf("%w: failed to get listing: %v", ErrInternal, err)
	}
	if listing.OwnerID != userID {
		uc.logger.Warn("AddSlots: user=%d is not the owner of listing=%d", userID, listingID)
		return ErrAccessDenied
	}

	return nil
}

// createRange создает по слоту на каждую дату [from, to],
// пропуская даты с существующим слотом
func (uc *UseCase) createRange(ctx context.Context, listingID int64, from, to time.Time) (*Response, error) {
	resp := &Response{ListingID: listingID}

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		created, err := uc.slotRepo.Create(ctx, &domain.BookingSlot{
			ListingID: listingID,
			Date:      date,
			Status:    domain.StatusOpen,
		})
		if err != nil {
			if errors.Is(err, slotRepo.ErrDuplicateSlotDate) {
				resp.Skipped = append(resp.Skipped, date)
				continue
			}
			uc.logger.Error("AddSlots: failed to create slot for listing=%d, date=%s: %v",
				listingID, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
		}
		resp.Created = append(resp.Created, SlotView{ID: created.ID, Date: created.Date})
	}

	uc.logger.Info("AddSlots: listing=%d created %d slots, skipped %d existing dates",
		listingID, len(resp.Created), len(resp.Skipped))

	return resp, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
