package get_schedule

import (
	"github.com/m04kA/BNB-RentalService/internal/domain"
	"github.com/m04kA/BNB-RentalService/internal/service/slots/models"
)

// SlotResponse слот расписания
type SlotResponse struct {
	ID          int64    `json:"id"`
	ListingID   int64    `json:"listingId"`
	Date        string   `json:"date"`
	RentalPrice *float64 `json:"rentalPrice,omitempty"`
	State       string   `json:"state"`
	RenterID    *int64   `json:"renterId,omitempty"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ListingID int64          `json:"listingId"`
	Upcoming  []SlotResponse `json:"upcoming"`
	Past      []SlotResponse `json:"past"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ScheduleResponse) *ScheduleResponse {
	return &ScheduleResponse{
		ListingID: resp.ListingID,
		Upcoming:  fromSlotViews(resp.Upcoming),
		Past:      fromSlotViews(resp.Past),
	}
}

func fromSlotViews(views []models.SlotView) []SlotResponse {
	out := make([]SlotResponse, len(views))
	for i, v := range views {
		out[i] = SlotResponse{
			ID:          v.ID,
			ListingID:   v.ListingID,
			Date:        v.Date.Format(domain.DateFormat),
			RentalPrice: v.RentalPrice,
			State:       v.State,
			RenterID:    v.RenterID,
		}
	}
	return out
}
