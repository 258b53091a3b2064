package get_available_slots

import (
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                string          `json:"date"`
	FacilityID          string          `json:"facilityId"`
	SlotDurationMinutes int             `json:"slotDurationMinutes"`
	Slots               []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		FacilityID:          resp.FacilityID,
		SlotDurationMinutes: resp.SlotDurationMinutes,
		Slots:               slots,
	}
}
