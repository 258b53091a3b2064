package get_available_slots

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// generateTimeSlots нарезает часы работы объекта на слоты длиной slotDuration.
// Последний неполный слот отбрасывается. Для сегодняшней даты уже начавшиеся слоты не возвращаются.
func generateTimeSlots(facility *domain.Facility, requestDate time.Time, now time.Time) ([]domain.AvailableSlot, error) {
	if isDateInPast(requestDate, now) || facility.SlotDurationMinutes <= 0 {
		return []domain.AvailableSlot{}, nil
	}

	var minStart types.TimeString
	if isSameDay(requestDate, now) {
		minStart = types.NewTimeString(now)
	}

	slots := make([]domain.AvailableSlot, 0)
	current := facility.OpenTime

	for current.IsBefore(facility.CloseTime) {
		slotEnd, err := current.AddMinutes(facility.SlotDurationMinutes)
		if errors.Is(err, types.ErrTimeOverflow) {
			break
		}
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(facility.CloseTime) {
			break
		}

		if minStart.IsZero() || !current.IsBefore(minStart) {
			slots = append(slots, domain.AvailableSlot{
				StartTime: current,
				EndTime:   slotEnd,
				Available: true,
			})
		}

		current = slotEnd
	}

	return slots, nil
}

// markOccupied помечает занятыми слоты, пересекающиеся с активными бронированиями.
// Граничащие интервалы (конец брони == начало слота) не считаются пересечением.
//
// Примеры:
// - Слот 11:00-12:00, бронирование 11:20-11:40 → занят
// - Слот 11:00-12:00, бронирование 10:00-11:00 → свободен
func markOccupied(slots []domain.AvailableSlot, bookings []*domain.Booking) {
	for i := range slots {
		for _, booking := range bookings {
			if booking.IsActive() && booking.OverlapsWith(slots[i].StartTime, slots[i].EndTime) {
				slots[i].Available = false
				break
			}
		}
	}
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
