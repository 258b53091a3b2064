package models

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Request модели

// CreateFacilityRequest запрос на создание объекта
// Незаданные поля получают значения по умолчанию
type CreateFacilityRequest struct {
	Name                string  `json:"name"`
	Description         *string `json:"description,omitempty"`
	Location            *string `json:"location,omitempty"`
	OpenTime            *string `json:"openTime,omitempty"`            // "08:00"
	CloseTime           *string `json:"closeTime,omitempty"`           // "22:00"
	SlotDurationMinutes *int    `json:"slotDurationMinutes,omitempty"` // 60 по умолчанию
	AdvanceBookingDays  *int    `json:"advanceBookingDays,omitempty"`  // 0 = без ограничений
	IsActive            *bool   `json:"isActive,omitempty"`
}

// UpdateFacilityRequest запрос на обновление объекта
// Все поля опциональны - обновляются только переданные значения
type UpdateFacilityRequest struct {
	Name                *string `json:"name,omitempty"`
	Description         *string `json:"description,omitempty"`
	Location            *string `json:"location,omitempty"`
	OpenTime            *string `json:"openTime,omitempty"`
	CloseTime           *string `json:"closeTime,omitempty"`
	SlotDurationMinutes *int    `json:"slotDurationMinutes,omitempty"`
	AdvanceBookingDays  *int    `json:"advanceBookingDays,omitempty"`
	IsActive            *bool   `json:"isActive,omitempty"`
}

// Response модели

// FacilityResponse ответ с данными объекта
type FacilityResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         *string   `json:"description,omitempty"`
	Location            *string   `json:"location,omitempty"`
	OpenTime            string    `json:"openTime"`
	CloseTime           string    `json:"closeTime"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	AdvanceBookingDays  int       `json:"advanceBookingDays"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// FacilityListResponse ответ со списком объектов
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// FromDomainFacility конвертирует domain модель в DTO
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	if f == nil {
		return nil
	}

	return &FacilityResponse{
		ID:                  f.ID,
		Name:                f.Name,
		Description:         f.Description,
		Location:            f.Location,
		OpenTime:            f.OpenTime.String(),
		CloseTime:           f.CloseTime.String(),
		SlotDurationMinutes: f.SlotDurationMinutes,
		AdvanceBookingDays:  f.AdvanceBookingDays,
		IsActive:            f.IsActive,
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}
}

// FromDomainFacilityList конвертирует список domain моделей в DTO
func FromDomainFacilityList(facilities []*domain.Facility) *FacilityListResponse {
	resp := &FacilityListResponse{
		Facilities: make([]FacilityResponse, 0, len(facilities)),
	}

	for _, f := range facilities {
		if r := FromDomainFacility(f); r != nil {
			resp.Facilities = append(resp.Facilities, *r)
		}
	}

	return resp
}

// ToDomainFacility конвертирует запрос в domain модель, подставляя значения по умолчанию.
// Ошибка возвращается только при некорректном формате времени.
func (r *CreateFacilityRequest) ToDomainFacility() (*domain.Facility, error) {
	facility := &domain.Facility{
		Name:                r.Name,
		Description:         r.Description,
		Location:            r.Location,
		OpenTime:            types.TimeString(domain.DefaultOpenTime),
		CloseTime:           types.TimeString(domain.DefaultCloseTime),
		SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
		AdvanceBookingDays:  domain.DefaultAdvanceBookingDays,
		IsActive:            true,
	}

	if r.OpenTime != nil {
		t, err := types.NewTimeStringFromString(*r.OpenTime)
		if err != nil {
			return nil, err
		}
		facility.OpenTime = t
	}
	if r.CloseTime != nil {
		t, err := types.NewTimeStringFromString(*r.CloseTime)
		if err != nil {
			return nil, err
		}
		facility.CloseTime = t
	}
	if r.SlotDurationMinutes != nil {
		facility.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.AdvanceBookingDays != nil {
		facility.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.IsActive != nil {
		facility.IsActive = *r.IsActive
	}

	return facility, nil
}

// ApplyToFacility применяет обновления к существующему объекту
// Обновляются только непустые (not nil) поля из request
func (r *UpdateFacilityRequest) ApplyToFacility(facility *domain.Facility) error {
	if r.Name != nil {
		facility.Name = *r.Name
	}
	if r.Description != nil {
		facility.Description = r.Description
	}
	if r.Location != nil {
		facility.Location = r.Location
	}
	if r.OpenTime != nil {
		t, err := types.NewTimeStringFromString(*r.OpenTime)
		if err != nil {
			return err
		}
		facility.OpenTime = t
	}
	if r.CloseTime != nil {
		t, err := types.NewTimeStringFromString(*r.CloseTime)
		if err != nil {
			return err
		}
		facility.CloseTime = t
	}
	if r.SlotDurationMinutes != nil {
		facility.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.AdvanceBookingDays != nil {
		facility.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.IsActive != nil {
		facility.IsActive = *r.IsActive
	}
	return nil
}
