package facilities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	facilityRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilities/models"
)

// Service сервис для работы с объектами бронирования
type Service struct {
	facilityRepo FacilityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса объектов
func NewService(facilityRepo FacilityRepository, logger Logger) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// Create создает новый объект
func (s *Service) Create(ctx context.Context, req *models.CreateFacilityRequest) (*models.FacilityResponse, error) {
	s.logger.Info("Create: creating facility name=%q", req.Name)

	facility, err := req.ToDomainFacility()
	if err != nil {
		s.logger.Warn("Create: invalid time format: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateFacility(facility); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.facilityRepo.Create(ctx, facility)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrDuplicateName) {
			s.logger.Warn("Create: facility name=%q already exists", facility.Name)
			return nil, ErrFacilityAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created facility id=%s", created.ID)
	return models.FromDomainFacility(created), nil
}

// GetByID получает объект по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.FacilityResponse, error) {
	s.logger.Info("GetByID: fetching facility id=%s", id)

	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetByID: facility id=%s not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetByID: repository error for facility id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainFacility(facility), nil
}

// List возвращает объекты; activeOnly скрывает выключенные
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.FacilityListResponse, error) {
	s.logger.Info("List: fetching facilities, activeOnly=%t", activeOnly)

	facilities, err := s.facilityRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d facilities", len(facilities))
	return models.FromDomainFacilityList(facilities), nil
}

// Update частично обновляет объект.
// Уже существующие бронирования не пересчитываются при изменении часов работы.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateFacilityRequest) (*models.FacilityResponse, error) {
	s.logger.Info("Update: updating facility id=%s", id)

	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("Update: facility id=%s not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Update: repository error for facility id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	if err := req.ApplyToFacility(facility); err != nil {
		s.logger.Warn("Update: invalid time format for facility id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateFacility(facility); err != nil {
		s.logger.Warn("Update: validation failed for facility id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.facilityRepo.Update(ctx, facility)
	if err != nil {
		switch {
		case errors.Is(err, facilityRepo.ErrFacilityNotFound):
			s.logger.Warn("Update: facility id=%s not found during update", id)
			return nil, ErrFacilityNotFound
		case errors.Is(err, facilityRepo.ErrDuplicateName):
			return nil, ErrFacilityAlreadyExists
		}
		s.logger.Error("Update: repository error for facility id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated facility id=%s", id)
	return models.FromDomainFacility(updated), nil
}

// validateFacility валидирует параметры объекта
func validateFacility(f *domain.Facility) error {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxFacilityNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxFacilityNameLength)
	}
	f.Name = name

	if !f.OpenTime.IsBefore(f.CloseTime) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	if f.SlotDurationMinutes < domain.MinSlotDurationMinutes || f.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if f.AdvanceBookingDays < domain.MinAdvanceBookingDays || f.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	return nil
}
