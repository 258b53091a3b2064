package bookings

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/events"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-FacilityBooking/pkg/tracing"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	publisher   EventPublisher
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		publisher:   publisher,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Approve подтверждает бронирование. Повторное подтверждение ничего не меняет,
// подтвердить отменённое бронирование нельзя.
func (s *Service) Approve(ctx context.Context, id string, actorID string) (*models.BookingResponse, error) {
	s.logger.Info("Approve: approving booking id=%s by user=%s", id, actorID)

	booking, changed, err := s.transition(ctx, "Approve", id, domain.StatusApproved, nil)
	if err != nil {
		return nil, err
	}

	if changed {
		s.afterTransition(ctx, events.BookingApproved, booking, actorID)
	}

	s.logger.Info("Approve: booking id=%s is %s", id, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование (pending или approved). Повторная отмена ничего не меняет.
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", id, req.UserID)

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellationReason must be at most %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, changed, err := s.transition(ctx, "Cancel", id, domain.StatusCancelled, req.CancellationReason)
	if err != nil {
		return nil, err
	}

	if changed {
		s.afterTransition(ctx, events.BookingCancelled, booking, req.UserID)
	}

	s.logger.Info("Cancel: booking id=%s is %s", id, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// GetFacilityBookings получает бронирования объекта с фильтрацией по дате и статусу
func (s *Service) GetFacilityBookings(ctx context.Context, req *models.GetFacilityBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetFacilityBookings: fetching bookings for facility=%s", req.FacilityID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	if req.FacilityID == "" {
		return nil, fmt.Errorf("%w: facilityID is required", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFacilityBookings: invalid filter for facility=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFacilityBookings: repository error for facility=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: GetFacilityBookings - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("GetFacilityBookings: fetched %d bookings for facility=%s", len(bookings), req.FacilityID)
	return models.FromDomainBookingList(bookings), nil
}

// GetUserBookings получает историю бронирований жильца, включая отменённые.
// Опционально фильтрует по статусу.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	filter := domain.BookingsFilter{
		UserID:           &req.UserID,
		IncludeCancelled: true,
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// transition читает бронирование и меняет статус в одной сериализуемой транзакции.
// changed = false, если бронирование уже в целевом статусе.
func (s *Service) transition(
	ctx context.Context,
	op string,
	id string,
	to domain.BookingStatus,
	reason *string,
) (result *domain.Booking, changed bool, err error) {
	ctx, span := tracing.Start(ctx, op,
		attribute.String("booking.id", id),
		attribute.String("booking.status.to", string(to)),
	)
	defer func() { tracing.End(span, err) }()

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		changed = false

		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: %s - get booking: %w", ErrInternal, op, err)
		}

		if !booking.CanTransitionTo(to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, to)
		}

		if booking.Status == to {
			result = booking
			return nil
		}

		updated, err := s.bookingRepo.UpdateStatus(txCtx, id, to, reason)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: %s - update status: %w", ErrInternal, op, err)
		}

		result = updated
		changed = true
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			s.logger.Warn("%s: booking id=%s not found", op, id)
		case errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("%s: booking id=%s: %v", op, id, err)
		default:
			s.logger.Error("%s: failed for booking id=%s: %v", op, id, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: %s: %w", ErrInternal, op, err)
			}
		}
		return nil, false, err
	}

	return result, changed, nil
}

func (s *Service) afterTransition(ctx context.Context, eventType events.EventType, booking *domain.Booking, actorID string) {
	s.metrics.IncBookingTransition(string(booking.Status))

	if err := s.publisher.Publish(ctx, events.NewBookingEvent(eventType, booking, actorID)); err != nil {
		s.logger.Warn("%s: failed to publish event for booking id=%s: %v", eventType, booking.ID, err)
	}
}
