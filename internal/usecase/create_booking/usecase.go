package create_booking

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/events"
	"github.com/m04kA/SMC-FacilityBooking/internal/usecase/check_conflict"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
	"github.com/m04kA/SMC-FacilityBooking/pkg/tracing"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверка пересечения и вставка выполняются в одной сериализуемой транзакции,
// кандидаты блокируются FOR UPDATE. Exclusion constraint в БД ловит то, что проскочило.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := tracing.Start(ctx, "CreateBooking",
		attribute.String("facility.id", req.FacilityID),
		attribute.String("booking.date", req.Date.Format(domain.DateFormat)),
	)

	resp, err := uc.execute(ctx, req)
	tracing.End(span, err)

	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: facility=%s, unit=%s, user=%s, date=%s, time=%s-%s",
		req.FacilityID, req.UnitID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем объект
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("CreateBooking: facility id=%s not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get facility id=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %w", ErrInternal, err)
	}

	// 3. Проверяем объект, дату и время
	if err := validateFacility(facility, req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("CreateBooking: facility id=%s rejected slot: %v", req.FacilityID, err)
		return nil, err
	}

	if err := validateDate(req.Date, now, facility.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 4. Проверка пересечения и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			FacilityID: ptr.Ptr(req.FacilityID),
			Date:       ptr.Ptr(req.Date),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		if check_conflict.HasConflict(bookings, req.StartTime, req.EndTime) {
			uc.logger.Warn("CreateBooking: slot %s-%s on %s is taken, %d active bookings",
				req.StartTime, req.EndTime, req.Date.Format(domain.DateFormat), len(bookings))
			uc.metrics.IncBookingConflict("check")
			return ErrSlotNotAvailable
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			FacilityID:  req.FacilityID,
			UnitID:      req.UnitID,
			UserID:      req.UserID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Status:      domain.StatusPending,
			Notes:       req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotOverlap):
				uc.logger.Warn("CreateBooking: rejected by storage constraint: %v", err)
				uc.metrics.IncBookingConflict("constraint")
				return ErrSlotNotAvailable
			case errors.Is(err, bookingRepo.ErrFacilityReference):
				return ErrFacilityNotFound
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrFacilityNotFound) {
			return nil, err
		}
		if !errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)
	uc.metrics.IncBookingCreated(result.FacilityID)

	// 5. Событие публикуется после коммита, ошибка публикации не отменяет бронирование
	if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.BookingCreated, result, req.UserID)); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%s: %v", result.ID, err)
	}

	return &Response{
		ID:          result.ID,
		FacilityID:  result.FacilityID,
		UnitID:      result.UnitID,
		UserID:      result.UserID,
		BookingDate: result.BookingDate,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Status:      string(result.Status),
		Notes:       result.Notes,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
