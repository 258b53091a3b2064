package check_conflict

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
	"github.com/m04kA/SMC-FacilityBooking/pkg/tracing"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// UseCase проверка пересечения предлагаемого интервала с существующими бронированиями
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute загружает бронирования объекта на дату (без отменённых) и проверяет пересечение.
// Порядок start < end не проверяется: это ответственность вызывающего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	ctx, span := tracing.Start(ctx, "CheckConflict", attribute.String("facility.id", req.FacilityID))
	defer func() { tracing.End(span, err) }()

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflict: validation failed: %v", err)
		return nil, err
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		FacilityID: ptr.Ptr(req.FacilityID),
		Date:       ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("CheckConflict: failed to get bookings for facility=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
	}

	conflict := HasConflict(bookings, req.StartTime, req.EndTime)

	uc.logger.Info("CheckConflict: facility=%s, date=%s, %s-%s, candidates=%d, conflict=%t",
		req.FacilityID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, len(bookings), conflict)

	return &Response{HasConflict: conflict}, nil
}

// HasConflict возвращает true, если хотя бы одно активное бронирование пересекается с [start, end).
// Интервалы полуоткрытые: end == existing.start не считается пересечением.
func HasConflict(bookings []*domain.Booking, start, end types.TimeString) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.OverlapsWith(start, end) {
			return true
		}
	}
	return false
}

func validateRequest(req *Request) error {
	if req.FacilityID == "" {
		return fmt.Errorf("%w: facilityID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	return nil
}
