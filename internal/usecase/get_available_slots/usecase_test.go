package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	facilityRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if b, ok := args.Get(0).([]*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockFacilityRepo struct {
	mock.Mock
}

func (m *mockFacilityRepo) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	args := m.Called(ctx, id)
	if f, ok := args.Get(0).(*domain.Facility); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var (
	now  = time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)
	date = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
)

func facility(open, close string, duration int) *domain.Facility {
	return &domain.Facility{
		ID:                  "fac-1",
		OpenTime:            types.MustTimeString(open),
		CloseTime:           types.MustTimeString(close),
		SlotDurationMinutes: duration,
		IsActive:            true,
	}
}

func booking(start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		FacilityID:  "fac-1",
		BookingDate: date,
		StartTime:   types.MustTimeString(start),
		EndTime:     types.MustTimeString(end),
		Status:      status,
	}
}

func slotStarts(slots []domain.AvailableSlot) []string {
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartTime.String())
	}
	return starts
}

func TestGenerateTimeSlots(t *testing.T) {
	slots, err := generateTimeSlots(facility("09:00", "12:30", 60), date, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotStarts(slots))
	assert.Equal(t, types.TimeString("12:00"), slots[2].EndTime)
}

func TestGenerateTimeSlots_EndOfDay(t *testing.T) {
	slots, err := generateTimeSlots(facility("22:00", "23:59", 60), date, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"22:00"}, slotStarts(slots))
}

func TestGenerateTimeSlots_TodaySkipsStarted(t *testing.T) {
	today := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

	slots, err := generateTimeSlots(facility("09:00", "13:00", 60), date, today)
	require.NoError(t, err)

	assert.Equal(t, []string{"11:00", "12:00"}, slotStarts(slots))
}

func TestGenerateTimeSlots_PastDate(t *testing.T) {
	slots, err := generateTimeSlots(facility("09:00", "13:00", 60), date, date.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Empty(t, slots)
}

func TestMarkOccupied(t *testing.T) {
	slots, err := generateTimeSlots(facility("09:00", "13:00", 60), date, now)
	require.NoError(t, err)

	markOccupied(slots, []*domain.Booking{
		booking("09:00", "10:00", domain.StatusApproved),
		booking("11:20", "11:40", domain.StatusPending),
		booking("12:00", "13:00", domain.StatusCancelled),
	})

	available := map[string]bool{}
	for _, s := range slots {
		available[s.StartTime.String()] = s.Available
	}

	assert.Equal(t, map[string]bool{
		"09:00": false,
		"10:00": true,
		"11:00": false,
		"12:00": true,
	}, available)
}

func TestExecute(t *testing.T) {
	bookings := new(mockBookingRepo)
	facilities := new(mockFacilityRepo)

	facilities.On("GetByID", mock.Anything, "fac-1").Return(facility("09:00", "11:00", 30), nil)
	bookings.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return *f.FacilityID == "fac-1" && f.Date.Equal(date) && !f.IncludeCancelled
	})).Return([]*domain.Booking{booking("09:30", "10:00", domain.StatusPending)}, nil)

	uc := NewUseCase(bookings, facilities, logger.Nop{}).WithTimeProvider(fixedTime{now: now})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: "fac-1", Date: date})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.SlotDurationMinutes)
	require.Len(t, resp.Slots, 4)
	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
	assert.True(t, resp.Slots[2].Available)
	assert.True(t, resp.Slots[3].Available)
}

func TestExecute_InactiveFacility(t *testing.T) {
	bookings := new(mockBookingRepo)
	facilities := new(mockFacilityRepo)

	f := facility("09:00", "11:00", 30)
	f.IsActive = false
	facilities.On("GetByID", mock.Anything, "fac-1").Return(f, nil)

	uc := NewUseCase(bookings, facilities, logger.Nop{}).WithTimeProvider(fixedTime{now: now})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: "fac-1", Date: date})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	bookings.AssertNotCalled(t, "GetWithFilter", mock.Anything, mock.Anything)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("facility not found", func(t *testing.T) {
		facilities := new(mockFacilityRepo)
		facilities.On("GetByID", mock.Anything, "missing").Return(nil, facilityRepo.ErrFacilityNotFound)

		uc := NewUseCase(new(mockBookingRepo), facilities, logger.Nop{}).WithTimeProvider(fixedTime{now: now})

		_, err := uc.Execute(context.Background(), &Request{FacilityID: "missing", Date: date})
		assert.ErrorIs(t, err, ErrFacilityNotFound)
	})

	t.Run("date in past", func(t *testing.T) {
		facilities := new(mockFacilityRepo)
		facilities.On("GetByID", mock.Anything, "fac-1").Return(facility("09:00", "11:00", 30), nil)

		uc := NewUseCase(new(mockBookingRepo), facilities, logger.Nop{}).WithTimeProvider(fixedTime{now: now})

		_, err := uc.Execute(context.Background(), &Request{FacilityID: "fac-1", Date: now.AddDate(0, 0, -2)})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("too far in future", func(t *testing.T) {
		f := facility("09:00", "11:00", 30)
		f.AdvanceBookingDays = 2
		facilities := new(mockFacilityRepo)
		facilities.On("GetByID", mock.Anything, "fac-1").Return(f, nil)

		uc := NewUseCase(new(mockBookingRepo), facilities, logger.Nop{}).WithTimeProvider(fixedTime{now: now})

		_, err := uc.Execute(context.Background(), &Request{FacilityID: "fac-1", Date: date})
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("missing facility id", func(t *testing.T) {
		uc := NewUseCase(new(mockBookingRepo), new(mockFacilityRepo), logger.Nop{})

		_, err := uc.Execute(context.Background(), &Request{Date: date})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
