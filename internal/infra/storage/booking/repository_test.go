package booking

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

var bookingDate = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func bookingRow(id, start, end, status string) []driver.Value {
	now := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	return []driver.Value{
		id, "fac-1", "unit-12", "user-7", bookingDate, start + ":00", end + ":00", status,
		nil, nil, nil, nil, now, now,
	}
}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, *dbmetrics.DB) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil)
	return NewRepository(db), mock, db
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings \(id,facility_id,unit_id,user_id,booking_date,start_time,end_time,status,notes\) VALUES`).
		WithArgs(sqlmock.AnyArg(), "fac-1", "unit-12", "user-7", "2024-01-15", "10:00", "11:00", "pending", nil).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(bookingRow("b-1", "10:00", "11:00", "pending")...))

	input := &domain.Booking{
		FacilityID:  "fac-1",
		UnitID:      "unit-12",
		UserID:      "user-7",
		BookingDate: bookingDate,
		StartTime:   types.MustTimeString("10:00"),
		EndTime:     types.MustTimeString("11:00"),
		Status:      domain.StatusPending,
	}

	created, err := repo.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "b-1", created.ID)
	assert.Empty(t, input.ID, "входное бронирование не должно меняться")
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, types.TimeString("10:00"), created.StartTime)
	assert.Equal(t, types.TimeString("11:00"), created.EndTime)
	assert.Nil(t, created.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExclusionViolation(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"})

	_, err := repo.Create(context.Background(), &domain.Booking{
		ID:          "b-2",
		FacilityID:  "fac-1",
		UnitID:      "unit-12",
		UserID:      "user-7",
		BookingDate: bookingDate,
		StartTime:   types.MustTimeString("09:30"),
		EndTime:     types.MustTimeString("10:30"),
		Status:      domain.StatusPending,
	})

	assert.ErrorIs(t, err, ErrSlotOverlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UnknownFacility(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Create(context.Background(), &domain.Booking{
		FacilityID:  "missing",
		BookingDate: bookingDate,
		StartTime:   types.MustTimeString("09:30"),
		EndTime:     types.MustTimeString("10:30"),
		Status:      domain.StatusPending,
	})

	assert.ErrorIs(t, err, ErrFacilityReference)
}

func TestRepository_Create_MalformedFacilityID(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "fac-1"`})

	_, err := repo.Create(context.Background(), &domain.Booking{
		FacilityID:  "fac-1",
		BookingDate: bookingDate,
		StartTime:   types.MustTimeString("09:30"),
		EndTime:     types.MustTimeString("10:30"),
		Status:      domain.StatusPending,
	})

	assert.ErrorIs(t, err, ErrFacilityReference)
}

func TestRepository_GetByID_MalformedID(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs("abc").
		WillReturnError(&pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`})

	_, err := repo.GetByID(context.Background(), "abc")

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_MalformedFacilityID(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE facility_id = \$1`).
		WillReturnError(&pq.Error{Code: "22P02"})

	bookings, err := repo.GetWithFilter(context.Background(), domain.BookingsFilter{
		FacilityID: ptr.Ptr("fac-1"),
		Date:       ptr.Ptr(bookingDate),
	})

	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_MalformedID(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`UPDATE bookings`).
		WillReturnError(&pgconn.PgError{Code: "22P02"})

	_, err := repo.UpdateStatus(context.Background(), "abc", domain.StatusApproved, nil)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_ExcludesCancelledByDefault(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE facility_id = \$1 AND booking_date = \$2 AND status <> \$3 ORDER BY start_time ASC$`).
		WithArgs("fac-1", "2024-01-15", "cancelled").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(bookingRow("b-1", "09:00", "10:00", "pending")...).
			AddRow(bookingRow("b-2", "12:00", "13:00", "approved")...))

	bookings, err := repo.GetWithFilter(context.Background(), domain.BookingsFilter{
		FacilityID: ptr.Ptr("fac-1"),
		Date:       ptr.Ptr(bookingDate),
	})

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, domain.StatusApproved, bookings[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_LocksRowsInTransaction(t *testing.T) {
	repo, mock, db := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE facility_id = \$1 AND booking_date = \$2 AND status <> \$3 ORDER BY start_time ASC FOR UPDATE`).
		WithArgs("fac-1", "2024-01-15", "cancelled").
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	bookings, err := repo.GetWithFilter(dbmetrics.WithTx(context.Background(), tx), domain.BookingsFilter{
		FacilityID: ptr.Ptr("fac-1"),
		Date:       ptr.Ptr(bookingDate),
	})
	require.NoError(t, err)
	assert.Empty(t, bookings)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_ByUserAndStatus(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE user_id = \$1 AND status = \$2 ORDER BY booking_date DESC, start_time DESC$`).
		WithArgs("user-7", "cancelled").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(bookingRow("b-3", "09:00", "10:00", "cancelled")...))

	bookings, err := repo.GetWithFilter(context.Background(), domain.BookingsFilter{
		UserID: ptr.Ptr("user-7"),
		Status: ptr.Ptr(domain.StatusCancelled),
	})

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.True(t, bookings[0].IsCancelled())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`UPDATE bookings SET status = \$1, updated_at = NOW\(\), approved_at = NOW\(\) WHERE id = \$2 RETURNING`).
		WithArgs("approved", "b-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(bookingRow("b-1", "09:00", "10:00", "approved")...))

	updated, err := repo.UpdateStatus(context.Background(), "b-1", domain.StatusApproved, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_Cancel(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`UPDATE bookings SET status = \$1, updated_at = NOW\(\), cancelled_at = NOW\(\), cancellation_reason = \$2 WHERE id = \$3 RETURNING`).
		WithArgs("cancelled", "plans changed", "b-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(bookingRow("b-1", "09:00", "10:00", "cancelled")...))

	updated, err := repo.UpdateStatus(context.Background(), "b-1", domain.StatusCancelled, ptr.Ptr("plans changed"))

	require.NoError(t, err)
	assert.True(t, updated.IsCancelled())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(`UPDATE bookings`).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.UpdateStatus(context.Background(), "missing", domain.StatusCancelled, nil)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
