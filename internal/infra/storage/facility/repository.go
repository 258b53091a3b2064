package facility

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/pgerr"
	"github.com/m04kA/SMC-FacilityBooking/pkg/psqlbuilder"
)

const table = "facilities"

var columns = []string{
	"id",
	"name",
	"description",
	"location",
	"open_time",
	"close_time",
	"slot_duration_minutes",
	"advance_booking_days",
	"is_active",
	"created_at",
	"updated_at",
}

var returningAll = "RETURNING " + strings.Join(columns, ", ")

// Repository репозиторий объектов бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает объект. Если ID пустой, генерируется UUID. Входной facility не меняется.
func (r *Repository) Create(ctx context.Context, facility *domain.Facility) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	id := facility.ID
	if id == "" {
		id = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"name",
			"description",
			"location",
			"open_time",
			"close_time",
			"slot_duration_minutes",
			"advance_booking_days",
			"is_active",
		).
		Values(
			id,
			facility.Name,
			facility.Description,
			facility.Location,
			facility.OpenTime,
			facility.CloseTime,
			facility.SlotDurationMinutes,
			facility.AdvanceBookingDays,
			facility.IsActive,
		).
		Suffix(returningAll).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created, err := scanFacility(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if pgerr.Code(err) == pgerr.CodeUniqueViolation {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return created, nil
}

// GetByID получает объект по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	facility, err := scanFacility(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) || pgerr.IsInvalidTextRepresentation(err) {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %w", ErrScanRow, err)
	}

	return facility, nil
}

// List возвращает объекты, отсортированные по имени
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(table)
	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		facilities = append(facilities, facility)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return facilities, nil
}

// Update перезаписывает изменяемые поля объекта
func (r *Repository) Update(ctx context.Context, facility *domain.Facility) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", facility.Name).
		Set("description", facility.Description).
		Set("location", facility.Location).
		Set("open_time", facility.OpenTime).
		Set("close_time", facility.CloseTime).
		Set("slot_duration_minutes", facility.SlotDurationMinutes).
		Set("advance_booking_days", facility.AdvanceBookingDays).
		Set("is_active", facility.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": facility.ID}).
		Suffix(returningAll).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanFacility(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) || pgerr.IsInvalidTextRepresentation(err) {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		if pgerr.Code(err) == pgerr.CodeUniqueViolation {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return updated, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFacility(row rowScanner) (*domain.Facility, error) {
	var facility domain.Facility
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&facility.ID,
		&facility.Name,
		&facility.Description,
		&facility.Location,
		&facility.OpenTime,
		&facility.CloseTime,
		&facility.SlotDurationMinutes,
		&facility.AdvanceBookingDays,
		&facility.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	facility.CreatedAt = createdAt.Time
	facility.UpdatedAt = updatedAt.Time

	return &facility, nil
}
