package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	"github.com/m04kA/SMC-ShopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShopService/pkg/psqlbuilder"
)

// Repository persists appointments. Start instants are stored as epoch
// milliseconds (BIGINT), matching the wire resolution of the booking flow.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment with its final price and returns it with
// the generated id. Intended to run inside the booking transaction, right
// after the overlap check, so the check-then-insert pair is atomic.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"employee_id",
			"shop_id",
			"customer_id",
			"start_at",
			"duration_minutes",
			"price",
		).
		Values(
			appt.EmployeeID,
			appt.ShopID,
			appt.CustomerID,
			appt.StartAt.UnixMilli(),
			appt.DurationMinutes,
			appt.Price,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// AttachServices links the chosen services to an appointment. Runs in the
// same transaction as Create so a booking is never persisted half-done.
func (r *Repository) AttachServices(ctx context.Context, appointmentID int64, serviceIDs []int64) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("appointment_services").
		Columns("appointment_id", "service_id")
	for _, serviceID := range serviceIDs {
		insertBuilder = insertBuilder.Values(appointmentID, serviceID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AttachServices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AttachServices - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID fetches a single appointment.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetByEmployeeOnRange fetches all appointments for an employee at a shop
// whose start instant falls inside [rangeStart, rangeEnd), ordered by start
// time. The range is expected to be a local calendar day. Inside a
// transaction the rows are locked FOR UPDATE so a concurrent booking for the
// same employee serializes on them.
func (r *Repository) GetByEmployeeOnRange(ctx context.Context, employeeID, shopID int64, rangeStart, rangeEnd time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectAppointments().
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"shop_id": shopID}).
		Where(squirrel.GtOrEq{"start_at": rangeStart.UnixMilli()}).
		Where(squirrel.Lt{"start_at": rangeEnd.UnixMilli()}).
		OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeOnRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeOnRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// CountOverlapping counts appointments of the employee whose interval
// intersects [start, end). The half-open test keeps adjacent appointments
// (one ending exactly when the other starts) out of the count.
func (r *Repository) CountOverlapping(ctx context.Context, employeeID int64, start, end time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Lt{"start_at": end.UnixMilli()}).
		Where(squirrel.Expr("start_at + duration_minutes * 60000 > ?", start.UnixMilli())).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetByShop fetches all appointments of a shop, newest first.
func (r *Repository) GetByShop(ctx context.Context, shopID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("start_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShop - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"employee_id",
		"shop_id",
		"customer_id",
		"start_at",
		"duration_minutes",
		"price",
		"created_at",
	).From("appointments")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var startAtMillis int64
	var createdAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.EmployeeID,
		&appt.ShopID,
		&appt.CustomerID,
		&startAtMillis,
		&appt.DurationMinutes,
		&appt.Price,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	appt.StartAt = time.UnixMilli(startAtMillis)
	appt.CreatedAt = createdAt.Time

	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
