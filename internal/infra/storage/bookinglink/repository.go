package bookinglink

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

// Repository persists one-time booking links. Creation instants are stored as
// epoch milliseconds so expiry math matches the appointment storage.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a booking link repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking link and returns it with the generated id.
func (r *Repository) Create(ctx context.Context, link *domain.BookingLink) (*domain.BookingLink, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_links").
		Columns("token", "phone", "customer_id", "shop_id", "created_at", "used").
		Values(link.Token, link.Phone, link.CustomerID, link.ShopID, link.CreatedAt.UnixMilli(), link.Used).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&link.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return link, nil
}

// GetByToken fetches a booking link by its opaque token. Inside a transaction
// the row is locked FOR UPDATE so concurrent bookings on the same link
// serialize before the used flag is checked.
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.BookingLink, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "token", "phone", "customer_id", "shop_id", "created_at", "used").
		From("booking_links").
		Where(squirrel.Eq{"token": token})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var link domain.BookingLink
	var createdAtMillis int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&link.ID, &link.Token, &link.Phone, &link.CustomerID, &link.ShopID, &createdAtMillis, &link.Used,
	)
	if err == sql.ErrNoRows {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan link: %v", ErrScanRow, err)
	}

	link.CreatedAt = time.UnixMilli(createdAtMillis)

	return &link, nil
}

// MarkUsed flags a booking link as consumed.
func (r *Repository) MarkUsed(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_links").
		Set("used", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrLinkNotFound
	}

	return nil
}

// DeleteExpired removes links that are consumed or created before the cutoff
// instant, and returns how many were deleted.
func (r *Repository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_links").
		Where(squirrel.Or{
			squirrel.Eq{"used": true},
			squirrel.Lt{"created_at": cutoff.UnixMilli()},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
