package directory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	"github.com/m04kA/SMC-ShopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShopService/pkg/psqlbuilder"
)

// Repository reads the shop, employee and manager directory.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a directory repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetShopByID fetches a single shop.
func (r *Repository) GetShopByID(ctx context.Context, id int64) (*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectShops().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetShopByID - build select query: %v", ErrBuildQuery, err)
	}

	shop, err := scanShop(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetShopByID - scan shop: %v", ErrScanRow, err)
	}

	return shop, nil
}

// ListShops fetches every shop in the directory.
func (r *Repository) ListShops(ctx context.Context) ([]domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectShops().
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListShops - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListShops - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanShops(rows)
}

// ListShopsForManager fetches the shops owned by a manager.
func (r *Repository) ListShopsForManager(ctx context.Context, managerID int64) ([]domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectShops().
		Where(squirrel.Eq{"manager_id": managerID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListShopsForManager - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListShopsForManager - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanShops(rows)
}

// GetEmployeeByID fetches a single employee.
func (r *Repository) GetEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "phone").
		From("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployeeByID - build select query: %v", ErrBuildQuery, err)
	}

	var employee domain.Employee
	err = executor.QueryRowContext(ctx, query, args...).Scan(&employee.ID, &employee.Name, &employee.Phone)
	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployeeByID - scan employee: %v", ErrScanRow, err)
	}

	return &employee, nil
}

// ListEmployeesForShop fetches the employees assigned to a shop.
func (r *Repository) ListEmployeesForShop(ctx context.Context, shopID int64) ([]domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("e.id", "e.name", "e.phone").
		From("employees e").
		Join("employee_shop se ON e.id = se.employee_id").
		Where(squirrel.Eq{"se.shop_id": shopID}).
		OrderBy("e.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEmployeesForShop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEmployeesForShop - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Phone); err != nil {
			return nil, fmt.Errorf("%w: ListEmployeesForShop - scan row: %v", ErrScanRow, err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEmployeesForShop - rows error: %v", ErrScanRow, err)
	}

	return employees, nil
}

// EmployeeWorksAtShop reports whether an employee is assigned to a shop.
func (r *Repository) EmployeeWorksAtShop(ctx context.Context, employeeID, shopID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("employee_shop").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"shop_id": shopID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: EmployeeWorksAtShop - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: EmployeeWorksAtShop - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// GetManagerByUsername fetches a manager account by login name.
func (r *Repository) GetManagerByUsername(ctx context.Context, username string) (*domain.Manager, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "username", "password_hash", "phone").
		From("managers").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetManagerByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var manager domain.Manager
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&manager.ID, &manager.Name, &manager.Username, &manager.PasswordHash, &manager.Phone,
	)
	if err == sql.ErrNoRows {
		return nil, ErrManagerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetManagerByUsername - scan manager: %v", ErrScanRow, err)
	}

	return &manager, nil
}

// GetShopByUsername fetches a shop account by login name. Shops may sign in
// directly to manage their own schedule.
func (r *Repository) GetShopByUsername(ctx context.Context, username string) (*domain.Shop, string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "address", "directions", "manager_id", "password_hash").
		From("shops").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, "", fmt.Errorf("%w: GetShopByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var shop domain.Shop
	var passwordHash string
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&shop.ID, &shop.Name, &shop.Address, &shop.Directions, &shop.ManagerID, &passwordHash,
	)
	if err == sql.ErrNoRows {
		return nil, "", ErrShopNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: GetShopByUsername - scan shop: %v", ErrScanRow, err)
	}

	return &shop, passwordHash, nil
}

func selectShops() squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "name", "address", "directions", "manager_id").From("shops")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShop(row rowScanner) (*domain.Shop, error) {
	var shop domain.Shop
	err := row.Scan(&shop.ID, &shop.Name, &shop.Address, &shop.Directions, &shop.ManagerID)
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func scanShops(rows *sql.Rows) ([]domain.Shop, error) {
	shops := make([]domain.Shop, 0)

	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanShops - scan row: %v", ErrScanRow, err)
		}
		shops = append(shops, *shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanShops - rows error: %v", ErrScanRow, err)
	}

	return shops, nil
}
