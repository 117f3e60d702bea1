package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zongzewu23/employee-management-system/internal/employee/domain"
)

type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const employeeColumns = `id, first_name, last_name, email, phone, position,
		salary, hire_date, status, department_id, created_at, updated_at`

type PostgresEmployeeRepository struct {
	db PgxIface
}

func NewPostgresEmployeeRepository(db PgxIface) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

func (r *PostgresEmployeeRepository) GetAll(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := scanEmployee(rows, &e); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// GetByID returns (nil, nil) when the employee does not exist.
func (r *PostgresEmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	row := r.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)

	var e domain.Employee
	if err := scanEmployee(row, &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &e, nil
}

func (r *PostgresEmployeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	row := r.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = $1`, email)

	var e domain.Employee
	if err := scanEmployee(row, &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return &e, nil
}

func (r *PostgresEmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `
		INSERT INTO employees (first_name, last_name, email, phone, position,
			salary, hire_date, status, department_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		e.FirstName, e.LastName, e.Email, e.Phone, e.Position,
		e.Salary, e.HireDate, e.Status, e.DepartmentID, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *PostgresEmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
			position = $5, salary = $6, hire_date = $7, status = $8,
			department_id = $9, updated_at = $10
		WHERE id = $11
	`
	_, err := r.db.Exec(ctx, query,
		e.FirstName, e.LastName, e.Email, e.Phone, e.Position,
		e.Salary, e.HireDate, e.Status, e.DepartmentID, e.UpdatedAt, e.ID)
	return err
}

func (r *PostgresEmployeeRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	return err
}

func (r *PostgresEmployeeRepository) CountByDepartment(ctx context.Context, departmentID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE department_id = $1`, departmentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

func scanEmployee(row pgx.Row, e *domain.Employee) error {
	return row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
		&e.Position, &e.Salary, &e.HireDate, &e.Status, &e.DepartmentID,
		&e.CreatedAt, &e.UpdatedAt)
}
