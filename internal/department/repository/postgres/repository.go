package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zongzewu23/employee-management-system/internal/department/domain"
)

type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const departmentColumns = `id, name, description, location, manager_name, created_at, updated_at`

type PostgresDepartmentRepository struct {
	db PgxIface
}

func NewPostgresDepartmentRepository(db PgxIface) *PostgresDepartmentRepository {
	return &PostgresDepartmentRepository{db: db}
}

func (r *PostgresDepartmentRepository) GetAll(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT `+departmentColumns+` FROM departments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var d domain.Department
		if err := scanDepartment(rows, &d); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}

// GetByID returns (nil, nil) when the department does not exist.
func (r *PostgresDepartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	row := r.db.QueryRow(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id)

	var d domain.Department
	if err := scanDepartment(row, &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return &d, nil
}

func (r *PostgresDepartmentRepository) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	row := r.db.QueryRow(ctx, `SELECT `+departmentColumns+` FROM departments WHERE name = $1`, name)

	var d domain.Department
	if err := scanDepartment(row, &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get department by name: %w", err)
	}

	return &d, nil
}

func (r *PostgresDepartmentRepository) Create(ctx context.Context, d *domain.Department) error {
	query := `
		INSERT INTO departments (name, description, location, manager_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		d.Name, d.Description, d.Location, d.ManagerName, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
}

func (r *PostgresDepartmentRepository) Update(ctx context.Context, d *domain.Department) error {
	query := `
		UPDATE departments
		SET name = $1, description = $2, location = $3, manager_name = $4, updated_at = $5
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query,
		d.Name, d.Description, d.Location, d.ManagerName, d.UpdatedAt, d.ID)
	return err
}

func (r *PostgresDepartmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	return err
}

func scanDepartment(row pgx.Row, d *domain.Department) error {
	return row.Scan(&d.ID, &d.Name, &d.Description, &d.Location,
		&d.ManagerName, &d.CreatedAt, &d.UpdatedAt)
}
