package domain

import "context"

type DepartmentRepository interface {
	GetAll(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id int64) (*Department, error)
	GetByName(ctx context.Context, name string) (*Department, error)
	Create(ctx context.Context, d *Department) error
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id int64) error
}
