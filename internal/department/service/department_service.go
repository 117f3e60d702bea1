package service

//go:generate mockgen -destination=../../mocks/mock_department_repository.go -package=mocks github.com/zongzewu23/employee-management-system/internal/department/domain DepartmentRepository

import (
	"context"
	"time"

	"github.com/zongzewu23/employee-management-system/internal/department/domain"
	empdomain "github.com/zongzewu23/employee-management-system/internal/employee/domain"
	apperror "github.com/zongzewu23/employee-management-system/internal/errors"
)

type DepartmentService struct {
	repo    domain.DepartmentRepository
	empRepo empdomain.EmployeeRepository
}

func NewDepartmentService(repo domain.DepartmentRepository, empRepo empdomain.EmployeeRepository) *DepartmentService {
	return &DepartmentService{repo: repo, empRepo: empRepo}
}

func (s *DepartmentService) GetAll(ctx context.Context) ([]domain.Department, error) {
	return s.repo.GetAll(ctx)
}

func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperror.ErrDepartmentNotFound
	}
	return d, nil
}

func (s *DepartmentService) Create(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	existing, err := s.repo.GetByName(ctx, d.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrDepartmentNameTaken
	}

	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *DepartmentService) Update(ctx context.Context, id int64, updated *domain.Department) (*domain.Department, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.ErrDepartmentNotFound
	}

	nameCheck, err := s.repo.GetByName(ctx, updated.Name)
	if err != nil {
		return nil, err
	}
	if nameCheck != nil && nameCheck.ID != id {
		return nil, apperror.ErrDepartmentNameTaken
	}

	existing.Name = updated.Name
	existing.Description = updated.Description
	existing.Location = updated.Location
	existing.ManagerName = updated.ManagerName
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// Delete refuses to remove a department that still has employees assigned.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.ErrDepartmentNotFound
	}

	count, err := s.empRepo.CountByDepartment(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.ErrDepartmentHasEmployees
	}

	return s.repo.Delete(ctx, id)
}
