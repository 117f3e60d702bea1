package service

//go:generate mockgen -destination=../../mocks/mock_employee_repository.go -package=mocks github.com/zongzewu23/employee-management-system/internal/employee/domain EmployeeRepository

import (
	"context"
	"time"

	deptdomain "github.com/zongzewu23/employee-management-system/internal/department/domain"
	"github.com/zongzewu23/employee-management-system/internal/employee/domain"
	apperror "github.com/zongzewu23/employee-management-system/internal/errors"
)

type EmployeeService struct {
	repo     domain.EmployeeRepository
	deptRepo deptdomain.DepartmentRepository
}

func NewEmployeeService(repo domain.EmployeeRepository, deptRepo deptdomain.DepartmentRepository) *EmployeeService {
	return &EmployeeService{repo: repo, deptRepo: deptRepo}
}

func (s *EmployeeService) GetAll(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.GetAll(ctx)
}

func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperror.ErrEmployeeNotFound
	}
	return e, nil
}

func (s *EmployeeService) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	existing, err := s.repo.GetByEmail(ctx, e.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrEmployeeEmailTaken
	}

	if err := s.checkDepartment(ctx, e.DepartmentID); err != nil {
		return nil, err
	}

	if e.Status == "" {
		e.Status = domain.StatusActive
	}

	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int64, updated *domain.Employee) (*domain.Employee, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.ErrEmployeeNotFound
	}

	emailCheck, err := s.repo.GetByEmail(ctx, updated.Email)
	if err != nil {
		return nil, err
	}
	if emailCheck != nil && emailCheck.ID != id {
		return nil, apperror.ErrEmployeeEmailTaken
	}

	if err := s.checkDepartment(ctx, updated.DepartmentID); err != nil {
		return nil, err
	}

	existing.FirstName = updated.FirstName
	existing.LastName = updated.LastName
	existing.Email = updated.Email
	existing.Phone = updated.Phone
	existing.Position = updated.Position
	existing.Salary = updated.Salary
	existing.HireDate = updated.HireDate
	if updated.Status != "" {
		existing.Status = updated.Status
	}
	existing.DepartmentID = updated.DepartmentID
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.ErrEmployeeNotFound
	}

	return s.repo.Delete(ctx, id)
}

func (s *EmployeeService) checkDepartment(ctx context.Context, departmentID *int64) error {
	if departmentID == nil {
		return nil
	}
	dept, err := s.deptRepo.GetByID(ctx, *departmentID)
	if err != nil {
		return err
	}
	if dept == nil {
		return apperror.ErrDepartmentNotFound
	}
	return nil
}
