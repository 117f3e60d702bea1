package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deptdomain "github.com/zongzewu23/employee-management-system/internal/department/domain"
	"github.com/zongzewu23/employee-management-system/internal/employee/domain"
	"github.com/zongzewu23/employee-management-system/internal/employee/service"
	apperror "github.com/zongzewu23/employee-management-system/internal/errors"
	"github.com/zongzewu23/employee-management-system/internal/mocks"
)

func setup(t *testing.T) (*service.EmployeeService, *mocks.MockEmployeeRepository, *mocks.MockDepartmentRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	empRepo := mocks.NewMockEmployeeRepository(ctrl)
	deptRepo := mocks.NewMockDepartmentRepository(ctrl)

	return service.NewEmployeeService(empRepo, deptRepo), empRepo, deptRepo
}

func sampleEmployee() *domain.Employee {
	return &domain.Employee{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@x.com",
		Position:  "Engineer",
		Salary:    120000,
		HireDate:  time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("defaults status to ACTIVE", func(t *testing.T) {
		s, empRepo, _ := setup(t)

		e := sampleEmployee()
		empRepo.EXPECT().GetByEmail(gomock.Any(), "ada@x.com").Return(nil, nil)
		empRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, created *domain.Employee) error {
				created.ID = 1
				return nil
			})

		created, err := s.Create(context.Background(), e)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, domain.StatusActive, created.Status)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("duplicate email", func(t *testing.T) {
		s, empRepo, _ := setup(t)

		empRepo.EXPECT().GetByEmail(gomock.Any(), "ada@x.com").
			Return(&domain.Employee{ID: 7, Email: "ada@x.com"}, nil)

		_, err := s.Create(context.Background(), sampleEmployee())
		assert.ErrorIs(t, err, apperror.ErrEmployeeEmailTaken)
	})

	t.Run("unknown department", func(t *testing.T) {
		s, empRepo, deptRepo := setup(t)

		e := sampleEmployee()
		deptID := int64(42)
		e.DepartmentID = &deptID

		empRepo.EXPECT().GetByEmail(gomock.Any(), "ada@x.com").Return(nil, nil)
		deptRepo.EXPECT().GetByID(gomock.Any(), deptID).Return(nil, nil)

		_, err := s.Create(context.Background(), e)
		assert.ErrorIs(t, err, apperror.ErrDepartmentNotFound)
	})

	t.Run("valid department association", func(t *testing.T) {
		s, empRepo, deptRepo := setup(t)

		e := sampleEmployee()
		deptID := int64(42)
		e.DepartmentID = &deptID

		empRepo.EXPECT().GetByEmail(gomock.Any(), "ada@x.com").Return(nil, nil)
		deptRepo.EXPECT().GetByID(gomock.Any(), deptID).
			Return(&deptdomain.Department{ID: deptID, Name: "Engineering"}, nil)
		empRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.Create(context.Background(), e)
		require.NoError(t, err)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, empRepo, _ := setup(t)

		empRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&domain.Employee{ID: 1, Email: "ada@x.com"}, nil)

		e, err := s.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), e.ID)
	})

	t.Run("missing", func(t *testing.T) {
		s, empRepo, _ := setup(t)

		empRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := s.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, apperror.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	t.Run("rejects email belonging to another employee", func(t *testing.T) {
		s, empRepo, _ := setup(t)

		empRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&domain.Employee{ID: 1, Email: "old@x.com"}, nil)
		empRepo.EXPECT().GetByEmail(gomock.Any(), "ada@x.com").
			Return(&domain.Employee{ID: 2, Email: "ada@x.com"}, nil)

		_, err := s.Update(context.Background(), 1, sampleEmployee())
		assert.ErrorIs(t, err, apperror.ErrEmployeeEmailTaken)
	})

	t.Run("keeping own email is fine", func(t *testing.T) {
		s, empRepo, _ := setup(t)

		empRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&domain.Employee{ID: 1, Email: "ada@x.com"}, nil)
		empRepo.EXPECT().GetByEmail(gomock.Any(), "ada@x.com").
			Return(&domain.Employee{ID: 1, Email: "ada@x.com"}, nil)
		empRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := s.Update(context.Background(), 1, sampleEmployee())
		require.NoError(t, err)
		assert.Equal(t, "Ada", updated.FirstName)
	})

	t.Run("empty status keeps the stored one", func(t *testing.T) {
		s, empRepo, _ := setup(t)

		existing := &domain.Employee{ID: 1, Email: "ada@x.com", Status: domain.StatusInactive}
		empRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(existing, nil)
		empRepo.EXPECT().GetByEmail(gomock.Any(), "ada@x.com").Return(existing, nil)
		empRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *domain.Employee) error {
				assert.Equal(t, domain.StatusInactive, e.Status)
				return nil
			})

		updated, err := s.Update(context.Background(), 1, sampleEmployee())
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInactive, updated.Status)
	})

	t.Run("missing employee", func(t *testing.T) {
		s, empRepo, _ := setup(t)

		empRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := s.Update(context.Background(), 99, sampleEmployee())
		assert.ErrorIs(t, err, apperror.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, empRepo, _ := setup(t)

		empRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&domain.Employee{ID: 1}, nil)
		empRepo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		assert.NoError(t, s.Delete(context.Background(), 1))
	})

	t.Run("missing", func(t *testing.T) {
		s, empRepo, _ := setup(t)

		empRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		err := s.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, apperror.ErrEmployeeNotFound)
	})
}
