package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zongzewu23/employee-management-system/internal/employee/domain"
	"github.com/zongzewu23/employee-management-system/internal/employee/dto"
	"github.com/zongzewu23/employee-management-system/internal/employee/service"
	apperror "github.com/zongzewu23/employee-management-system/internal/errors"
)

const hireDateLayout = "2006-01-02"

type EmployeeHandler struct {
	service *service.EmployeeService
}

func NewEmployeeHandler(service *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	employees, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return fail(c, err)
	}

	out := make([]dto.EmployeeOutput, 0, len(employees))
	for i := range employees {
		out = append(out, toOutput(&employees[i]))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    out,
	})
}

func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid employee id")
	}

	e, err := h.service.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    toOutput(e),
	})
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	e, errMsg := parseInput(c)
	if e == nil {
		return badRequest(c, errMsg)
	}

	created, err := h.service.Create(c.UserContext(), e)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Employee created",
		"data":    toOutput(created),
	})
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid employee id")
	}

	e, errMsg := parseInput(c)
	if e == nil {
		return badRequest(c, errMsg)
	}

	updated, err := h.service.Update(c.UserContext(), int64(id), e)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Employee updated",
		"data":    toOutput(updated),
	})
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid employee id")
	}

	if err := h.service.Delete(c.UserContext(), int64(id)); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Employee deleted",
	})
}

func parseInput(c *fiber.Ctx) (*domain.Employee, string) {
	var input dto.EmployeeInput
	if err := c.BodyParser(&input); err != nil {
		return nil, "invalid input"
	}
	if input.FirstName == "" || input.LastName == "" || input.Email == "" {
		return nil, "firstName, lastName and email are required"
	}
	if input.Status != "" && !domain.ValidStatus(input.Status) {
		return nil, "invalid status"
	}

	hireDate := time.Now()
	if input.HireDate != "" {
		parsed, err := time.Parse(hireDateLayout, input.HireDate)
		if err != nil {
			return nil, "hireDate must be formatted as YYYY-MM-DD"
		}
		hireDate = parsed
	}

	return &domain.Employee{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Position:     input.Position,
		Salary:       input.Salary,
		HireDate:     hireDate,
		Status:       input.Status,
		DepartmentID: input.DepartmentID,
	}, ""
}

func toOutput(e *domain.Employee) dto.EmployeeOutput {
	return dto.EmployeeOutput{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Phone:        e.Phone,
		Position:     e.Position,
		Salary:       e.Salary,
		HireDate:     e.HireDate.Format(hireDateLayout),
		Status:       e.Status,
		DepartmentID: e.DepartmentID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(apperror.StatusFor(err)).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}
