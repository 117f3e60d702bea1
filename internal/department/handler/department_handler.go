package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zongzewu23/employee-management-system/internal/department/domain"
	"github.com/zongzewu23/employee-management-system/internal/department/dto"
	"github.com/zongzewu23/employee-management-system/internal/department/service"
	apperror "github.com/zongzewu23/employee-management-system/internal/errors"
)

type DepartmentHandler struct {
	service *service.DepartmentService
}

func NewDepartmentHandler(service *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

func (h *DepartmentHandler) GetAll(c *fiber.Ctx) error {
	departments, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return fail(c, err)
	}

	out := make([]dto.DepartmentOutput, 0, len(departments))
	for i := range departments {
		out = append(out, toOutput(&departments[i]))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    out,
	})
}

func (h *DepartmentHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	d, err := h.service.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    toOutput(d),
	})
}

func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	d, errMsg := parseInput(c)
	if d == nil {
		return badRequest(c, errMsg)
	}

	created, err := h.service.Create(c.UserContext(), d)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Department created",
		"data":    toOutput(created),
	})
}

func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	d, errMsg := parseInput(c)
	if d == nil {
		return badRequest(c, errMsg)
	}

	updated, err := h.service.Update(c.UserContext(), int64(id), d)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Department updated",
		"data":    toOutput(updated),
	})
}

func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	if err := h.service.Delete(c.UserContext(), int64(id)); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Department deleted",
	})
}

func parseInput(c *fiber.Ctx) (*domain.Department, string) {
	var input dto.DepartmentInput
	if err := c.BodyParser(&input); err != nil {
		return nil, "invalid input"
	}
	if input.Name == "" {
		return nil, "name is required"
	}

	return &domain.Department{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		ManagerName: input.ManagerName,
	}, ""
}

func toOutput(d *domain.Department) dto.DepartmentOutput {
	return dto.DepartmentOutput{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Location:    d.Location,
		ManagerName: d.ManagerName,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
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
