package handler

import (
	"github.com/gofiber/fiber/v2"

	authdomain "github.com/zongzewu23/employee-management-system/internal/auth/domain"
	"github.com/zongzewu23/employee-management-system/internal/middleware"
)

// RegisterRoutes mounts the department endpoints. Every operation is
// ADMIN-only.
func RegisterRoutes(app *fiber.App, h *DepartmentHandler, m *middleware.AuthMiddleware) {
	departments := app.Group("/api/departments", m.RequireRole(authdomain.RoleAdmin))

	departments.Get("/", h.GetAll)
	departments.Get("/:id", h.GetByID)
	departments.Post("/", h.Create)
	departments.Put("/:id", h.Update)
	departments.Delete("/:id", h.Delete)
}
