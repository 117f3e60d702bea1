package handler

import (
	"github.com/gofiber/fiber/v2"

	authdomain "github.com/zongzewu23/employee-management-system/internal/auth/domain"
	"github.com/zongzewu23/employee-management-system/internal/middleware"
)

// RegisterRoutes mounts the employee endpoints. Reads are open to any
// authenticated role; mutations require ADMIN.
func RegisterRoutes(app *fiber.App, h *EmployeeHandler, m *middleware.AuthMiddleware) {
	employees := app.Group("/api/employees")

	employees.Get("/", m.RequireRole(authdomain.RoleAdmin, authdomain.RoleUser), h.GetAll)
	employees.Get("/:id", m.RequireRole(authdomain.RoleAdmin, authdomain.RoleUser), h.GetByID)

	employees.Post("/", m.RequireRole(authdomain.RoleAdmin), h.Create)
	employees.Put("/:id", m.RequireRole(authdomain.RoleAdmin), h.Update)
	employees.Delete("/:id", m.RequireRole(authdomain.RoleAdmin), h.Delete)
}
