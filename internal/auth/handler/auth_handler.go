package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zongzewu23/employee-management-system/internal/auth/dto"
	"github.com/zongzewu23/employee-management-system/internal/auth/service"
	autherror "github.com/zongzewu23/employee-management-system/internal/errors"
)

const minPasswordLen = 8

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.Username == "" || input.Password == "" {
		return badRequest(c, "username and password are required")
	}

	resp, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    resp,
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if input.Username == "" || input.Email == "" {
		return badRequest(c, "username and email are required")
	}
	if len(input.Password) < minPasswordLen {
		return badRequest(c, "password must be at least 8 characters")
	}

	if _, err := h.userService.Register(c.UserContext(), input); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registration successful",
	})
}

// Validate reports whether a client-supplied token is still good. A bad
// token is a normal answer here, not an error response.
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	var input dto.ValidateInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}

	if !h.userService.ValidateToken(input.Token) {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"valid":   false,
		})
	}

	username, err := h.userService.UsernameFromToken(input.Token)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"valid":    true,
		"username": username,
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}

	resp, err := h.userService.Refresh(c.UserContext(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Token refreshed successfully",
		"data":    resp,
	})
}

// Logout is stateless: the server keeps no token state, so there is nothing
// to revoke. The client discards its tokens.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

// Me resolves the username behind the presented bearer token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return fail(c, autherror.ErrUnauthenticated)
	}

	username, err := h.userService.UsernameFromToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"username": username,
	})
}

func (h *AuthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Service is healthy",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(autherror.StatusFor(err)).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}
