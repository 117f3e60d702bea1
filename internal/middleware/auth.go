package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/zongzewu23/employee-management-system/internal/auth/domain"
	"github.com/zongzewu23/employee-management-system/internal/auth/service"
	autherror "github.com/zongzewu23/employee-management-system/internal/errors"
)

const bearerPrefix = "Bearer "

// principalKey is the fiber.Ctx locals slot holding the authenticated user.
const principalKey = "principal"

// AuthMiddleware authenticates requests from bearer tokens and provides the
// route-level guards that enforce role requirements.
type AuthMiddleware struct {
	tokens service.TokenGenerator
	users  domain.UserRepository
	log    *zap.Logger
}

func NewAuthMiddleware(tokens service.TokenGenerator, users domain.UserRepository, log *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users, log: log}
}

// Authenticate runs once per request, before route dispatch. It never writes
// a response: any failure (missing header, bad token, store outage) leaves
// the request unauthenticated and lets the guards decide. A request carries
// at most one principal; an already-populated slot is left untouched.
func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			return c.Next()
		}

		claims, err := m.tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			// A bad signature is worth a warning; expired or garbled
			// tokens are routine client behavior.
			if errors.Is(err, autherror.ErrBadSignature) {
				m.log.Warn("bearer token signature mismatch", zap.String("path", c.Path()))
			} else {
				m.log.Debug("rejected bearer token", zap.Error(err), zap.String("path", c.Path()))
			}
			return c.Next()
		}

		if c.Locals(principalKey) != nil {
			return c.Next()
		}

		user, err := m.users.GetByUsername(c.UserContext(), claims.Subject)
		if err != nil {
			m.log.Error("principal lookup failed", zap.Error(err))
			return c.Next()
		}
		if user == nil || !user.Enabled {
			return c.Next()
		}

		c.Locals(principalKey, user)

		return c.Next()
	}
}

// RequireAuthenticated rejects requests that carry no principal.
func (m *AuthMiddleware) RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := CurrentUser(c); !ok {
			return unauthenticated(c)
		}
		return c.Next()
	}
}

// RequireRole rejects requests whose principal holds none of the listed
// roles. No principal at all is a 401, the wrong role a 403.
func (m *AuthMiddleware) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return unauthenticated(c)
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": autherror.ErrAccessDenied.Error(),
		})
	}
}

// CurrentUser returns the principal attached to the request, if any.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	user, ok := c.Locals(principalKey).(*domain.User)
	return user, ok
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": autherror.ErrUnauthenticated.Error(),
	})
}
