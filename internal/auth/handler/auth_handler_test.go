package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/zongzewu23/employee-management-system/internal/auth/domain"
	"github.com/zongzewu23/employee-management-system/internal/auth/handler"
	"github.com/zongzewu23/employee-management-system/internal/auth/service"
	"github.com/zongzewu23/employee-management-system/internal/mocks"
)

func setupApp(t *testing.T) (*fiber.App, *mocks.MockUserRepository, *service.TokenService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepository(ctrl)
	tokenService := service.NewTokenService("handler-test-secret", 15, 1440)
	userService := service.NewUserService(mockRepo, tokenService, zap.NewNop())
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	return app, mockRepo, tokenService
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func aliceUser(t *testing.T) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123456"), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           "user-1",
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Enabled:      true,
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, mockRepo, _ := setupApp(t)

		mockRepo.EXPECT().ExistsByUsername(gomock.Any(), "alice").Return(false, nil)
		mockRepo.EXPECT().ExistsByEmail(gomock.Any(), "a@x.com").Return(false, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp := postJSON(t, app, "/api/auth/register",
			fiber.Map{"username": "alice", "password": "pw123456", "email": "a@x.com"})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
	})

	t.Run("duplicate username", func(t *testing.T) {
		app, mockRepo, _ := setupApp(t)

		mockRepo.EXPECT().ExistsByUsername(gomock.Any(), "alice").Return(true, nil)

		resp := postJSON(t, app, "/api/auth/register",
			fiber.Map{"username": "alice", "password": "pw123456", "email": "b@x.com"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "username already exists", body["message"])
	})

	t.Run("password too short", func(t *testing.T) {
		app, _, _ := setupApp(t)

		resp := postJSON(t, app, "/api/auth/register",
			fiber.Map{"username": "alice", "password": "short", "email": "a@x.com"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success returns token pair and role", func(t *testing.T) {
		app, mockRepo, tokenService := setupApp(t)

		mockRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(aliceUser(t), nil)

		resp := postJSON(t, app, "/api/auth/login",
			fiber.Map{"username": "alice", "password": "pw123456"})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])

		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Bearer", data["tokenType"])
		assert.Equal(t, "alice", data["username"])
		assert.Equal(t, "a@x.com", data["email"])
		assert.Equal(t, domain.RoleUser, data["role"])

		claims, err := tokenService.Verify(data["accessToken"].(string))
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		app, mockRepo, _ := setupApp(t)

		mockRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(aliceUser(t), nil)

		resp := postJSON(t, app, "/api/auth/login",
			fiber.Map{"username": "alice", "password": "wrong"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "invalid username or password", body["message"])
	})

	t.Run("missing fields", func(t *testing.T) {
		app, _, _ := setupApp(t)

		resp := postJSON(t, app, "/api/auth/login", fiber.Map{"username": "alice"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestAuthHandler_Validate(t *testing.T) {
	app, _, tokenService := setupApp(t)

	token, err := tokenService.Issue("alice", service.TokenTypeAccess, 15*time.Minute)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/validate", fiber.Map{"token": token})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["valid"])
		assert.Equal(t, "alice", body["username"])
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/validate", fiber.Map{"token": "garbage"})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["valid"])
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, mockRepo, tokenService := setupApp(t)

		refreshToken, err := tokenService.Issue("alice", service.TokenTypeRefresh, time.Hour)
		require.NoError(t, err)

		mockRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(aliceUser(t), nil)

		resp := postJSON(t, app, "/api/auth/refresh", fiber.Map{"refreshToken": refreshToken})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.NotEmpty(t, data["accessToken"])
		assert.NotEmpty(t, data["refreshToken"])
	})

	t.Run("access token rejected", func(t *testing.T) {
		app, _, tokenService := setupApp(t)

		accessToken, err := tokenService.Issue("alice", service.TokenTypeAccess, 15*time.Minute)
		require.NoError(t, err)

		resp := postJSON(t, app, "/api/auth/refresh", fiber.Map{"refreshToken": accessToken})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "token is not a refresh token", body["message"])
	})

	t.Run("expired token rejected", func(t *testing.T) {
		app, _, tokenService := setupApp(t)

		expired, err := tokenService.Issue("alice", service.TokenTypeRefresh, -time.Minute)
		require.NoError(t, err)

		resp := postJSON(t, app, "/api/auth/refresh", fiber.Map{"refreshToken": expired})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := postJSON(t, app, "/api/auth/logout", fiber.Map{})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
}

func TestAuthHandler_Me(t *testing.T) {
	app, _, tokenService := setupApp(t)

	token, err := tokenService.Issue("alice", service.TokenTypeAccess, 15*time.Minute)
	require.NoError(t, err)

	t.Run("with bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "alice", body["username"])
	})

	t.Run("without header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthHandler_Health(t *testing.T) {
	app, _, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
