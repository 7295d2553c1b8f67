package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"quizhub/internal/config"
	"quizhub/internal/domain"
	"quizhub/internal/logger"
	"quizhub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "debug"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

func newAuthTestApp(t *testing.T) (*fiber.App, service.AuthService, *int) {
	t.Helper()

	authService, err := service.NewAuthService(&config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret-key-that-is-32-bytes!!"},
	})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})

	handlerCalls := 0
	app.Get("/protected", Protected(authService), func(c *fiber.Ctx) error {
		handlerCalls++
		identity, ok := IdentityFromCtx(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"user_id": identity.UserID})
	})
	app.Post("/admin", Protected(authService), RequireRole(domain.RoleSuperAdmin), func(c *fiber.Ctx) error {
		handlerCalls++
		return c.SendStatus(http.StatusCreated)
	})

	return app, authService, &handlerCalls
}

func TestProtected(t *testing.T) {
	tests := []struct {
		name       string
		authHeader func(authService service.AuthService) string
		wantStatus int
	}{
		{
			name:       "missing header",
			authHeader: func(service.AuthService) string { return "" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: func(service.AuthService) string { return "Basic abc" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			authHeader: func(service.AuthService) string { return "Bearer " },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: func(service.AuthService) string { return "Bearer not-a-jwt" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			authHeader: func(authService service.AuthService) string {
				token, _ := authService.CreateToken("user1", domain.RoleUser, -time.Minute)
				return BearerSchema + token
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "valid token",
			authHeader: func(authService service.AuthService) string {
				token, _ := authService.CreateToken("user1", domain.RoleUser, time.Hour)
				return BearerSchema + token
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, authService, _ := newAuthTestApp(t)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header := tc.authHeader(authService); header != "" {
				req.Header.Set(AuthorizationHeader, header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Run("regular user is rejected before the handler runs", func(t *testing.T) {
		app, authService, handlerCalls := newAuthTestApp(t)

		token, err := authService.CreateToken("user1", domain.RoleUser, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set(AuthorizationHeader, BearerSchema+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, 0, *handlerCalls, "forbidden requests must not reach the handler")
	})

	t.Run("super admin passes", func(t *testing.T) {
		app, authService, handlerCalls := newAuthTestApp(t)

		token, err := authService.CreateToken("admin1", domain.RoleSuperAdmin, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set(AuthorizationHeader, BearerSchema+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, 1, *handlerCalls)
	})

	t.Run("unauthenticated admin route call is 401 not 403", func(t *testing.T) {
		app, _, _ := newAuthTestApp(t)

		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
