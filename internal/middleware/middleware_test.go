package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecotrack/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(jwtService jwt.JWTService) *fiber.App {
	app := fiber.New()
	app.Use(NewMiddleware().AuthMiddleware(jwtService))
	app.Get("/", func(c *fiber.Ctx) error {
		subject, _ := c.Locals("subject").(string)
		return c.SendString(subject)
	})
	return app
}

func TestAuthMiddleware_OpenWithoutService(t *testing.T) {
	app := newAuthApp(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewJWTService("middleware-secret")
	token, err := jwtService.GenerateToken("kitchen", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "no bearer prefix", header: token, want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", want: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, want: http.StatusOK},
	}

	app := newAuthApp(jwtService)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewMiddleware().CORSMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:5173")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
