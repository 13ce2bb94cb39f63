package middleware_test

import (
	"net/http/httptest"
	"testing"

	"imgbase/core/middleware/auth"
	"imgbase/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("ray_id").(string))
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Len(t, resp.Header.Get(rayid.Header), 36)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.Header, "upstream-id")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "upstream-id", resp.Header.Get(rayid.Header))
	})
}

func TestAuth(t *testing.T) {
	newApp := func(key string) *fiber.App {
		app := fiber.New()
		app.Use(auth.New(auth.Config{ApiKey: key}))
		app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
		return app
	}

	tests := []struct {
		name   string
		key    string
		header string
		want   int
	}{
		{"Disabled", "", "", 200},
		{"Valid", "secret", "secret", 200},
		{"Missing", "secret", "", 401},
		{"Wrong", "secret", "guess", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set(auth.Header, tt.header)
			}
			resp, err := newApp(tt.key).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
