package response_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"imgbase/core/response"
	"imgbase/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		message  string
		wantKind string
	}{
		{"Permission", &storage.Failure{Kind: storage.KindPermission, Message: "permission denied: check delete permission"}, 403, "permission denied: check delete permission", "permission"},
		{"Network", &storage.Failure{Kind: storage.KindNetwork, Message: "network error: refused"}, 502, "network error: refused", "network"},
		{"Plain", errors.New("failed to load activities: dial tcp 10.0.0.5:3306: connection refused"), 500, "internal server error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return response.Failure(c, zap.NewNop(), tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.message, body["error"])
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, body["kind"])
			}
		})
	}
}

func TestFailure_LogsInternalDetails(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return response.Failure(c, zap.New(core), errors.New("failed to load activities: disk I/O error"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	entries := logs.FilterMessage("Request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "failed to load activities: disk I/O error", entries[0].ContextMap()["error"])
}
