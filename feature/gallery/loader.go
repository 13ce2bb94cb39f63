package gallery

import (
	"imgbase/core/middleware/auth"
	"imgbase/core/storage"
	"imgbase/feature/activity"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	apiKey  string
}

// NewFeature creates a new Gallery feature. A non-empty apiKey protects its routes.
func NewFeature(client storage.Client, recorder activity.Recorder, logger *zap.Logger, apiKey string) *Feature {
	svc := NewService(client, recorder, logger)
	return &Feature{service: svc, handler: NewHandler(svc), apiKey: apiKey}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "gallery"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes behind the admin key check.
func (f *Feature) Load(app fiber.Router) error {
	app.Use("/gallery", auth.New(auth.Config{ApiKey: f.apiKey}))
	f.handler.RegisterRoutes(app)
	return nil
}
