package activity

import (
	"imgbase/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	repo    *Repository
	handler *Handler
	apiKey  string
}

// NewFeature creates the activity feature. A nil db disables it and a
// non-empty apiKey protects its routes.
func NewFeature(db *gorm.DB, logger *zap.Logger, apiKey string) *Feature {
	if db == nil {
		return &Feature{}
	}
	repo := NewRepository(db, logger)
	return &Feature{repo: repo, handler: NewHandler(repo, logger), apiKey: apiKey}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "activity"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.repo != nil
}

// Recorder returns the recorder other features should report to.
func (f *Feature) Recorder() Recorder {
	if f.repo == nil {
		return NopRecorder{}
	}
	return f.repo
}

// Load migrates the table and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.repo.Migrate(); err != nil {
		return err
	}
	app.Use("/activity", auth.New(auth.Config{ApiKey: f.apiKey}))
	f.handler.RegisterRoutes(app)
	return nil
}
