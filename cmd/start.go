package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"imgbase/core/loader"
	"imgbase/core/logger"
	"imgbase/core/middleware/rayid"
	"imgbase/core/response"
	"imgbase/feature/activity"
	"imgbase/feature/gallery"
	"imgbase/feature/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "imgbase/docs/swagger"
)

// @title imgbase API
// @version 1.0
// @description Image upload and gallery service backed by Supabase Storage.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the imgbase server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()
		zap.ReplaceGlobals(a.logger)
		logg := a.logger

		if !a.cfg.Server.AdminProtected() {
			logg.Warn("server.api_key is empty, admin routes are unprotected")
		}

		app := newServer(a)

		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := app.Listen(":" + a.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newServer builds the Fiber app with middleware and every enabled feature.
func newServer(a *app) *fiber.App {
	logg := a.logger

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             a.cfg.Server.BodyLimit(),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var e *fiber.Error
			if errors.As(err, &e) {
				return response.Error(c, e.Code, e.Message)
			}
			return response.Error(c, fiber.StatusInternalServerError, response.InternalError)
		},
	})

	// RayID first so every log line can be traced
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Swagger Documentation (Public)
	app.Get("/swagger/*", swagger.HandlerDefault)

	apiKey := a.cfg.Server.ApiKey
	act := activity.NewFeature(a.db, logg, apiKey)

	mgr := loader.NewManager(logg)
	mgr.Register(upload.NewFeature(a.store, act.Recorder(), logg))
	mgr.Register(gallery.NewFeature(a.store, act.Recorder(), logg, apiKey))
	// Last, so a failed migration only costs the activity routes.
	mgr.Register(act)

	if err := mgr.LoadAll(app); err != nil {
		logg.Warn("Failed to load features", zap.Error(err))
	}

	return app
}

func init() {
	RootCmd.AddCommand(startCmd)
}
