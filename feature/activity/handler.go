package activity

import (
	"imgbase/core/logger"
	"imgbase/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the activity log.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers the activity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/activity", h.HandleRecent)
}

// HandleRecent returns the most recent storage operations.
// @Summary Recent Activity
// @Description Lists recorded upload and delete operations, newest first.
// @Tags activity
// @Produce json
// @Param limit query int false "Maximum number of records (default 50, max 500)"
// @Success 200 {array} activity.Activity "Activities"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /activity [get]
func (h *Handler) HandleRecent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	entries, err := h.repo.Recent(c.UserContext(), c.QueryInt("limit", DefaultLimit))
	if err != nil {
		return response.Failure(c, l, err)
	}
	return c.JSON(entries)
}
