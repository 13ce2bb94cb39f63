package gallery

import (
	"imgbase/core/logger"
	"imgbase/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DeleteRequest is the body of DELETE /gallery.
type DeleteRequest struct {
	Names []string `json:"names"`
}

// Handler handles HTTP requests for the admin gallery.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the gallery routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/gallery")
	group.Get("/", h.HandleList)
	group.Delete("/", h.HandleDelete)
}

// HandleList lists the images in the bucket.
// @Summary List Gallery
// @Description Lists the first 100 objects of the bucket with their public URLs.
// @Tags gallery
// @Produce json
// @Success 200 {object} map[string]interface{} "Gallery"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 404 {object} map[string]string "Bucket not found"
// @Failure 502 {object} map[string]string "Storage unreachable"
// @Security ApiKeyAuth
// @Router /gallery [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	items, err := h.service.List(c.UserContext())
	if err != nil {
		return response.Failure(c, l, err)
	}

	body := fiber.Map{
		"items": items,
		"count": len(items),
	}
	if len(items) == 0 {
		body["message"] = EmptyMessage
	}
	return c.JSON(body)
}

// HandleDelete deletes the selected images.
// @Summary Delete Images
// @Description Deletes the named objects in one request. Partial failures are not reported.
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body gallery.DeleteRequest true "Names to delete"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 502 {object} map[string]string "Storage unreachable"
// @Security ApiKeyAuth
// @Router /gallery [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	n, err := h.service.Delete(c.UserContext(), req.Names)
	if err != nil {
		return response.Failure(c, l, err)
	}

	l.Info("Images deleted", zap.Strings("names", req.Names))
	return c.JSON(fiber.Map{
		"status":  "deleted",
		"count":   n,
		"message": DeletedMessage(n),
	})
}
