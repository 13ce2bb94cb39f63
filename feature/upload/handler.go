package upload

import (
	"io"

	"imgbase/core/logger"
	"imgbase/core/response"
	"imgbase/core/storage"
	"imgbase/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for image uploads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the upload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/upload", h.HandleUpload)
}

// HandleUpload stores the submitted image in the bucket.
// @Summary Upload Image
// @Description Uploads one image. The object name is the "name" field, else the file name, else image_{millis}.jpg.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param name formData string false "Object name"
// @Param mime formData string false "Content type (default from the part, else image/jpeg)"
// @Success 200 {object} map[string]string "Upload Receipt"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 {object} map[string]string "Storage authentication failed"
// @Failure 409 {object} map[string]string "Name already exists"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 502 {object} map[string]string "Storage unreachable"
// @Router /upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		l.Info("Upload without a readable file", zap.Error(err))
		return response.BadRequest(c, "could not read the file")
	}

	f, err := fh.Open()
	if err != nil {
		return response.BadRequest(c, "could not read the file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return response.BadRequest(c, "could not read the file")
	}

	mimeType := utils.MimeType(fh.Filename, storage.DefaultMimeType, c.FormValue("mime"), fh.Header.Get("Content-Type"))

	receipt, err := h.service.Upload(c.UserContext(), data, mimeType, c.FormValue("name"), fh.Filename)
	if err != nil {
		return response.Failure(c, l, err)
	}

	l.Info("Image uploaded", zap.String("name", receipt.Name), zap.Int("size", len(data)))
	return c.JSON(fiber.Map{
		"status": "uploaded",
		"name":   receipt.Name,
		"url":    receipt.URL,
	})
}
