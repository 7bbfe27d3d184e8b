package settings

import (
	"errors"

	"roll-checker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for settings.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the settings routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/settings")
	group.Get("/", h.HandleGet)
	group.Put("/", h.HandlePut)
}

// HandleGet returns the saved settings.
// @Summary Get Settings
// @Description Returns the saved audit preferences, or the defaults.
// @Tags settings
// @Produce json
// @Success 200 {object} settings.Settings "Settings"
// @Router /settings [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	return c.JSON(h.store.Load())
}

// HandlePut validates and saves settings.
// @Summary Save Settings
// @Description Replaces the saved audit preferences.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body settings.Settings true "Settings"
// @Success 200 {object} settings.Settings "Saved Settings"
// @Failure 400 {object} map[string]string "Invalid Settings"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /settings [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	next := Defaults()
	if err := c.BodyParser(&next); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid settings body"})
	}
	if err := next.Validate(); err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, ErrInvalidSettings) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.store.Save(next); err != nil {
		l.Error("Failed to save settings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Settings saved", zap.String("path", h.store.Path()))
	return c.JSON(next)
}
