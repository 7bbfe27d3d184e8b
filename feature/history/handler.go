package history

import (
	"errors"

	"roll-checker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for audit history.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
}

// HandleList lists recorded audit runs.
// @Summary List Audit Runs
// @Description Returns recorded audit runs, most recent first.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of runs" default(50)
// @Param source query string false "Only runs from this source (local, bucket, snapshot, remote)"
// @Success 200 {array} history.Run "Audit Runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	runs, err := h.repo.List(c.Context(), c.Query("source"), c.QueryInt("limit", DefaultLimit))
	if err != nil {
		l.Error("Failed to list audit runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runs)
}

// HandleGet returns a single audit run.
// @Summary Get Audit Run
// @Tags history
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} history.Run "Audit Run"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	run, err := h.repo.Get(c.Context(), c.Params("id"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to load audit run", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(run)
}
