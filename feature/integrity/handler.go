package integrity

import (
	"errors"

	"roll-checker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/history", h.HandleHistoryCheck)
}

// HandleIntegrityCheck runs every configured check.
// @Summary Run All Integrity Checks
// @Description Runs the structure check when storage is configured and the history schema check when a database is configured.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.CheckAll(c.Context())
	if len(report.Errors) > 0 {
		l.Warn("Integrity checks reported errors", zap.Any("errors", report.Errors))
	}
	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes the bucket layout.
// @Summary Check Structure
// @Description Checks that the bucket exists and the report prefix holds objects. Optionally creates what is missing.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket and missing folders"
// @Success 200 {object} checks.StructureReport "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Storage Not Configured"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckStructure(c.Context())
	if err != nil {
		return h.fail(c, l, "Structure check failed", err)
	}

	if !report.OK() {
		l.Warn("Bucket structure incomplete",
			zap.Bool("bucket_exists", report.BucketExists),
			zap.Strings("missing", report.Missing))

		if c.QueryBool("fix") {
			l.Info("Attempting to fix bucket structure")
			if err := h.service.FixStructure(c.Context(), report); err != nil {
				return h.fail(c, l, "Failed to fix structure", err)
			}
		}
	}

	return c.JSON(report)
}

// HandleHistoryCheck checks the audit history table.
// @Summary Check History Schema
// @Description Checks that the audit_runs table carries every expected column.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 503 {object} map[string]string "Database Not Configured"
// @Router /integrity/history [get]
func (h *Handler) HandleHistoryCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckHistory()
	if err != nil {
		return h.fail(c, l, "History schema check failed", err)
	}
	if !report.Matched {
		l.Warn("History schema mismatch", zap.Strings("missing", report.MissingColumns))
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, ErrStorageDisabled) || errors.Is(err, ErrDatabaseDisabled) {
		status = fiber.StatusServiceUnavailable
	}
	l.Error(msg, zap.Error(err))
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
