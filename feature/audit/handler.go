package audit

import (
	"errors"
	"fmt"

	"roll-checker/core/logger"
	"roll-checker/core/reconcile"
	"roll-checker/feature/audit/sources"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for audits.
type Handler struct {
	service *Service
	// hostAccess allows requests that read or write the server's disk or fetch URLs.
	hostAccess bool
}

// NewHandler creates a new HTTP handler. Without hostAccess the local and remote sources,
// snapshot files on disk and report saving are refused.
func NewHandler(service *Service, hostAccess bool) *Handler {
	return &Handler{service: service, hostAccess: hostAccess}
}

// checkHostAccess rejects requests that would touch the server host when host access is off.
func (h *Handler) checkHostAccess(req Request) error {
	if h.hostAccess {
		return nil
	}
	switch {
	case req.Source == sources.KindLocal, req.Source == sources.KindRemote:
		return fmt.Errorf("%w: the %s source needs an API key on the server", ErrInvalidRequest, req.Source)
	case req.Source == sources.KindSnapshot && req.Snapshot == "" && !req.FromBucket:
		return fmt.Errorf("%w: snapshot files need an API key on the server", ErrInvalidRequest)
	case req.SaveReport:
		return fmt.Errorf("%w: saving reports needs an API key on the server", ErrInvalidRequest)
	}
	return nil
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Post("/", h.HandleAudit)
	group.Post("/report", h.HandleReport)

	app.Post("/listing/extract", h.HandleExtract)
}

// statusFor maps audit errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, reconcile.ErrInvalidRange),
		errors.Is(err, reconcile.ErrInvalidTemplate),
		errors.Is(err, ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, reconcile.ErrSnapshotUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// run executes the posted request. On failure it writes the error response itself
// and returns a nil result with the write error.
func (h *Handler) run(c *fiber.Ctx) (*Result, error) {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid audit request body"})
	}
	if err := h.checkHostAccess(req); err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Audit request refused", zap.Error(err))
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := h.service.Run(c.Context(), req)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Audit request failed", zap.Error(err))
		return nil, c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return res, nil
}

// HandleAudit runs an audit.
// @Summary Run Audit
// @Description Lists the source, reconciles it against the expected range and returns the outcome with the text report.
// @Tags audit
// @Accept json
// @Produce json
// @Param request body audit.Request true "Audit Request"
// @Success 200 {object} audit.Result "Audit Result"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 502 {object} map[string]string "Snapshot Unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit [post]
func (h *Handler) HandleAudit(c *fiber.Ctx) error {
	res, err := h.run(c)
	if res == nil {
		return err
	}
	return c.JSON(res)
}

// HandleReport runs an audit and returns only the text report.
// @Summary Run Audit Report
// @Description Same as /audit but answers with the plain text report.
// @Tags audit
// @Accept json
// @Produce plain
// @Param request body audit.Request true "Audit Request"
// @Success 200 {string} string "Report"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 502 {object} map[string]string "Snapshot Unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/report [post]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	res, err := h.run(c)
	if res == nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(res.Report)
}

// HandleExtract extracts the file list from a captured snapshot.
// @Summary Extract Listing
// @Description Runs the extraction strategies over a captured folder page (HTML) or snapshot JSON sent as the body.
// @Tags listing
// @Accept html,json
// @Produce json
// @Param extension query string false "Keep only this extension (defaults to the configured one)"
// @Param candidates query boolean false "Include every strategy candidate"
// @Success 200 {object} audit.Extraction "Extracted Files"
// @Failure 400 {object} map[string]string "Invalid Snapshot"
// @Router /listing/extract [post]
func (h *Handler) HandleExtract(c *fiber.Ctx) error {
	var ext *string
	if c.Context().QueryArgs().Has("extension") {
		v := c.Query("extension")
		ext = &v
	}

	out, err := h.service.Extract(c.Body(), ext, c.QueryBool("candidates"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	logger.WithRayID(h.service.logger, c).Info("Extracted listing", zap.Int("files", len(out.Files)))
	return c.JSON(out)
}
