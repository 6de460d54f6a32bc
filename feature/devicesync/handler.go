package devicesync

import (
	"errors"

	"device-sync/core/logger"
	"device-sync/core/reconcile"
	"device-sync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the synchronization jobs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ApplyRequest is the body of an apply request.
type ApplyRequest struct {
	// Devices are the IDs of the devices to synchronize, as numbers or numeric strings.
	Devices []any `json:"devices"`
	DryRun  bool  `json:"dry_run"`
}

// RegisterRoutes registers the synchronization routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Get("/categories", h.HandleCategories)
	group.Post("/tags", h.HandleEnsureTags)
	group.Post("/scan", h.HandleScan)
	group.Post("/apply", h.HandleApply)
	group.Get("/reports/:job", h.HandleListReports)
	group.Get("/reports/:job/:id", h.HandleGetReport)
}

// HandleCategories lists the component categories in creation order.
// @Summary List Categories
// @Description Lists the component categories in the order the applier creates them, with their exemption tags.
// @Tags sync
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} CategoryInfo "Categories"
// @Router /sync/categories [get]
func (h *Handler) HandleCategories(c *fiber.Ctx) error {
	return c.JSON(DescribeCategories())
}

// HandleEnsureTags creates missing exemption tags.
// @Summary Ensure Exemption Tags
// @Description Creates the exemption tag of every category when absent.
// @Tags sync
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Tag "Exemption tags"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/tags [post]
func (h *Handler) HandleEnsureTags(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	tags, err := h.service.EnsureTags(c.Context())
	if err != nil {
		l.Error("Ensuring exemption tags failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(tags)
}

// HandleScan runs the scanner.
// @Summary Scan Devices
// @Description Reports components defined by device type templates but missing on devices. Nothing is written.
// @Tags sync
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} Result "Scan result"
// @Failure 409 {object} Result "Exemption tags not initialized"
// @Failure 500 {object} Result "Scan failed"
// @Router /sync/scan [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering device scan")

	res, err := h.service.Scan(c.Context())
	if err != nil {
		l.Error("Device scan failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(res)
	}
	return c.JSON(res)
}

// HandleApply creates missing components on the selected devices.
// @Summary Apply Device Type Components
// @Description Creates the components defined by device type templates that are missing on the selected devices.
// @Tags sync
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body ApplyRequest true "Devices to synchronize"
// @Success 200 {object} Result "Apply result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} Result "Device not found"
// @Failure 500 {object} Result "Apply failed"
// @Router /sync/apply [post]
func (h *Handler) HandleApply(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	ids, err := utils.ParseIDs(req.Devices)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(ids) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrNoDevices.Error()})
	}

	l.Info("Triggering device apply", zap.Uints("devices", ids), zap.Bool("dry_run", req.DryRun))

	res, err := h.service.Apply(c.Context(), ids, reconcile.Options{DryRun: req.DryRun})
	if err != nil {
		l.Error("Device apply failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(res)
	}
	return c.JSON(res)
}

// HandleListReports lists archived results of a job.
// @Summary List Reports
// @Description Lists the IDs of archived job results.
// @Tags sync
// @Security ApiKeyAuth
// @Produce json
// @Param job path string true "Job name (scan or apply)"
// @Success 200 {object} map[string]interface{} "Report IDs"
// @Failure 400 {object} map[string]string "Unknown job"
// @Failure 404 {object} map[string]string "Archive disabled"
// @Router /sync/reports/{job} [get]
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	job := c.Params("job")

	ids, err := h.service.Reports(c.Context(), job)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"job": job, "reports": ids})
}

// HandleGetReport returns an archived result.
// @Summary Get Report
// @Description Returns an archived job result.
// @Tags sync
// @Security ApiKeyAuth
// @Produce json
// @Param job path string true "Job name (scan or apply)"
// @Param id path string true "Result ID"
// @Success 200 {object} Result "Job result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sync/reports/{job}/{id} [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	res, err := h.service.Report(c.Context(), c.Params("job"), c.Params("id"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNoDevices), errors.Is(err, ErrUnknownJob), errors.Is(err, ErrInvalidReportID):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrDeviceNotFound), errors.Is(err, ErrReportNotFound), errors.Is(err, ErrArchiveDisabled):
		return fiber.StatusNotFound
	case errors.Is(err, ErrTagNotFound):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
