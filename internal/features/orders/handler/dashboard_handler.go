package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"recovery-dashboard/internal/core/logger"
	"recovery-dashboard/internal/features/orders/adapters"
	"recovery-dashboard/internal/features/orders/domain"
	"recovery-dashboard/internal/features/orders/ports"
	"recovery-dashboard/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHandler handles HTTP requests for the order dashboard.
type DashboardHandler struct {
	service ports.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// ImportRequest represents the request body for importing a remote export.
type ImportRequest struct {
	URL string `json:"url"`
}

// RecordsResponse wraps the records of the published snapshot.
type RecordsResponse struct {
	SnapshotID string                    `json:"snapshotId"`
	Count      int                       `json:"count"`
	Records    []domain.NormalizedRecord `json:"records"`
}

// AggregatesResponse carries the projections of the published snapshot.
type AggregatesResponse struct {
	SnapshotID string `json:"snapshotId"`
	Today      string `json:"today"`
	domain.Aggregates
}

// Upload handles POST /dashboard/uploads.
// @Summary Upload an order export
// @Description Runs the pipeline over a CSV/TSV export and publishes the resulting dashboard.
// @Tags Dashboard
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV or TSV export"
// @Param delimiter formData string false "comma, tab or auto"
// @Success 201 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/uploads [post]
func (h *DashboardHandler) Upload(c *fiber.Ctx) error {
	rayID := requestID(c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "file is required",
			RayID:   rayID,
		})
	}

	delim, err := adapters.DelimiterFromName(c.FormValue("delimiter"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	f, err := fh.Open()
	if err != nil {
		return h.fail(c, rayID, fmt.Errorf("error reading file: %w", err))
	}
	defer f.Close()

	snapshot, err := h.service.Upload(c.Context(), f, fh.Filename, ports.ParseOptions{Delimiter: delim})
	if err != nil {
		return h.fail(c, rayID, err)
	}

	return c.Status(http.StatusCreated).JSON(snapshot)
}

// Import handles POST /dashboard/imports.
// @Summary Import an order export from a URL
// @Description Downloads a CSV/TSV export and publishes the resulting dashboard.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body ImportRequest true "Export location"
// @Success 201 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/imports [post]
func (h *DashboardHandler) Import(c *fiber.Ctx) error {
	rayID := requestID(c)

	var req ImportRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "url is required",
			RayID:   rayID,
		})
	}

	snapshot, err := h.service.Import(c.Context(), strings.TrimSpace(req.URL))
	if err != nil {
		return h.fail(c, rayID, err)
	}

	return c.Status(http.StatusCreated).JSON(snapshot)
}

// GetDashboard handles GET /dashboard.
// @Summary Get the published dashboard
// @Description Returns the records and projections of the last successful run.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	rayID := requestID(c)

	snapshot, err := h.service.Latest(c.Context())
	if err != nil {
		return h.fail(c, rayID, err)
	}

	return c.Status(http.StatusOK).JSON(snapshot)
}

// GetRecords handles GET /dashboard/records.
// @Summary List normalized records
// @Description Returns the records of the published dashboard, optionally filtered by status category.
// @Tags Dashboard
// @Produce json
// @Param status query string false "Status category (Pending, Complete, At Risk, On Hold, Late, On Time, Unknown)"
// @Success 200 {object} RecordsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/records [get]
func (h *DashboardHandler) GetRecords(c *fiber.Ctx) error {
	rayID := requestID(c)

	status := c.Query("status")
	var category domain.StatusCategory
	if status != "" {
		var ok bool
		if category, ok = domain.ParseStatusCategory(status); !ok {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: fmt.Sprintf("unknown status category: %s", status),
				RayID:   rayID,
			})
		}
	}

	snapshot, err := h.service.Latest(c.Context())
	if err != nil {
		return h.fail(c, rayID, err)
	}

	records := snapshot.Records
	if category != "" {
		records = snapshot.FilterByStatus(category)
	}

	return c.Status(http.StatusOK).JSON(RecordsResponse{
		SnapshotID: snapshot.ID,
		Count:      len(records),
		Records:    records,
	})
}

// GetAggregates handles GET /dashboard/aggregates.
// @Summary Get dashboard projections
// @Description Returns counts by ETA date, counts by status, top customers and summary counters.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} AggregatesResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/aggregates [get]
func (h *DashboardHandler) GetAggregates(c *fiber.Ctx) error {
	rayID := requestID(c)

	snapshot, err := h.service.Latest(c.Context())
	if err != nil {
		return h.fail(c, rayID, err)
	}

	return c.Status(http.StatusOK).JSON(AggregatesResponse{
		SnapshotID: snapshot.ID,
		Today:      snapshot.Today,
		Aggregates: snapshot.Aggregates,
	})
}

// ResetDashboard handles DELETE /dashboard.
// @Summary Withdraw the published dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [delete]
func (h *DashboardHandler) ResetDashboard(c *fiber.Ctx) error {
	rayID := requestID(c)

	if err := h.service.Reset(c.Context()); err != nil {
		return h.fail(c, rayID, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Dashboard cleared",
	})
}

// fail maps service errors onto HTTP responses.
func (h *DashboardHandler) fail(c *fiber.Ctx, rayID string, err error) error {
	status := http.StatusInternalServerError
	msg := "Internal Server Error"

	switch {
	case errors.Is(err, service.ErrNoSnapshot):
		status = http.StatusNotFound
		msg = "No dashboard published yet"
	case errors.Is(err, service.ErrParseFailed):
		status = http.StatusUnprocessableEntity
		msg = err.Error()
	case errors.Is(err, service.ErrFetchFailed):
		status = http.StatusBadGateway
		msg = err.Error()
	case errors.Is(err, service.ErrProcessingFailed):
		msg = err.Error()
	}

	if status >= http.StatusInternalServerError {
		logger.Get().Error("Dashboard request failed",
			zap.String("path", c.Path()),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID,
	})
}

func requestID(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}
