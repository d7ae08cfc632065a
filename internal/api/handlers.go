// Package api exposes the reporting endpoints over HTTP.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SvyatElkind/race-report/internal/metrics"
	"github.com/SvyatElkind/race-report/internal/models"
	"github.com/SvyatElkind/race-report/internal/render"
	"github.com/SvyatElkind/race-report/internal/report"
)

// Query parameter names.
const (
	orderParam  = "order"
	formatParam = "format"
)

// Handler serves the report endpoints
type Handler struct {
	reports report.Provider
	logger  *logrus.Logger
}

// NewHandler creates a new handler
func NewHandler(reports report.Provider, logger *logrus.Logger) *Handler {
	return &Handler{
		reports: reports,
		logger:  logger,
	}
}

// GetReport handles GET /api/v1/report/
func (h *Handler) GetReport(c *gin.Context) {
	format := c.Query(formatParam)

	rows, err := h.reports.GetReport(c.Request.Context(), c.Query(orderParam))
	if err != nil {
		h.renderError(c, format, render.Internal(), err)
		return
	}

	h.renderPayload(c, format, render.Records(reportRecords(rows)), render.ResponseTag)
}

// GetDrivers handles GET /api/v1/report/drivers/
func (h *Handler) GetDrivers(c *gin.Context) {
	format := c.Query(formatParam)

	rows, err := h.reports.GetDrivers(c.Request.Context(), c.Query(orderParam))
	if err != nil {
		h.renderError(c, format, render.Internal(), err)
		return
	}

	h.renderPayload(c, format, render.Records(driverRecords(rows)), render.ResponseTag)
}

// GetSingleDriver handles GET /api/v1/report/drivers/:driver_id
func (h *Handler) GetSingleDriver(c *gin.Context) {
	format := c.Query(formatParam)
	driverID := c.Param("driver_id")

	detail, err := h.reports.GetSingleDriver(c.Request.Context(), driverID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// The message embeds the id exactly as the caller sent it.
			h.logger.WithField("driver_id", driverID).Info("Driver not found")
			h.renderError(c, format, render.DriverNotFound(driverID), nil)
			return
		}
		h.renderError(c, format, render.Internal(), err)
		return
	}

	h.renderPayload(c, format, render.Object(driverDetailRecord(detail)), render.DriverTag)
}

// NotFound handles requests for unknown paths
func (h *Handler) NotFound(c *gin.Context) {
	h.renderError(c, c.Query(formatParam), render.RouteNotFound(), nil)
}

func (h *Handler) renderPayload(c *gin.Context, format string, payload render.Payload, rootTag string) {
	body, contentType, err := render.Render(format, payload, rootTag, render.DriverTag)
	if err != nil {
		h.renderError(c, format, render.Internal(), err)
		return
	}

	metrics.RecordResponseFormat(formatLabel(format))
	c.Data(http.StatusOK, contentType, body)
}

func (h *Handler) renderError(c *gin.Context, format string, apiErr render.APIError, cause error) {
	if cause != nil {
		h.logger.WithError(cause).WithField("path", c.Request.URL.Path).Error("Request failed")
	}

	body, contentType, err := render.RenderError(format, apiErr)
	if err != nil {
		// Rendering the error body itself failed; nothing left but a
		// bare status.
		h.logger.WithError(err).Error("Failed to render error response")
		c.Status(http.StatusInternalServerError)
		return
	}

	metrics.RecordResponseFormat(formatLabel(format))
	c.Data(apiErr.Status(), contentType, body)
}

func formatLabel(format string) string {
	if format == render.FormatXML {
		return "xml"
	}
	return "json"
}
