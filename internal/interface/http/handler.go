package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/22csec49/guideAPI/internal/domain/travelguide"
	apperrors "github.com/22csec49/guideAPI/pkg/errors"
)

// Handler wires the HTTP transport to the travel guide domain.
type Handler struct {
	guideSvc travelguide.Service
	logger   *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(guideSvc travelguide.Service, logger *slog.Logger) *Handler {
	return &Handler{
		guideSvc: guideSvc,
		logger:   logger.With("component", "http.handler"),
	}
}

// TravelGuide handles the submit-travel-query endpoint.
func (h *Handler) TravelGuide(c *gin.Context) {
	var req travelguide.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "Missing required fields", err))
		return
	}

	resp, err := h.guideSvc.Plan(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, guideError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// guideError maps domain failures onto client-facing messages. Internal
// detail stays in the logs; clients only see a flat summary string.
func guideError(err error) *HTTPError {
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		return NewHTTPError(http.StatusBadRequest, "invalid_request", "Missing required fields", err)
	case apperrors.IsCode(err, "oracle_malformed"):
		return NewHTTPError(http.StatusInternalServerError, "oracle_malformed", "Invalid JSON format from AI response", err)
	case apperrors.IsCode(err, "oracle_error"):
		return NewHTTPError(http.StatusInternalServerError, "oracle_unavailable", "Failed to fetch hotel recommendations", err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal_error", "Failed to fetch hotel recommendations", err)
	}
}
