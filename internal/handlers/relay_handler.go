package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/SAP-F-2025/submission-relay/internal/models"
	"github.com/SAP-F-2025/submission-relay/internal/services"
	"github.com/SAP-F-2025/submission-relay/internal/utils"
	"github.com/gin-gonic/gin"
)

type RelayHandler struct {
	BaseHandler
	relayService services.RelayService
}

func NewRelayHandler(relayService services.RelayService, logger utils.Logger) *RelayHandler {
	return &RelayHandler{
		BaseHandler:  NewBaseHandler(logger),
		relayService: relayService,
	}
}

// Preflight answers CORS preflight requests
// @Summary CORS preflight
// @Tags relay
// @Success 200
// @Router / [options]
func (h *RelayHandler) Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

// SubmitTest relays a submitted writing test to Telegram. Any POST with a
// readable JSON body gets 200; delivery problems only change the message.
// @Summary Submit writing test
// @Tags relay
// @Accept json
// @Produce json
// @Param submission body models.SubmissionRecord true "Submitted test"
// @Success 200 {object} RelayResponse
// @Failure 400 {object} ErrorResponse
// @Router / [post]
func (h *RelayHandler) SubmitTest(c *gin.Context) {
	var record models.SubmissionRecord
	if err := json.NewDecoder(c.Request.Body).Decode(&record); err != nil {
		// Fields of the wrong shape are skipped by the decoder and rendered
		// as absent; only a body that is not JSON at all is refused.
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
		case errors.As(err, &typeErr):
			h.LogWarn(c, "Submission has malformed fields", "error", err)
		default:
			h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	h.LogInfo(c, "Test submission received",
		"student", record.StudentName.String(),
		"test", record.TestName.String())

	result := h.relayService.Relay(c.Request.Context(), &record)

	c.JSON(http.StatusOK, RelayResponse{
		Success: result.Success(),
		Message: result.Message(),
	})
}

// MethodNotAllowed rejects every other method on the relay routes
func (h *RelayHandler) MethodNotAllowed(c *gin.Context) {
	h.RespondWithError(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
}

// HealthCheck reports liveness and whether delivery is configured
func (h *RelayHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":              "healthy",
		"service":             "submission-relay",
		"telegram_configured": h.relayService.Configured(),
	})
}
