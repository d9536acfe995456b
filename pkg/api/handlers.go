package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"borderline-backend/pkg/config"
	"borderline-backend/pkg/logger"
	"borderline-backend/pkg/models"
	"borderline-backend/pkg/services"
	"borderline-backend/pkg/whatsapp"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	relayService services.LeadRelayService
	config       *config.Config
	log          logger.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(relayService services.LeadRelayService, cfg *config.Config, log logger.Logger) *Handlers {
	return &Handlers{
		relayService: relayService,
		config:       cfg,
		log:          log,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// SubmitOrder relays an order submission to the CRM and reports the outcome.
// There is no 4xx surface: unparseable or incomplete bodies fold into the same
// uniform 500 envelope as every other handled failure.
func (h *Handlers) SubmitOrder(c *gin.Context) {
	var order models.OrderSubmission

	if err := c.ShouldBindJSON(&order); err != nil {
		h.log.Errorf("invalid order submission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.relayService.SubmitOrder(c.Request.Context(), order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": relayErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "order received",
	})
}

// OrderLink builds the WhatsApp confirmation deep link for an order summary.
// Independent of the CRM relay; works without any CRM configuration.
func (h *Handlers) OrderLink(c *gin.Context) {
	var order models.OrderSubmission

	if err := c.ShouldBindJSON(&order); err != nil {
		h.log.Errorf("invalid order for link building: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"link":    whatsapp.BuildOrderLink(h.config.WhatsAppNumber, order),
	})
}

// relayErrorMessage maps a relay failure to its short caller-visible reason.
// Diagnostic detail stays in the server logs.
func relayErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrNotConfigured):
		return services.ErrNotConfigured.Error()
	case errors.Is(err, services.ErrRelayCreate):
		return services.ErrRelayCreate.Error()
	case errors.Is(err, services.ErrRelayUpdate):
		return services.ErrRelayUpdate.Error()
	default:
		return "internal server error"
	}
}
