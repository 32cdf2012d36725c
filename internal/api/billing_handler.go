package api

import (
	"net/http"

	"coachdesk/platform/internal/service"

	"github.com/gin-gonic/gin"
)

// BillingHandler serves the public pricing data.
type BillingHandler struct {
	billingService service.BillingService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(billingService service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Tiers returns the configured subscription tiers.
func (h *BillingHandler) Tiers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tiers": h.billingService.Tiers()})
}
