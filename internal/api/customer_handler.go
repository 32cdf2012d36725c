package api

import (
	"errors"
	"fmt"
	"net/http"

	"coachdesk/platform/internal/logger"
	"coachdesk/platform/internal/metrics"
	"coachdesk/platform/internal/repository"
	"coachdesk/platform/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerHandler serves the customer portal API.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// principalObjectID resolves the authenticated customer's ID. A principal
// whose ID is not valid hex can only come from a forged token, so it is
// treated as unauthenticated rather than a server fault.
func principalObjectID(c *gin.Context) (primitive.ObjectID, bool) {
	p, err := getPrincipal(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Principal not found in context")
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unauthorized")
		return primitive.NilObjectID, false
	}
	return oid, true
}

// storeError logs the real failure and returns the generic 500. The
// original error never reaches the client.
func storeError(c *gin.Context, op string, err error) {
	logger.Get().Error().Err(err).Str("op", op).Msg("store operation failed")
	metrics.StoreErrorsTotal.WithLabelValues(op).Inc()
	abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
}

// Info returns the authenticated customer's profile.
func (h *CustomerHandler) Info(c *gin.Context) {
	customerID, ok := principalObjectID(c)
	if !ok {
		return
	}

	customer, err := h.customerService.Info(c.Request.Context(), customerID)
	if err != nil {
		// A deleted account with a live token reads as an empty result.
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"customer": nil})
			return
		}
		storeError(c, "customer_info", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// Workouts returns the customer's workouts ordered by date ascending.
func (h *CustomerHandler) Workouts(c *gin.Context) {
	customerID, ok := principalObjectID(c)
	if !ok {
		return
	}

	workouts, err := h.customerService.Workouts(c.Request.Context(), customerID)
	if err != nil {
		storeError(c, "customer_workouts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

// Nutrition returns the customer's macro target, or null when none is set.
func (h *CustomerHandler) Nutrition(c *gin.Context) {
	customerID, ok := principalObjectID(c)
	if !ok {
		return
	}

	target, err := h.customerService.Nutrition(c.Request.Context(), customerID)
	if err != nil {
		storeError(c, "customer_nutrition", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"target": target})
}

// WeightGoals returns the customer's goals ordered by start date descending.
func (h *CustomerHandler) WeightGoals(c *gin.Context) {
	customerID, ok := principalObjectID(c)
	if !ok {
		return
	}

	goals, err := h.customerService.WeightGoals(c.Request.Context(), customerID)
	if err != nil {
		storeError(c, "customer_weight_goals", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weightGoals": goals})
}

// Messages returns the customer's thread with their trainer.
func (h *CustomerHandler) Messages(c *gin.Context) {
	customerID, ok := principalObjectID(c)
	if !ok {
		return
	}

	messages, err := h.customerService.Messages(c.Request.Context(), customerID)
	if err != nil {
		storeError(c, "customer_messages", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// SendMessage appends a customer message to the thread.
func (h *CustomerHandler) SendMessage(c *gin.Context) {
	customerID, ok := principalObjectID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	message, err := h.customerService.SendMessage(c.Request.Context(), customerID, req.Body)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		storeError(c, "customer_send_message", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": message})
}
