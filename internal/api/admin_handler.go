package api

import (
	"errors"
	"fmt"
	"net/http"

	"coachdesk/platform/internal/repository"
	"coachdesk/platform/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler serves the trainer/admin dashboard API.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// trainerScope resolves the caller's ownership scope: the trainer's own ID,
// or NilObjectID for a platform admin (no row-level predicate).
func trainerScope(c *gin.Context) (primitive.ObjectID, bool) {
	p, err := getPrincipal(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Principal not found in context")
		return primitive.NilObjectID, false
	}
	if p.TrainerID == "" {
		return primitive.NilObjectID, true
	}
	oid, err := primitive.ObjectIDFromHex(p.TrainerID)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unauthorized")
		return primitive.NilObjectID, false
	}
	return oid, true
}

func pathObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s", param))
		return primitive.NilObjectID, false
	}
	return oid, true
}

// ListCustomers returns the caller's customers.
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	scope, ok := trainerScope(c)
	if !ok {
		return
	}

	customers, err := h.adminService.ListCustomers(c.Request.Context(), scope)
	if err != nil {
		storeError(c, "admin_list_customers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

// CreateCustomer adds a customer under the caller's trainer scope.
func (h *AdminHandler) CreateCustomer(c *gin.Context) {
	scope, ok := trainerScope(c)
	if !ok {
		return
	}

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	customer, err := h.adminService.CreateCustomer(c.Request.Context(), scope, req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNoTrainerScope):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			storeError(c, "admin_create_customer", err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"customer": customer,
		"message":  "Customer created",
	})
}

type UpdateCustomerRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Notes  *string `json:"notes"`
	Active *bool   `json:"active"`
}

// UpdateCustomer applies a partial update to a customer the caller owns.
func (h *AdminHandler) UpdateCustomer(c *gin.Context) {
	scope, ok := trainerScope(c)
	if !ok {
		return
	}
	customerID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	customer, err := h.adminService.UpdateCustomer(c.Request.Context(), customerID, scope, repository.CustomerUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Notes:  req.Notes,
		Active: req.Active,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Customer not found")
			return
		}
		storeError(c, "admin_update_customer", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"customer": customer,
		"message":  "Customer updated",
	})
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// UpdatePassword resets a customer's password. Passwords shorter than 6
// characters are rejected before any store call.
func (h *AdminHandler) UpdatePassword(c *gin.Context) {
	scope, ok := trainerScope(c)
	if !ok {
		return
	}
	customerID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.adminService.UpdateCustomerPassword(c.Request.Context(), customerID, scope, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "Customer not found")
		default:
			storeError(c, "admin_update_password", err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// UnreadMessages reports whether a customer has unread messages for the
// trainer.
func (h *AdminHandler) UnreadMessages(c *gin.Context) {
	scope, ok := trainerScope(c)
	if !ok {
		return
	}
	customerID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	hasUnread, err := h.adminService.HasUnreadMessages(c.Request.Context(), customerID, scope)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotYourCustomer):
			abortWithError(c, http.StatusUnauthorized, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "Customer not found")
		default:
			storeError(c, "admin_unread_messages", err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasUnread": hasUnread})
}

// SeedDefaultExercises copies the default exercise library into the
// caller's scope. Requires a trainer-scoped account: a platform admin has
// no library of its own.
func (h *AdminHandler) SeedDefaultExercises(c *gin.Context) {
	scope, ok := trainerScope(c)
	if !ok {
		return
	}

	inserted, err := h.adminService.SeedDefaultExercises(c.Request.Context(), scope)
	if err != nil {
		if errors.Is(err, service.ErrNoTrainerScope) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		storeError(c, "admin_seed_exercises", err)
		return
	}

	if inserted == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Exercise library already seeded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Seeded %d default exercises", inserted)})
}
