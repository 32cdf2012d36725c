package api

import (
	"errors"
	"fmt"
	"net/http"

	"coachdesk/platform/internal/domain"
	"coachdesk/platform/internal/service"

	"github.com/gin-gonic/gin"
)

// BrandingHandler serves the public branding read plus the admin branding
// writes.
type BrandingHandler struct {
	brandingService service.BrandingService
	adminService    service.AdminService
}

// NewBrandingHandler creates a new BrandingHandler.
func NewBrandingHandler(brandingService service.BrandingService, adminService service.AdminService) *BrandingHandler {
	return &BrandingHandler{
		brandingService: brandingService,
		adminService:    adminService,
	}
}

// Get serves the portal branding. Unauthenticated, always 200: the login
// page renders it before any session exists, so failures degrade to the
// defaults instead of erroring.
func (h *BrandingHandler) Get(c *gin.Context) {
	branding := h.brandingService.Get(c.Request.Context(), c.Query("trainerId"))
	c.JSON(http.StatusOK, gin.H{"branding": branding})
}

type UpdateBrandingRequest struct {
	BusinessName string `json:"businessName" binding:"required"`
	LogoKey      string `json:"logoKey"`
	PrimaryColor string `json:"primaryColor" binding:"required,hexcolor"`
	AccentColor  string `json:"accentColor" binding:"required,hexcolor"`
}

// Update saves the caller's branding.
func (h *BrandingHandler) Update(c *gin.Context) {
	scope, ok := trainerScope(c)
	if !ok {
		return
	}

	var req UpdateBrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.adminService.UpdateBranding(c.Request.Context(), scope, &domain.Branding{
		BusinessName: req.BusinessName,
		LogoKey:      req.LogoKey,
		PrimaryColor: req.PrimaryColor,
		AccentColor:  req.AccentColor,
	})
	if err != nil {
		if errors.Is(err, service.ErrNoTrainerScope) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		storeError(c, "branding_update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Branding updated"})
}

type LogoUploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// LogoUploadURL issues a presigned PUT URL for a new logo object.
func (h *BrandingHandler) LogoUploadURL(c *gin.Context) {
	scope, ok := trainerScope(c)
	if !ok {
		return
	}

	var req LogoUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	uploadURL, objectKey, err := h.adminService.LogoUploadURL(c.Request.Context(), scope, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrNoTrainerScope) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		storeError(c, "branding_logo_upload_url", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"uploadUrl": uploadURL,
		"objectKey": objectKey,
	})
}
