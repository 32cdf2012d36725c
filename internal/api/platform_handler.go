package api

import (
	"net/http"

	"coachdesk/platform/internal/service"

	"github.com/gin-gonic/gin"
)

// PlatformHandler serves the platform-admin dashboard. Routes here run
// behind PlatformAdminOnly.
type PlatformHandler struct {
	platformService service.PlatformService
}

// NewPlatformHandler creates a new PlatformHandler.
func NewPlatformHandler(platformService service.PlatformService) *PlatformHandler {
	return &PlatformHandler{platformService: platformService}
}

// ListTrainers returns every trainer account with its client count.
func (h *PlatformHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.platformService.ListTrainers(c.Request.Context())
	if err != nil {
		storeError(c, "platform_list_trainers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainers": trainers})
}
