package api

import (
	"errors"
	"net/http"
	"strconv"

	"coachdesk/platform/internal/auth"
	"coachdesk/platform/internal/domain"
	"coachdesk/platform/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Context key for the resolved principal.
const ContextPrincipalKey = "principal"

// abortWithError returns a JSON error response and aborts the request.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// MetricsMiddleware counts handled requests by method and status.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// CustomerAuthMiddleware gates routes on a customer principal. Every
// failure mode is the same uniform 401; authorization beyond "is a
// customer" does not exist on this surface.
func CustomerAuthMiddleware(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := a.Customer(c.Request)
		if p == nil {
			metrics.AuthOutcomesTotal.WithLabelValues("customer", "unauthenticated").Inc()
			abortWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		metrics.AuthOutcomesTotal.WithLabelValues("customer", "ok").Inc()
		c.Set(ContextPrincipalKey, p)
		c.Next()
	}
}

// AdminAuthMiddleware gates routes on a trainer or platform-admin
// principal.
func AdminAuthMiddleware(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := a.Admin(c.Request)
		if p == nil {
			metrics.AuthOutcomesTotal.WithLabelValues("admin", "unauthenticated").Inc()
			abortWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		metrics.AuthOutcomesTotal.WithLabelValues("admin", "ok").Inc()
		c.Set(ContextPrincipalKey, p)
		c.Next()
	}
}

// PlatformAdminOnly rejects authenticated but trainer-scoped principals.
// Must run after AdminAuthMiddleware. Authentication and authorization are
// distinct, sequential checks; a valid trainer session still gets a 401
// here.
func PlatformAdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := getPrincipal(c)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Principal not found in context")
			return
		}
		if !p.IsPlatformAdmin() {
			abortWithError(c, http.StatusUnauthorized, "Platform admin access required")
			return
		}
		c.Next()
	}
}

// getPrincipal fetches the principal set by an auth middleware.
func getPrincipal(c *gin.Context) (*domain.Principal, error) {
	raw, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return nil, errors.New("principal not found in context")
	}
	p, ok := raw.(*domain.Principal)
	if !ok {
		return nil, errors.New("invalid principal type in context")
	}
	return p, nil
}
