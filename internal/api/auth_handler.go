package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"coachdesk/platform/internal/auth"
	"coachdesk/platform/internal/domain"
	"coachdesk/platform/internal/logger"
	"coachdesk/platform/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves login, logout, and session-check endpoints for all
// three session schemes.
type AuthHandler struct {
	authService   service.AuthService
	authenticator *auth.Authenticator
	tokenMaxAge   time.Duration
	sessionTTL    time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, authenticator *auth.Authenticator, tokenMaxAge, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		authenticator: authenticator,
		tokenMaxAge:   tokenMaxAge,
		sessionTTL:    sessionTTL,
	}
}

// --- Request/Response Structs ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CustomerResponse excludes sensitive fields.
type CustomerResponse struct {
	ID        string    `json:"id"`
	TrainerID string    `json:"trainerId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func mapCustomerToResponse(customer *domain.Customer) CustomerResponse {
	if customer == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		ID:        customer.ID.Hex(),
		TrainerID: customer.TrainerID.Hex(),
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Active:    customer.Active,
		CreatedAt: customer.CreatedAt,
	}
}

// --- Customer scheme ---

// CustomerLogin authenticates customer credentials and sets the
// user_session cookie.
func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, customer, err := h.authService.CustomerLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}
		logger.Get().Error().Err(err).Msg("customer login failed")
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		return
	}

	c.SetCookie(auth.CookieCustomerToken, token, int(h.tokenMaxAge.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"customer": mapCustomerToResponse(customer),
	})
}

// CustomerCheck reports whether the request carries a live customer
// session. The 401 body is {authenticated:false}, not the uniform error
// envelope; the web client branches on it.
func (h *AuthHandler) CustomerCheck(c *gin.Context) {
	p := h.authenticator.Customer(c.Request)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"userId":        p.ID,
		"email":         p.Email,
	})
}

// CustomerLogout clears the customer cookies and drops any server-side
// session record. Calling it twice is the same as calling it once.
func (h *AuthHandler) CustomerLogout(c *gin.Context) {
	if cookie, err := c.Request.Cookie(auth.CookieCustomerSession); err == nil && cookie.Value != "" {
		if err := h.authService.DeleteSession(c.Request.Context(), cookie.Value); err != nil {
			logger.Get().Error().Err(err).Msg("customer session delete failed")
			abortWithError(c, http.StatusInternalServerError, "Logout failed")
			return
		}
	}
	clearCookie(c, auth.CookieCustomerToken)
	clearCookie(c, auth.CookieCustomerSession)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// --- Trainer/admin scheme ---

// AdminLogin authenticates trainer/admin credentials, sets the
// admin_session cookie, and returns a bearer token for API clients.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	handle, bearer, trainer, err := h.authService.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}
		logger.Get().Error().Err(err).Msg("admin login failed")
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		return
	}

	c.SetCookie(auth.CookieAdminSession, handle, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   bearer,
		"trainer": gin.H{
			"id":    trainer.ID.Hex(),
			"name":  trainer.Name,
			"email": trainer.Email,
			"role":  trainer.Role,
		},
	})
}

// AdminCheck reports the admin session state with the role flags the
// dashboard needs.
func (h *AuthHandler) AdminCheck(c *gin.Context) {
	p := h.authenticator.Admin(c.Request)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	role := "trainer"
	if p.IsPlatformAdmin() {
		role = "admin"
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated":   true,
		"email":           p.Email,
		"role":            role,
		"isTrainer":       p.IsTrainer(),
		"isPlatformAdmin": p.IsPlatformAdmin(),
	})
}

// AdminLogout drops the admin session record and clears the cookie.
// Idempotent: an absent or already-deleted session is still a success.
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	if cookie, err := c.Request.Cookie(auth.CookieAdminSession); err == nil && cookie.Value != "" {
		if err := h.authService.DeleteSession(c.Request.Context(), cookie.Value); err != nil {
			logger.Get().Error().Err(err).Msg("admin session delete failed")
			abortWithError(c, http.StatusInternalServerError, "Logout failed")
			return
		}
	}
	clearCookie(c, auth.CookieAdminSession)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// TrainerLogout is the trainer-branded logout; same session mechanics as
// AdminLogout, kept as a separate route for the trainer dashboard.
func (h *AuthHandler) TrainerLogout(c *gin.Context) {
	h.AdminLogout(c)
}

func clearCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", false, true)
}
