package api

import (
	"net/http"
	"time"

	"coachdesk/platform/internal/auth"
	"coachdesk/platform/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes wires every route group onto the engine.
func SetupRoutes(
	router *gin.Engine,
	authenticator *auth.Authenticator,
	tokenMaxAge, sessionTTL time.Duration,
	authService service.AuthService,
	customerService service.CustomerService,
	adminService service.AdminService,
	platformService service.PlatformService,
	brandingService service.BrandingService,
	billingService service.BillingService,
) {
	authHandler := NewAuthHandler(authService, authenticator, tokenMaxAge, sessionTTL)
	customerHandler := NewCustomerHandler(customerService)
	adminHandler := NewAdminHandler(adminService)
	platformHandler := NewPlatformHandler(platformService)
	brandingHandler := NewBrandingHandler(brandingService, adminService)
	billingHandler := NewBillingHandler(billingService)

	customerAuth := CustomerAuthMiddleware(authenticator)
	adminAuth := AdminAuthMiddleware(authenticator)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// Public: the login page needs branding and pricing before any session
	// exists.
	api.GET("/branding", brandingHandler.Get)
	api.GET("/billing/tiers", billingHandler.Tiers)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authHandler.CustomerLogin)
		authGroup.GET("/check", authHandler.CustomerCheck)
		authGroup.POST("/logout", authHandler.CustomerLogout)

		authGroup.POST("/admin/login", authHandler.AdminLogin)
		authGroup.GET("/admin/check", authHandler.AdminCheck)
		authGroup.POST("/admin/logout", authHandler.AdminLogout)
		authGroup.POST("/trainer/logout", authHandler.TrainerLogout)
	}

	customerGroup := api.Group("/customer")
	customerGroup.Use(customerAuth)
	{
		customerGroup.GET("/info", customerHandler.Info)
		customerGroup.GET("/workouts", customerHandler.Workouts)
		customerGroup.GET("/nutrition", customerHandler.Nutrition)
		customerGroup.GET("/weight-goals", customerHandler.WeightGoals)
		customerGroup.GET("/messages", customerHandler.Messages)
		customerGroup.POST("/messages", customerHandler.SendMessage)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(adminAuth)
	{
		adminGroup.GET("/customers", adminHandler.ListCustomers)
		adminGroup.POST("/customers", adminHandler.CreateCustomer)
		adminGroup.PUT("/customers/:id/update", adminHandler.UpdateCustomer)
		adminGroup.PUT("/customers/:id/update-password", adminHandler.UpdatePassword)
		adminGroup.GET("/customers/:id/messages/unread", adminHandler.UnreadMessages)
		adminGroup.POST("/exercises/seed-defaults", adminHandler.SeedDefaultExercises)
		adminGroup.PUT("/branding", brandingHandler.Update)
		adminGroup.POST("/branding/logo-upload-url", brandingHandler.LogoUploadURL)
	}

	platformGroup := api.Group("/platform-admin")
	platformGroup.Use(adminAuth, PlatformAdminOnly())
	{
		platformGroup.GET("/trainers", platformHandler.ListTrainers)
	}
}
