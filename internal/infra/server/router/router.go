// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerboard/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	ledgerController    *controller.LedgerController
	dashboardController *controller.DashboardController
	rateController      *controller.RateController
	categoryController  *controller.CategoryController
	receiptController   *controller.ReceiptController
	apiRateLimiter      *middleware.RateLimiter
	defaultOwnerID      uuid.UUID
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	ledgerController *controller.LedgerController,
	dashboardController *controller.DashboardController,
	rateController *controller.RateController,
	categoryController *controller.CategoryController,
	receiptController *controller.ReceiptController,
	apiRateLimiter *middleware.RateLimiter,
	defaultOwnerID uuid.UUID,
) *Router {
	return &Router{
		healthController:    healthController,
		ledgerController:    ledgerController,
		dashboardController: dashboardController,
		rateController:      rateController,
		categoryController:  categoryController,
		receiptController:   receiptController,
		apiRateLimiter:      apiRateLimiter,
		defaultOwnerID:      defaultOwnerID,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(middleware.Identity(r.defaultOwnerID))
	if r.apiRateLimiter != nil {
		v1.Use(r.apiRateLimiter.Middleware())
	}
	{
		// Unified ledger routes
		if r.ledgerController != nil {
			items := v1.Group("/ledger/items")
			{
				items.GET("", r.ledgerController.GetItems)
				items.POST("", r.ledgerController.InsertItem)
				items.PATCH("/:type/:id", r.ledgerController.UpdateItem)
				items.POST("/:type/:id/toggle", r.ledgerController.TogglePaid)
				items.POST("/:type/:id/payments", r.ledgerController.AddPayment)
			}
		}

		// Dashboard routes
		if r.dashboardController != nil {
			v1.GET("/dashboard/summary", r.dashboardController.GetSummary)
		}

		// Blue rate routes
		if r.rateController != nil {
			v1.GET("/rate", r.rateController.Get)
			v1.PUT("/rate", r.rateController.Update)
		}

		// Category routes
		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Receipt upload routes
		if r.receiptController != nil {
			v1.POST("/receipts", r.receiptController.Upload)
		}
	}
}
