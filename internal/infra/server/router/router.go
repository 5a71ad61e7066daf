// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bakehouse/backend/internal/integration/entrypoint/controller"
	"github.com/bakehouse/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	authController    *controller.AuthController
	financeController *controller.FinanceController
	orderController   *controller.OrderController
	expenseController *controller.ExpenseController
	catalogController *controller.CatalogController
	loginRateLimiter  *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	financeController *controller.FinanceController,
	orderController *controller.OrderController,
	expenseController *controller.ExpenseController,
	catalogController *controller.CatalogController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		authController:    authController,
		financeController: financeController,
		orderController:   orderController,
		expenseController: expenseController,
		catalogController: catalogController,
		loginRateLimiter:  loginRateLimiter,
		authMiddleware:    authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

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
	api := r.engine.Group("/api")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := api.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Staff management routes (admin only)
		if r.authController != nil && r.authMiddleware != nil {
			users := api.Group("/users")
			users.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				users.GET("", r.authController.ListUsers)
				users.PUT("/:id", r.authController.UpdateUser)
				users.DELETE("/:id", r.authController.DeleteUser)
			}
		}

		// Financial reporting routes (require authentication)
		if r.financeController != nil && r.authMiddleware != nil {
			finance := api.Group("/finance")
			finance.Use(r.authMiddleware.Authenticate())
			{
				finance.GET("/monthly-summary", r.financeController.GetMonthlySummary)
				finance.GET("/trends", r.financeController.GetTrends)
				finance.GET("/income-composition", r.financeController.GetIncomeComposition)
				finance.GET("/expense-composition", r.financeController.GetExpenseComposition)
				finance.GET("/transactions", r.financeController.GetTransactions)
			}
		}

		// Order routes (require authentication)
		if r.orderController != nil && r.authMiddleware != nil {
			orders := api.Group("/orders")
			orders.Use(r.authMiddleware.Authenticate())
			{
				orders.GET("", r.orderController.List)
				orders.POST("", r.orderController.Create)
				orders.PUT("/:id", r.orderController.Update)
				orders.PATCH("/:id/status", r.orderController.UpdateStatus)
				orders.DELETE("/:id", r.orderController.Delete)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := api.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.GET("/categories", r.expenseController.Categories)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Catalog routes (require authentication)
		if r.catalogController != nil && r.authMiddleware != nil {
			categories := api.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.catalogController.ListCategories)
				categories.POST("", r.catalogController.CreateCategory)
			}

			breads := api.Group("/breads")
			breads.Use(r.authMiddleware.Authenticate())
			{
				breads.GET("", r.catalogController.ListBreads)
				breads.POST("", r.catalogController.CreateBread)
				breads.PUT("/:id", r.catalogController.UpdateBread)
				breads.PUT("/:id/stock", r.catalogController.UpdateBreadStock)
				breads.DELETE("/:id", r.catalogController.DeleteBread)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
