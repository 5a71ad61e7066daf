// Package main is the entry point for the bakery back-office API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/bakehouse/backend/config"
	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/application/usecase/auth"
	"github.com/bakehouse/backend/internal/application/usecase/catalog"
	"github.com/bakehouse/backend/internal/application/usecase/expense"
	"github.com/bakehouse/backend/internal/application/usecase/finance"
	"github.com/bakehouse/backend/internal/application/usecase/order"
	"github.com/bakehouse/backend/internal/infra/db"
	"github.com/bakehouse/backend/internal/infra/server/router"
	"github.com/bakehouse/backend/internal/integration/adapters"
	"github.com/bakehouse/backend/internal/integration/cache"
	"github.com/bakehouse/backend/internal/integration/entrypoint/controller"
	"github.com/bakehouse/backend/internal/integration/entrypoint/middleware"
	"github.com/bakehouse/backend/internal/integration/persistence"
	"github.com/bakehouse/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting bakery back-office API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.ExpenseModel{},
		&model.BreadCategoryModel{},
		&model.BreadModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// The view cache is optional: financial views recompute from the store,
	// Redis only absorbs repeated reads.
	var viewCache adapter.ViewCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Warn("Redis unavailable, financial views will not be cached", "error", err)
		} else {
			viewCache = cache.NewRedisViewCache(redisClient)
			slog.Info("Redis view cache initialized", "addr", cfg.Redis.Addr)
		}
	}

	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	orderRepo := persistence.NewOrderRepository(database.DB())
	expenseRepo := persistence.NewExpenseRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	breadRepo := persistence.NewBreadRepository(database.DB())
	financeRepo := persistence.NewFinanceRepository(database.DB())

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	allocator := order.NewNumberAllocator(orderRepo, cfg.Order.NumberPrefix)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	listUsersUseCase := auth.NewListUsersUseCase(userRepo)
	updateUserUseCase := auth.NewUpdateUserUseCase(userRepo, passwordService)
	deleteUserUseCase := auth.NewDeleteUserUseCase(userRepo)

	// Finance use cases
	monthlySummaryUseCase := finance.NewGetMonthlySummaryUseCase(financeRepo, viewCache)
	trendsUseCase := finance.NewGetTrendsUseCase(financeRepo, viewCache)
	incomeCompositionUseCase := finance.NewGetIncomeCompositionUseCase(financeRepo)
	expenseCompositionUseCase := finance.NewGetExpenseCompositionUseCase(financeRepo)
	transactionsUseCase := finance.NewGetTransactionsUseCase(financeRepo)

	// Order use cases
	createOrderUseCase := order.NewCreateOrderUseCase(orderRepo, allocator)
	listOrdersUseCase := order.NewListOrdersUseCase(orderRepo)
	updateOrderUseCase := order.NewUpdateOrderUseCase(orderRepo)
	updateOrderStatusUseCase := order.NewUpdateOrderStatusUseCase(orderRepo)
	deleteOrderUseCase := order.NewDeleteOrderUseCase(orderRepo)

	// Expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	listExpenseCategoriesUseCase := expense.NewListCategoriesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Catalog use cases
	listCategoriesUseCase := catalog.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := catalog.NewCreateCategoryUseCase(categoryRepo)
	createBreadUseCase := catalog.NewCreateBreadUseCase(breadRepo, categoryRepo)
	listBreadsUseCase := catalog.NewListBreadsUseCase(breadRepo)
	updateBreadUseCase := catalog.NewUpdateBreadUseCase(breadRepo)
	deleteBreadUseCase := catalog.NewDeleteBreadUseCase(breadRepo)

	// Controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		listUsersUseCase,
		updateUserUseCase,
		deleteUserUseCase,
	)
	financeController := controller.NewFinanceController(
		monthlySummaryUseCase,
		trendsUseCase,
		incomeCompositionUseCase,
		expenseCompositionUseCase,
		transactionsUseCase,
	)
	orderController := controller.NewOrderController(
		createOrderUseCase,
		listOrdersUseCase,
		updateOrderUseCase,
		updateOrderStatusUseCase,
		deleteOrderUseCase,
	)
	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		listExpenseCategoriesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)
	catalogController := controller.NewCatalogController(
		listCategoriesUseCase,
		createCategoryUseCase,
		createBreadUseCase,
		listBreadsUseCase,
		updateBreadUseCase,
		deleteBreadUseCase,
	)
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		financeController,
		orderController,
		expenseController,
		catalogController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
