// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ledgerboard/backend/config"
	"github.com/ledgerboard/backend/internal/application/usecase/category"
	"github.com/ledgerboard/backend/internal/application/usecase/currency"
	"github.com/ledgerboard/backend/internal/application/usecase/dashboard"
	"github.com/ledgerboard/backend/internal/application/usecase/ledger"
	"github.com/ledgerboard/backend/internal/application/usecase/receipt"
	"github.com/ledgerboard/backend/internal/infra/server/router"
	"github.com/ledgerboard/backend/internal/integration/cache"
	"github.com/ledgerboard/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerboard/backend/internal/integration/entrypoint/middleware"
	"github.com/ledgerboard/backend/internal/integration/persistence"
	"github.com/ledgerboard/backend/internal/integration/storage"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	expenseRepo := persistence.NewExpenseRepository(db)
	debtRepo := persistence.NewDebtRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	rateStore := cache.NewRateStore(redisClient, cfg.Ledger.DefaultBlueRate)

	receiptStorage, err := storage.NewFilesystemStorage(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to set up receipt storage: %w", err)
	}

	sources := ledger.Sources{
		Expenses:   expenseRepo,
		Debts:      debtRepo,
		Income:     incomeRepo,
		Payments:   paymentRepo,
		Categories: categoryRepo,
		Rates:      rateStore,
	}
	policy := ledger.WritePolicy{RefetchAfterWrite: cfg.Ledger.RefetchAfterWrite}

	// Create ledger use cases
	getItemsUseCase := ledger.NewGetItemsUseCase(sources)
	insertItemUseCase := ledger.NewInsertItemUseCase(sources, getItemsUseCase, policy)
	updateItemUseCase := ledger.NewUpdateItemUseCase(sources, getItemsUseCase, policy)
	togglePaidUseCase := ledger.NewTogglePaidUseCase(sources, getItemsUseCase, policy)
	addPaymentUseCase := ledger.NewAddPaymentUseCase(sources, getItemsUseCase, policy)

	// Create dashboard use case
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(sources)

	// Create rate use cases
	getRateUseCase := currency.NewGetRateUseCase(rateStore)
	updateRateUseCase := currency.NewUpdateRateUseCase(rateStore)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create receipt use case
	uploadReceiptUseCase := receipt.NewUploadReceiptUseCase(receiptStorage)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	ledgerController := controller.NewLedgerController(
		getItemsUseCase,
		insertItemUseCase,
		updateItemUseCase,
		togglePaidUseCase,
		addPaymentUseCase,
	)

	dashboardController := controller.NewDashboardController(getSummaryUseCase)

	rateController := controller.NewRateController(getRateUseCase, updateRateUseCase)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	receiptController := controller.NewReceiptController(uploadReceiptUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var apiRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		apiRateLimiter = middleware.NewRateLimiterWithConfig(10000, 1*time.Minute)
	} else {
		apiRateLimiter = middleware.NewRateLimiter()
	}

	// Create router
	r := router.NewRouter(
		healthController,
		ledgerController,
		dashboardController,
		rateController,
		categoryController,
		receiptController,
		apiRateLimiter,
		cfg.Ledger.DefaultOwnerID,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}, nil
}
