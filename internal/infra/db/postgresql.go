// Package db establishes the Postgres and Redis connections the service
// needs at startup. The service refuses to start without both.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerboard/backend/config"
	"github.com/ledgerboard/backend/internal/integration/persistence/model"
)

const connectTimeout = 5 * time.Second

// ledgerSchema lists every table the service owns. Migrate keeps them in
// sync with the model structs on boot.
var ledgerSchema = []interface{}{
	&model.ExpenseModel{},
	&model.DebtModel{},
	&model.IncomeModel{},
	&model.PaymentModel{},
	&model.CategoryModel{},
}

// Connect opens the Postgres connection described by cfg, sizes the pool,
// and verifies it with a ping before returning.
func Connect(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	slog.Info("Postgres connection established",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)
	return gdb, nil
}

// Migrate brings the ledger schema up to date.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(ledgerSchema...); err != nil {
		return fmt.Errorf("migrate ledger schema: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	return sqlDB.Close()
}
