package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerboard/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps an in-memory SQLite connection carrying the full ledger schema.
type Db struct {
	Conn *gorm.DB
}

// ledgerModels is the schema migrated into the test database.
var ledgerModels = []any{
	&model.ExpenseModel{},
	&model.DebtModel{},
	&model.IncomeModel{},
	&model.PaymentModel{},
	&model.CategoryModel{},
}

// NewDb returns the shared in-memory database, opening and migrating it on
// first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive for the
	// whole suite.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.AutoMigrate(ledgerModels...); err != nil {
		panic(fmt.Sprintf("failed to migrate test schema. err: %s", err.Error()))
	}

	return &Db{Conn: conn}
}

// Clear wipes every table so scenarios start from an empty ledger.
func (d *Db) Clear() error {
	for _, m := range ledgerModels {
		err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}
