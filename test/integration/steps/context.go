// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/config"
	"github.com/ledgerboard/backend/internal/infra/dependency"
	"github.com/ledgerboard/backend/test/integration/mock"
)

// testOwnerID is the owner every scenario writes under unless a scenario sets
// its own X-Owner-ID header.
var testOwnerID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	requestHeaders map[string]string
	savedValues    map[string]string

	receiptDir string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions and rebuilds the full
// stack, on a wiped database and rate store, before every scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb()
		if err := db.Clear(); err != nil {
			return ctx, err
		}
		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}

		receiptDir, err := os.MkdirTemp("", "ledgerboard-receipts-")
		if err != nil {
			return ctx, err
		}

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Storage.Dir = receiptDir
		cfg.Storage.BaseURL = "http://localhost:8080/receipts"
		cfg.Ledger.DefaultBlueRate = decimal.NewFromInt(1000)
		cfg.Ledger.RefetchAfterWrite = true
		cfg.Ledger.DefaultOwnerID = testOwnerID

		injector, err := dependency.NewInjector(cfg, db.Conn, redisClient)
		if err != nil {
			return ctx, err
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			savedValues:    make(map[string]string),
			receiptDir:     receiptDir,
		}
		tc.server = httptest.NewServer(injector.Router.Setup("test"))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.receiptDir != "" {
				_ = os.RemoveAll(tc.receiptDir)
			}
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}
