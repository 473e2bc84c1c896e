package integration

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/shopspring/decimal"

	adaptershttp "github.com/gymops/cashcut/internal/adapter/http"
	"github.com/gymops/cashcut/internal/adapter/http/handler"
	postgresrepo "github.com/gymops/cashcut/internal/adapter/repository/postgres"
	redisrepo "github.com/gymops/cashcut/internal/adapter/repository/redis"
	infraredis "github.com/gymops/cashcut/internal/infrastructure/redis"
	"github.com/gymops/cashcut/internal/usecase"
	"github.com/gymops/cashcut/internal/usecase/mocks"
	"github.com/gymops/cashcut/tests/testutil"
)

// newTestServer wires the full HTTP stack against the test database.
// No JWT manager is configured, so every endpoint is reachable.
func newTestServer(t *testing.T, ctx context.Context, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	pool := testDB.Pool
	txManager := postgresrepo.NewTxManager(pool)
	cutRepo := postgresrepo.NewCutRepository(pool)
	expenseRepo := postgresrepo.NewExpenseRepository(pool)
	figureRepo := postgresrepo.NewFigureRepository(pool)
	userRepo := postgresrepo.NewUserRepository(pool)
	auditRepo := postgresrepo.NewAuditRepository(pool)
	idGen := postgresrepo.NewULIDGenerator()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)

	// Day figures are not cached here: subtests reuse calendar days
	// after truncation and must always see fresh data.
	cutUC := usecase.NewCutUseCase(txManager, cutRepo, expenseRepo, figureRepo, auditRepo, nil, idGen, mocks.NopMetrics{})
	syncUC := usecase.NewSyncUseCase(cutRepo, expenseRepo, auditRepo, decimal.Zero, mocks.NopMetrics{})
	userUC := usecase.NewUserUseCase(userRepo, idGen)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		CutHandler:       handler.NewCutHandler(cutUC),
		SyncHandler:      handler.NewSyncHandler(syncUC),
		UserHandler:      handler.NewUserHandler(userUC),
		AuthHandler:      handler.NewAuthHandler(userUC, nil),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
	})
}
