//go:build integration

package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/guttosm/deal-service/internal/circuitbreaker"
	"github.com/guttosm/deal-service/internal/domain/model"
	"github.com/guttosm/deal-service/internal/repository"
	"github.com/guttosm/deal-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

func newIntegrationDB(t *testing.T) *repository.MongoDB {
	t.Helper()
	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })
	return db
}

func TestCalculationHistoryService_Integration(t *testing.T) {
	ctx := context.Background()
	db := newIntegrationDB(t)

	cb := circuitbreaker.New(circuitbreaker.Config{Name: "calculations", FailureThreshold: 3, Timeout: time.Second})
	repo := repository.NewCalculationsRepositoryWithCircuitBreaker(repository.NewCalculationsRepository(db), cb)
	history := NewCalculationHistoryService(repo)
	calc := NewDealCalculatorService()

	results, err := calc.CalculateBatch([]int64{1, 26, 26})
	require.NoError(t, err)
	history.Record(ctx, "req-int", results)

	recent, err := history.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
	for _, c := range recent {
		assert.Equal(t, "req-int", c.RequestID)
	}

	byQty, err := history.ByQuantity(ctx, 26, 10)
	require.NoError(t, err)
	require.Len(t, byQty, 2)
	assert.Equal(t, int64(92), byQty[0].TotalCost)
	assert.Equal(t, int64(6), byQty[0].DealCount)
	assert.Len(t, byQty[0].Deals, 3)
	assert.True(t, cb.GetStats().IsHealthy)
}

func TestLoggingService_Integration(t *testing.T) {
	ctx := context.Background()
	db := newIntegrationDB(t)
	require.NoError(t, db.SetLogsTTL(ctx, 30))

	svc := NewLoggingService(repository.NewLogsRepository(db))

	require.NoError(t, svc.CreateLog(ctx, &model.LogEntry{Level: "info", Message: "one", RequestID: "r-1", Method: "GET"}))
	require.NoError(t, svc.CreateLogs(ctx, []*model.LogEntry{
		{Level: "error", Message: "two", RequestID: "r-2", Method: "POST"},
		{Level: "info", Message: "three", RequestID: "r-3", Method: "POST"},
	}))

	entries, err := svc.QueryLogs(ctx, model.LogQueryOptions{Method: "POST"})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	count, err := svc.CountLogs(ctx, model.LogQueryOptions{Level: "info"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
