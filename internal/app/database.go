package app

import (
	"context"
	"time"

	"github.com/guttosm/deal-service/config"
	"github.com/guttosm/deal-service/internal/circuitbreaker"
	"github.com/guttosm/deal-service/internal/metrics"
	"github.com/guttosm/deal-service/internal/repository"
	"github.com/guttosm/deal-service/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	calculationsBreakerName = "mongodb_calculations"
	logsBreakerName         = "mongodb_logs"
	dbCloseTimeout          = 5 * time.Second
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                         *repository.MongoDB
	History                    service.HistoryService
	LoggingService             service.LoggingService
	CalculationsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker         *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the history and logging
// services behind circuit breakers. It returns nil when the database is
// disabled or unreachable; the service then runs without persistence.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if err := db.SetLogsTTL(context.Background(), logsTTLDays(cfg.LogsTTL)); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}

	calculationsCB := newCircuitBreaker(calculationsBreakerName, cfg)
	logsCB := newCircuitBreaker(logsBreakerName, cfg)

	calculationsRepo := repository.NewCalculationsRepositoryWithCircuitBreaker(repository.NewCalculationsRepository(db), calculationsCB)
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                         db,
		History:                    service.NewCalculationHistoryService(calculationsRepo),
		LoggingService:             service.NewLoggingService(logsRepo),
		CalculationsCircuitBreaker: calculationsCB,
		LogsCircuitBreaker:         logsCB,
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close() {
	if d == nil || d.DB == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbCloseTimeout)
	defer cancel()
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}

func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             name,
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		OnStateChange:    reportStateChange,
	})
}

func reportStateChange(name string, from, to circuitbreaker.State) {
	metrics.SetCircuitBreakerState(name, int(to))
	log.Info().
		Str("circuit_breaker", name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("Circuit breaker state changed")
}

// logsTTLDays rounds ttl up to whole days; a positive TTL under a day still expires logs.
func logsTTLDays(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	day := 24 * time.Hour
	return int((ttl + day - 1) / day)
}
