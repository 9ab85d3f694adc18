package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/deal-service/config"
	"github.com/guttosm/deal-service/internal/http"
	"github.com/guttosm/deal-service/internal/middleware"
	"github.com/guttosm/deal-service/internal/service"
)

const mongoCheckName = "mongodb"

// Names of the figures reported by /readyz.
const (
	cacheStatsName        = "cache"
	rateLimiterStatsName  = "rate_limiter"
	requestLogStatsName   = "request_log"
	calculationsStatsName = "calculations"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
// dbComponents may be nil.
func InitializeRouter(calculator *service.DealCalculatorService, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	var handlerOpts []http.HandlerOption
	healthHandler := http.NewHealthHandler()

	routerCfg := http.RouterConfig{
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		RequestTimeout: cfg.Server.RequestTimeout,
	}

	if _, ok := calculator.CacheMetrics(); ok {
		healthHandler.RegisterStats(cacheStatsName, cacheStats(calculator))
	}

	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
		healthHandler.RegisterStats(rateLimiterStatsName, rateLimiterStats(routerCfg.RateLimiter))
	}

	if dbComponents != nil {
		handlerOpts = append(handlerOpts, http.WithHistory(dbComponents.History))
		if dbComponents.LoggingService != nil {
			handlerOpts = append(handlerOpts, http.WithLogs(dbComponents.LoggingService))
		}
		routerCfg.AsyncLogger = middleware.NewAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
		if routerCfg.AsyncLogger != nil {
			healthHandler.RegisterStats(requestLogStatsName, requestLogStats(routerCfg.AsyncLogger))
		}
		if dbComponents.History != nil {
			healthHandler.RegisterStats(calculationsStatsName, calculationsStats(dbComponents.History))
		}

		if dbComponents.DB != nil {
			healthHandler.RegisterChecker(mongoCheckName, http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		}
		if dbComponents.CalculationsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker(calculationsBreakerName, dbComponents.CalculationsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker(logsBreakerName, dbComponents.LogsCircuitBreaker)
		}
	}

	return &RouterComponents{
		Handler:       http.NewHandler(calculator, handlerOpts...),
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

func cacheStats(calculator *service.DealCalculatorService) http.StatsFunc {
	return func(context.Context) (interface{}, error) {
		m, _ := calculator.CacheMetrics()
		return gin.H{
			"size":      m.Size,
			"capacity":  m.Capacity,
			"hits":      m.Hits,
			"misses":    m.Misses,
			"evictions": m.Evictions,
			"hit_ratio": m.HitRatio(),
		}, nil
	}
}

func rateLimiterStats(rl *middleware.RateLimiter) http.StatsFunc {
	return func(context.Context) (interface{}, error) {
		total, perShard := rl.Stats()
		return gin.H{"clients": total, "shards": len(perShard)}, nil
	}
}

func requestLogStats(al *middleware.AsyncLogger) http.StatsFunc {
	return func(context.Context) (interface{}, error) {
		return al.Stats(), nil
	}
}

func calculationsStats(history service.HistoryService) http.StatsFunc {
	return func(ctx context.Context) (interface{}, error) {
		n, err := history.Count(ctx)
		if err != nil {
			return nil, err
		}
		return gin.H{"stored": n}, nil
	}
}

// Stop ends the rate limiter cleanup and drains the request log queue.
func (r *RouterComponents) Stop() {
	if r == nil {
		return
	}
	if r.Config.RateLimiter != nil {
		r.Config.RateLimiter.Stop()
	}
	r.Config.AsyncLogger.Stop()
}
