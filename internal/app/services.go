package app

import (
	"github.com/guttosm/deal-service/config"
	"github.com/guttosm/deal-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator *service.DealCalculatorService
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config) *ServiceComponents {
	var opts []service.Option

	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL, cfg.Cache.Shards))
	}
	if cfg.Solver.BatchLimit > 0 {
		opts = append(opts, service.WithBatchLimit(cfg.Solver.BatchLimit))
	}

	return &ServiceComponents{
		Calculator: service.NewDealCalculatorService(opts...),
	}
}

// Stop releases the calculator cache.
func (s *ServiceComponents) Stop() {
	if s != nil && s.Calculator != nil {
		s.Calculator.Stop()
	}
}
