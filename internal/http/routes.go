package http

import "github.com/gin-gonic/gin"

// DealRoutes registers the /api/deals endpoints.
type DealRoutes struct {
	handler *Handler
}

// NewDealRoutes creates DealRoutes for handler.
func NewDealRoutes(handler *Handler) *DealRoutes {
	return &DealRoutes{handler: handler}
}

// Register adds the deal routes to rg. The static /history path takes
// precedence over :quantity.
func (r *DealRoutes) Register(rg *gin.RouterGroup) {
	deals := rg.Group("/deals")
	deals.GET("/history", r.handler.History)
	deals.POST("/cost", r.handler.CalculateCost)
	deals.POST("/batch", r.handler.CalculateBatch)
	deals.DELETE("/cache", r.handler.FlushCache)
	deals.GET("/:quantity", r.handler.GetDeal)
}

// LogRoutes registers GET /api/logs.
type LogRoutes struct {
	handler *Handler
}

// NewLogRoutes creates LogRoutes for handler.
func NewLogRoutes(handler *Handler) *LogRoutes {
	return &LogRoutes{handler: handler}
}

// Register adds the log routes to rg.
func (r *LogRoutes) Register(rg *gin.RouterGroup) {
	rg.GET("/logs", r.handler.Logs)
}
