// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/deal-service/config"
	"github.com/guttosm/deal-service/internal/http"
)

// App is the wired HTTP application. Close releases everything it started.
type App struct {
	Router *gin.Engine

	services *ServiceComponents
	database *DatabaseComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	serviceComponents := InitializeServices(cfg)
	dbComponents := InitializeDatabase(cfg.Database)
	routerComponents := InitializeRouter(serviceComponents.Calculator, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		services: serviceComponents,
		database: dbComponents,
		router:   routerComponents,
	}
}

// Close stops background workers in dependency order: request log writers
// first, then the database they write to, then the cache.
func (a *App) Close() {
	a.router.Stop()
	a.database.Close()
	a.services.Stop()
}
