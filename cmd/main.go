// Package main is the entry point for the deal-service application.
//
// @title           Deal Service API
// @version         1.0.0
// @description     API for calculating the minimum cost of buying a quantity through power-of-three deals.
//
//	A deal of 3^x units costs 3^(x+1) + x*3^(x-1). Quantities are covered greedily, largest deal first.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/deal-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Deals
// @tag.description Deal cost calculations
//
// @tag.name        Health
// @tag.description Health check endpoints
//
// @tag.name        Logs
// @tag.description Stored request logs
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/deal-service/docs" // swagger docs

	"github.com/guttosm/deal-service/internal/commands"
)

const (
	errCommand = 1
	errSetup   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root, err := commands.NewRootCmd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(errSetup)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(errCommand)
	}
}
