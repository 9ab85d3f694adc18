package commands

import (
	"github.com/guttosm/deal-service/config"
	"github.com/guttosm/deal-service/internal/app"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	port string
}

// NewServeCommand returns the command that runs the HTTP API until the
// command context is cancelled.
func NewServeCommand() (*cobra.Command, error) {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves the deal cost API over HTTP",
		Long: `Serves the deal cost API over HTTP.

Configuration is read from the environment (PORT, MONGODB_URI, AUTH_ENABLED, ...).
The --port flag takes precedence over PORT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if opts.port != "" {
				cfg.Server.Port = opts.port
			}

			application := app.InitializeApp(cfg)
			defer application.Close()

			return app.NewServer(application.Router, cfg.Server.Port).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&opts.port, "port", "", "port to listen on, overrides PORT")
	if err := cmd.RegisterFlagCompletionFunc("port", cobra.NoFileCompletions); err != nil {
		return nil, err
	}

	return cmd, nil
}
