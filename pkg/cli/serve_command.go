package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ossa-dev/ossa/pkg/api"
	"github.com/ossa-dev/ossa/pkg/console"
	"github.com/ossa-dev/ossa/pkg/logger"
)

var serveLog = logger.New("cli:serve_command")

// NewServeCommand creates the serve command, which runs the validation REST
// API until the command context is cancelled.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the OSSA validation REST API",
		Long: `Start an HTTP server exposing validation, compliance, token estimation and
schema inspection under /v1. Configuration comes from OSSA_API_HOST,
OSSA_API_PORT and OSSA_DEFAULT_SCHEMA_VERSION; flags override the
environment.

Examples:
  ossa serve
  ossa serve --port 9090
  OSSA_API_HOST=127.0.0.1 ossa serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := api.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port, _ = cmd.Flags().GetInt("port")
			}
			if cmd.Flags().Changed("host") {
				cfg.Host, _ = cmd.Flags().GetString("host")
			}

			server := api.NewServer(cfg)

			errCh := make(chan error, 1)
			go func() {
				serveLog.Printf("listening on %s", cfg.Addr())
				errCh <- server.ListenAndServe()
			}()

			fmt.Fprintln(cmd.OutOrStdout(), console.FormatInfoMessage("OSSA API listening on "+cfg.Addr()))

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				serveLog.Print("shutdown requested")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().Int("port", 0, "Port to listen on (overrides OSSA_API_PORT)")
	cmd.Flags().String("host", "", "Host to bind (overrides OSSA_API_HOST)")

	return cmd
}
