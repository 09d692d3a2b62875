package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stepwise-labs/bodmas/internal/api"
	"github.com/stepwise-labs/bodmas/internal/cli/config"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port    int
	NoWatch bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		Long: `Start a local HTTP server exposing the solver, the step explainer,
the answer checker and the question catalogue as JSON endpoints.

When a questions file is configured it is watched for changes and
reloaded automatically.`,
		Example: `  # Start on the default port
  bodmas serve

  # Custom port and question catalogue
  bodmas serve --port 8080 --questions questions.yaml

  # Disable the questions file watcher
  bodmas serve --no-watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NoWatch, "no-watch", false, "Don't reload the questions file on changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	watch := cfg.Watch && cfg.QuestionsFile != ""
	if opts.NoWatch {
		watch = false
	}

	server := api.NewServer(api.Config{
		Catalog:       catalog,
		Port:          cfg.Port,
		QuestionsFile: cfg.QuestionsFile,
		Watch:         watch,
		Logger:        logger,
	})

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Starting API server on http://localhost:%d\n", cfg.Port)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}
