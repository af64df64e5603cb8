package commands

import (
	"context"
	"fmt"

	"github.com/ncobase/taskboard/internal/config"
	"github.com/ncobase/taskboard/internal/server"
	"github.com/spf13/cobra"
)

// NewStartCommand creates the start command.
func NewStartCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the taskboard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configFile)
		},
	}
}

func runServer(ctx context.Context, configFile string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app, cleanup, err := server.InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer cleanup()

	return app.Run(ctx)
}
