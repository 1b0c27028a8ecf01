package cmd

import (
	"fmt"

	"custview/internal/color"
	"custview/internal/tui/controller"
	"custview/internal/tui/model"
	"custview/pkg/logging"

	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive customer browser",
		Long: `Opens the terminal UI. The customer list loads on start; press enter to
show a customer's details, 1-4 to set its status, e to reply by email and
? for all key bindings.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	client, err := newGateway(cfg)
	if err != nil {
		return err
	}

	level := logging.ParseLevel(cfg.UI.LogLevel)
	logChannel := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(model.TUIConfig{
		API:        client,
		APIURL:     client.BaseURL(),
		EmailField: cfg.UI.EmailField,
		DebugMode:  level == logging.LevelDebug,
		ColorMode:  color.Apply(cfg.UI.ColorMode),
		LogChannel: logChannel,
	})
	if err != nil {
		return err
	}
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
