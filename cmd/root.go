package cmd

import (
	"fmt"
	"os"
	"time"

	"custview/internal/cli"
	"custview/internal/config"
	"custview/internal/gateway"
	"custview/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	apiURLFlag   string
	timeoutFlag  time.Duration
	debugFlag    bool
	outputFormat string
	quietFlag    bool
)

// loadConfig is swapped in tests to avoid reading the developer's files.
var loadConfig = config.LoadConfig

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "custview",
	Short: "Browse and triage customer records from the terminal",
	Long: `custview talks to the customer records backend over HTTP.

Run without a subcommand it opens the interactive browser: search customers
by name, inspect their details, set a triage status, reply by email and sync
the mailbox. The subcommands offer the same operations for scripts, and
'custview mcp-server' exposes them to MCP clients.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// that are not about flags or arguments.
	SilenceUsage: true,
	RunE:         runBrowse,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "custview version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Backend URL (overrides config and "+config.EnvAPIURL+")")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "Per-request timeout (overrides config and "+config.EnvTimeout+")")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output")

	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newSetStatusCmd())
	rootCmd.AddCommand(newSendEmailCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newMCPServerCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

// resolveConfig loads the layered configuration and applies flag overrides.
func resolveConfig(cmd *cobra.Command) (config.CustviewConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.CustviewConfig{}, err
	}
	if cmd.Flags().Changed("api-url") {
		cfg.API.URL = apiURLFlag
	}
	if cmd.Flags().Changed("timeout") {
		cfg.API.Timeout = timeoutFlag
	}
	if debugFlag {
		cfg.UI.LogLevel = "debug"
	}
	return cfg, nil
}

func newGateway(cfg config.CustviewConfig) (*gateway.Client, error) {
	client, err := gateway.New(cfg.API.URL, gateway.WithTimeout(cfg.API.Timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}
	return client, nil
}

// setupCLI prepares logging, the backend client and the printer for a
// non-interactive command.
func setupCLI(cmd *cobra.Command) (*gateway.Client, *cli.Printer, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logging.InitForCLI(logging.ParseLevel(cfg.UI.LogLevel), cmd.ErrOrStderr())

	format, err := cli.ParseOutputFormat(outputFormat)
	if err != nil {
		return nil, nil, err
	}
	client, err := newGateway(cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, cli.NewPrinter(cmd.OutOrStdout(), format, quietFlag), nil
}
