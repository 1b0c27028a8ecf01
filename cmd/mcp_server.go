package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"custview/internal/mcpserver"

	"github.com/spf13/cobra"
)

func newMCPServerCmd() *cobra.Command {
	var sseAddr string

	cmd := &cobra.Command{
		Use:   "mcp-server",
		Short: "Expose the customer operations as MCP tools",
		Long: `Starts a Model Context Protocol server with the tools customer_list,
customer_detail, customer_set_status, mail_sync and mail_count.

By default the server speaks over stdin/stdout so an MCP client can launch
it directly. With --sse-addr it listens for HTTP server-sent events instead.
Logs always go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := setupCLI(cmd)
			if err != nil {
				return err
			}
			s := mcpserver.NewServer(client, rootCmd.Version)

			if sseAddr == "" {
				return mcpserver.ServeStdio(s)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return mcpserver.ServeSSE(ctx, s, sseAddr)
		},
	}

	cmd.Flags().StringVar(&sseAddr, "sse-addr", "", "Serve over SSE on this address (e.g. localhost:8090) instead of stdio")
	return cmd
}
