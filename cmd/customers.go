package cmd

import (
	"fmt"
	"strings"

	"custview/internal/customer"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List customers, optionally filtered by name",
		Long: `Lists the customer summaries the backend returns. The optional query is
lowercased and matched by the backend as a name substring.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, printer, err := setupCLI(cmd)
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = strings.ToLower(strings.TrimSpace(args[0]))
			}
			customers, err := client.FetchCustomers(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}
			return printer.PrintCustomers(customers)
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a customer's detail record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, printer, err := setupCLI(cmd)
			if err != nil {
				return err
			}
			detail, err := client.FetchCustomerDetail(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load customer %s: %w", args[0], err)
			}
			return printer.PrintDetail(detail)
		},
	}
}

func newSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Set a customer's triage status",
		Long: fmt.Sprintf(`Posts a status change and prints the updated record.

Accepted statuses: %s (or their English identifiers).`, statusLabels()),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := customer.ParseStatus(args[1])
			if err != nil {
				return err
			}
			client, printer, err := setupCLI(cmd)
			if err != nil {
				return err
			}
			updated, err := client.PostStatusUpdate(cmd.Context(), args[0], status)
			if err != nil {
				return fmt.Errorf("failed to set status of customer %s: %w", args[0], err)
			}
			return printer.PrintSummary(updated)
		},
	}
}

func statusLabels() string {
	labels := make([]string, len(customer.AllStatuses))
	for i, s := range customer.AllStatuses {
		labels[i] = s.Label()
	}
	return strings.Join(labels, ", ")
}
