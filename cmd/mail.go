package cmd

import (
	"errors"
	"fmt"
	"strings"

	"custview/internal/gateway"

	"github.com/spf13/cobra"
)

func newSendEmailCmd() *cobra.Command {
	var to, subject, body, attachment string

	cmd := &cobra.Command{
		Use:   "send-email",
		Short: "Send an email through the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			to = strings.TrimSpace(to)
			if to == "" {
				return errors.New("--to must not be empty")
			}
			client, printer, err := setupCLI(cmd)
			if err != nil {
				return err
			}

			req := gateway.EmailRequest{Subject: subject, Body: body, Recipient: to}
			if path := strings.TrimSpace(attachment); path != "" {
				att, f, err := gateway.AttachmentFromFile(path)
				if err != nil {
					return err
				}
				defer f.Close()
				req.Attachment = att
			}

			ack, err := client.PostEmail(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to send email to %s: %w", to, err)
			}
			return printer.PrintAck(ack)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient address")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject line")
	cmd.Flags().StringVar(&body, "body", "", "Message body")
	cmd.Flags().StringVar(&attachment, "attachment", "", "Path of a file to attach")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Ask the backend to pull new mails and print the stored count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := setupCLI(cmd)
			if err != nil {
				return err
			}
			if err := client.SyncNow(cmd.Context()); err != nil {
				return fmt.Errorf("mail sync failed: %w", err)
			}
			n, err := client.CountMails(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to count mails: %w", err)
			}
			if !quietFlag {
				fmt.Fprintf(cmd.OutOrStdout(), "Mails stored: %d\n", n)
			}
			return nil
		},
	}
}
