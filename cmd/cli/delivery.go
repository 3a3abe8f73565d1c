package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeliveryStatusCmd(a *app) *cobra.Command {
	var action string
	cmd := &cobra.Command{
		Use:   "delivery-status <id> <status>",
		Short: "Set the status of a delivery",
		Long: `delivery-status sets the status of a delivery. With --notify the
server also runs one of its configured notify actions (log, publish) and
reports its output.`,
		Example: `  octosupply delivery-status 2 delivered --notify publish`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.format()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := a.client().UpdateDeliveryStatus(cmd.Context(), id, args[1], action)
			if err != nil {
				return notFound("deliveries", id, err)
			}
			if action == "" {
				return render(cmd.OutOrStdout(), format, res.Delivery)
			}
			if format != formatTable {
				return render(cmd.OutOrStdout(), format, res)
			}
			if err := render(cmd.OutOrStdout(), format, res.Delivery); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s: %s\n", res.NotifyAction, res.CommandOutput)
			return nil
		},
	}
	cmd.Flags().StringVar(&action, "notify", "", "notify action to run after the update")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Open a session and print its token",
		Long: `login is only needed when the server runs with auth enabled. Pass the
printed token with --token or OCTOSUPPLY_TOKEN.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.client().Login(cmd.Context(), args[0], password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}
