package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"ordem_servico/internal/domain/entities"

	"github.com/spf13/cobra"
)

func newClientsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clients [query]",
		Short: "List the shop's clients, optionally filtered by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			var (
				clients []entities.Client
				err     error
			)
			if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
				clients, err = a.clients.List(ctx, a.session)
			} else {
				clients, err = a.clients.Search(ctx, a.session, args[0])
			}
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNome\tTelefone\tCidade")
			for _, c := range clients {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.PhoneNumber, c.City)
			}
			return tw.Flush()
		},
	}
}
