package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"ordem_servico/internal/adapter/export"
	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/domain/listing"
	"ordem_servico/internal/usecase"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var (
		filter listing.Filter
		page   int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List service orders, 10 per page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			p, err := a.views.Page(ctx, a.session, filter, page)
			if err != nil {
				return err
			}
			printPage(cmd.OutOrStdout(), p)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.Number, "number", "", "order number contains")
	cmd.Flags().StringVar(&filter.ClientName, "client", "", "client name contains (accent insensitive)")
	cmd.Flags().IntVar(&page, "page", 1, "1-based page")
	return cmd
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status [id] [Pendente|Concluído|Cancelado]",
		Short: "Change the status of an order",
		Long: `Changes the status of an order. The listing is updated right away and the
remote update is awaited before the command returns; a failed update is
reported and the previous status is kept.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := entities.OrderStatus(strings.TrimSpace(args[1]))
			if !status.Valid() {
				return fmt.Errorf("%w: %q", usecase.ErrInvalidStatus, args[1])
			}

			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			row, err := a.views.ChangeStatus(ctx, a.session, args[0], status)
			if err != nil {
				return err
			}
			a.views.Wait()

			current, err := a.views.Find(ctx, a.session, row.ID)
			if err != nil {
				return err
			}
			if current.Status != status {
				return fmt.Errorf("order %s: status update failed, kept %s", row.Number, current.Status)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OS %s: %s\n", row.Number, current.Status)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete [number]",
		Short: "Delete an order after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			var confirmer usecase.Confirmer = usecase.AlwaysConfirm
			if !yes {
				confirmer = promptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			number := args[0]
			if err := a.views.Delete(ctx, a.session, number, confirmer); err != nil {
				return err
			}
			a.views.Wait()

			if _, err := a.views.FindByNumber(ctx, a.session, number); err == nil {
				return fmt.Errorf("order %s: delete failed, order restored", number)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OS %s excluída\n", number)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		filter listing.Filter
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered listing as CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			rows, err := a.views.ExportRows(ctx, a.session, filter)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return export.Write(cmd.OutOrStdout(), f, rows)
			}
			file, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := export.Write(file, f, rows); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d ordens exportadas para %s\n", len(rows), output)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.Number, "number", "", "order number contains")
	cmd.Flags().StringVar(&filter.ClientName, "client", "", "client name contains")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "csv or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// promptConfirmer asks on out and accepts y or yes from in.
func promptConfirmer(in io.Reader, out io.Writer) usecase.Confirmer {
	return usecase.ConfirmFunc(func(_ context.Context, prompt string) bool {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "s", "sim":
			return true
		}
		return false
	})
}

func printPage(w io.Writer, p usecase.OrderPage) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(export.Headers, "\t"))
	for _, r := range p.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Number, r.ClientName, r.Status, r.PDFURL)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "página %d/%d (%d ordens)\n", p.Number, max(1, p.PageCount), p.TotalItems)
}
