package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleet-logistics-service/internal/pkg/csvimport"
	"github.com/fleet-logistics-service/internal/repository/postgres"
	"github.com/fleet-logistics-service/internal/usecase"
)

var tugboatsCmd = &cobra.Command{
	Use:   "tugboats <file.csv>",
	Short: "Import tugboats",
	Args:  cobra.ExactArgs(1),
	RunE:  importTugboats,
}

var ordersCmd = &cobra.Command{
	Use:   "orders <file.csv>",
	Short: "Import orders",
	Long: `Import orders. Rows without an Id get a generated one of the form
order_<unix millis>_<8 hex chars>.`,
	Args: cobra.ExactArgs(1),
	RunE: importOrders,
}

func init() {
	rootCmd.AddCommand(tugboatsCmd)
	rootCmd.AddCommand(ordersCmd)
}

func importTugboats(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	uc := usecase.NewTugboatUseCase(
		postgres.NewTugboatRepository(e.db),
		postgres.NewStationRepository(e.db),
		postgres.NewTransactor(e.db),
		nil,
		usecase.ImportMode{Strict: e.cfg.Import.Strict},
		e.log,
	)

	resp, err := uc.Import(cmd.Context(), f)
	if err != nil {
		return err
	}
	report(cmd, "tugboats", resp.Imported, resp.Issues)
	return nil
}

func importOrders(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	uc := usecase.NewOrderUseCase(
		postgres.NewOrderRepository(e.db),
		postgres.NewStationRepository(e.db),
		postgres.NewTransactor(e.db),
		nil,
		usecase.ImportMode{Strict: e.cfg.Import.Strict},
		e.log,
	)

	resp, err := uc.Import(cmd.Context(), f)
	if err != nil {
		return err
	}
	report(cmd, "orders", resp.Imported, resp.Issues)
	return nil
}

func report(cmd *cobra.Command, what string, imported int, issues []csvimport.Issue) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %d %s\n", imported, what)
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(out, "%d values were replaced with zero:\n", len(issues))
	for _, issue := range issues {
		fmt.Fprintf(out, "  %s\n", issue)
	}
}
