package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/petseed/internal/config"
	"github.com/Rana718/petseed/internal/storage"
	"github.com/Rana718/petseed/internal/types"
)

var generatedTables = []string{
	types.TableCustomer,
	types.TableAddress,
	types.TablePet,
	types.TableCustomerAddress,
	types.TableOrder,
	types.TableOrderItem,
	types.TableRequest,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show row counts of generated tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()
		gw, err := storage.OpenerFor(cfg)(ctx)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer gw.Close()

		color.Cyan("📊 Rows per table (%s)", cfg.Database.Provider)
		for _, table := range generatedTables {
			n, err := gw.Count(ctx, table)
			if err != nil {
				color.Red("  ❌ %-18s %v", table, err)
				continue
			}
			fmt.Printf("  %-18s %d\n", table, n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
