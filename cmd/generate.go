package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/petseed/internal/config"
	"github.com/Rana718/petseed/internal/faker"
	"github.com/Rana718/petseed/internal/generator"
	"github.com/Rana718/petseed/internal/pipeline"
	"github.com/Rana718/petseed/internal/storage"
)

var (
	genCustomers int
	genStage     string
	genSeed      uint64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and insert test data",
	Long: `Run every generation stage in order, or a single stage with --stage.

Stages read what earlier stages wrote, so a single stage only makes sense
once the stages before it have run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cmd.Flags().Changed("customers") {
			if genCustomers < 0 {
				return fmt.Errorf("--customers cannot be negative")
			}
			cfg.Generation.Customers = genCustomers
		}
		if cmd.Flags().Changed("seed") {
			cfg.Generation.Seed = genSeed
		}

		gen := generator.New(cfg, faker.New(cfg.Generation.Seed))
		p := pipeline.New(cfg, storage.OpenerFor(cfg), gen, pipeline.ConsoleReporter{})

		ctx := context.Background()
		start := time.Now()

		if genStage != "" {
			color.Cyan("🌱 Running stage %s...", genStage)
			if _, err := p.RunStage(ctx, genStage); err != nil {
				return err
			}
			color.Green("\n✅ Stage %s completed in %s", genStage, time.Since(start).Round(time.Millisecond))
			return nil
		}

		color.Cyan("🌱 Generating data for %d customers...", cfg.Generation.Customers)
		results, err := p.Run(ctx)
		if err != nil {
			return err
		}

		total := 0
		for _, res := range results {
			total += res.Rows
		}
		color.Green("\n✅ Inserted %d rows in %s", total, time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&genCustomers, "customers", "n", 0, "Number of customers (and residences) to generate")
	generateCmd.Flags().StringVarP(&genStage, "stage", "s", "", "Run only this stage (see 'petseed stages')")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "Random seed; 0 picks a random one")
}
