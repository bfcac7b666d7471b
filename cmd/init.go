package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/petseed/internal/config"
)

var (
	initProvider string
	initForce    bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + config.FileName,
	Long:  `Write the built-in distributions, ranges and schedule to ` + config.FileName + ` so they can be tuned.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if initProvider != "" {
			cfg.Database.Provider = initProvider
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		path := config.FileName
		if cfgFile != "" {
			path = cfgFile
		}
		if err := cfg.WriteFile(path, initForce); err != nil {
			return fmt.Errorf("failed to initialize project: %w", err)
		}

		color.Green("✅ Created %s", path)
		color.Cyan("💡 Export %s with your connection string, then run 'petseed generate'", cfg.Database.URLEnv)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initProvider, "provider", "", "Database provider (mysql, postgresql, postgres, sqlite)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}
