package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rana718/petseed/internal/pipeline"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List generation stages in run order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for i, name := range pipeline.Stages() {
			fmt.Printf("%d. %s\n", i+1, name)
		}
	},
}

func init() {
	rootCmd.AddCommand(stagesCmd)
}
