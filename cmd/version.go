package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show pcms3 version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pcms3 v0.3")
	},
}
