package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/james-choncholas/bookstack-mcp-server/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bookstack-mcp", version.Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
