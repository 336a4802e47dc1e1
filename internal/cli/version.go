package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the tabex version, overridable at build time via
// -ldflags "-X github.com/exdata/tabex/internal/cli.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tabex version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tabex %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
