// Package cli wires the tabex commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tabex",
	Short: "Extract tables from Excel workbooks",
	Long: `tabex locates rectangular tables inside loosely structured spreadsheet
sheets and extracts them as CSV files.

A table is any rectangular region whose first row (the header) is fully
populated; rows below it belong to the table until an entirely empty row.
Format entries in tabex.yaml choose which workbooks and sheets are read,
how small a region may be, and how extracted tables are post-processed.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
