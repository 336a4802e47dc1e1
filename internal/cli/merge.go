package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/exdata/tabex/internal/logging"
	"github.com/exdata/tabex/internal/mergecsv"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <rootdir>",
	Short: "Merge converted CSV files into one CSV and workbook per format",
	Long: `Merge collects the CSV files a previous convert run produced under the
root directory and concatenates them, per format, into a single CSV and
a single Excel workbook written to the root directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().String("config", "", "Path to a job config file (default: ./tabex.yaml or built-in formats)")
	mergeCmd.Flags().String("out-prefix", "merged", "Base name for the merged output files")
	mergeCmd.Flags().Bool("delete-errorfiles", false, "Delete CSV files whose header does not match")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	root := args[0]

	cfg, err := loadJobConfig(cmd)
	if err != nil {
		return err
	}
	outPrefix, err := cmd.Flags().GetString("out-prefix")
	if err != nil {
		return err
	}
	deleteErrorFiles, err := cmd.Flags().GetBool("delete-errorfiles")
	if err != nil {
		return err
	}
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	for _, fc := range cfg.Formats {
		logger.Info(" < Merging %s tables >", fc.Name)
		table, err := mergecsv.Merge(root, fc.TableFormat(), fc.CSVTail, deleteErrorFiles, logger)
		if err != nil {
			return fmt.Errorf("merge %s tables: %w", fc.Name, err)
		}
		if table.Empty() {
			logger.Alert("No %s CSV files found under %q", fc.Name, root)
			continue
		}

		base := outPrefix + fc.CSVTail
		if err := mergecsv.WriteCSVFile(table, filepath.Join(root, base+".csv"), logger); err != nil {
			return err
		}
		if err := mergecsv.WriteXLSXFile(table, filepath.Join(root, base+".xlsx"), logger); err != nil {
			return err
		}
		logger.Info(" < Complete >")
	}
	return nil
}
