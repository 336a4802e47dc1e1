package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exdata/tabex/internal/convert"
	"github.com/exdata/tabex/internal/logging"
)

var convertCmd = &cobra.Command{
	Use:   "convert <source_rootdir> <target_rootdir>",
	Short: "Extract tables from Excel workbooks into CSV files",
	Long: `Convert walks the source tree, extracts the tables from every workbook
accepted by a configured format, and writes one CSV per workbook and
format into a mirrored target tree.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("config", "", "Path to a job config file (default: ./tabex.yaml or built-in formats)")
	convertCmd.Flags().Bool("skip-converted", false, "Skip workbooks whose CSV is at least as new as the source")
	convertCmd.Flags().Bool("backup", false, "Copy each converted workbook next to its CSV")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	sourceRoot, targetRoot := args[0], args[1]

	cfg, err := loadJobConfig(cmd)
	if err != nil {
		return err
	}
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	opts := convert.Options{
		SkipConverted: cfg.Convert.SkipConverted,
		BackupSource:  cfg.Convert.BackupSource,
	}
	if cmd.Flags().Changed("skip-converted") {
		opts.SkipConverted, _ = cmd.Flags().GetBool("skip-converted")
	}
	if cmd.Flags().Changed("backup") {
		opts.BackupSource, _ = cmd.Flags().GetBool("backup")
	}

	for _, fc := range cfg.Formats {
		transform, err := fc.TransformFunc()
		if err != nil {
			return err
		}
		logger.Info(" < Converting %s tables >", fc.Name)
		c := convert.Converter{
			Format:    fc.TableFormat(),
			Transform: transform,
			Logger:    logger,
		}
		opts.CSVTail = fc.CSVTail
		if err := c.ConvertAll(sourceRoot, targetRoot, opts); err != nil {
			return fmt.Errorf("convert %s tables: %w", fc.Name, err)
		}
		logger.Info(" < Complete >")
	}
	return nil
}
