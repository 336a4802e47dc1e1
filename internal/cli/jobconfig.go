package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/exdata/tabex/internal/config"
)

// loadJobConfig resolves the job config for a command: the --config flag
// if given, otherwise tabex.yaml in the working directory if present,
// otherwise the built-in defaults.
func loadJobConfig(cmd *cobra.Command) (*config.JobConfig, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path == "" {
		if _, statErr := os.Stat(config.ConfigFileName); statErr != nil {
			return config.Default(), nil
		}
		path = config.ConfigFileName
	}
	return config.Load(path)
}
