package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"potx/internal/config"
	"potx/internal/extract"
)

// filesCmd represents the files command
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the source files an extraction run would scan",
	Long: `Files prints the candidate source list after applying the configured
search paths and exclusions, one path per line relative to the project
root. Useful for debugging exclusion patterns.`,
	RunE: runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	files, err := extract.CollectAllFiles(cfg.ToSpec(rootDir))
	if err != nil {
		return err
	}

	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}
