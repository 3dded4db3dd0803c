package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"potx/internal/catalog"
	"potx/internal/config"
	"potx/internal/extract"
	"potx/internal/watch"
)

var (
	watchFlag  bool
	outputFlag string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract translatable strings into a POT catalog",
	Long: `Extract scans the project's source paths, dispatches each recognized
file to the right extraction backend (xgettext or a user-defined
command) and merges the partial catalogs into a single POT file.

Examples:
  # Extract the current project
  potx extract

  # Write the catalog somewhere else
  potx extract -o locale/app.pot

  # Re-extract whenever source files change
  potx extract --watch
`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "watch for source changes and re-extract")
	extractCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "override the configured output POT path")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling extraction...")
		cancel()
	}()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if outputFlag != "" {
		cfg.Extract.Output = outputFlag
	}

	if err := extractOnce(ctx, rootDir, cfg); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("extraction cancelled")
		}
		return err
	}

	if !watchFlag {
		return nil
	}

	return watchAndExtract(ctx, rootDir, cfg)
}

// extractOnce runs a full discovery + extraction pass and writes the POT
// catalog to the configured output path.
func extractOnce(ctx context.Context, rootDir string, cfg *config.Config) error {
	spec := cfg.ToSpec(rootDir)

	files, err := extract.CollectAllFiles(spec)
	if err != nil {
		return err
	}

	scratch, err := extract.NewScratchDir()
	if err != nil {
		return err
	}
	defer scratch.Cleanup()

	opts := cfg.ToOptions()
	opts.Progress = newBarReporter(quietFlag)

	out, err := extract.ExtractWithAll(ctx, scratch, spec, files, opts)
	printDiagnostics(out.Diagnostics)
	if err != nil {
		return err
	}
	if !out.OK() {
		return fmt.Errorf("extraction produced no catalog")
	}

	outPath := cfg.OutputPath(rootDir)
	if err := copyFile(out.POTFile, outPath); err != nil {
		return fmt.Errorf("failed to write output catalog: %w", err)
	}

	if !quietFlag {
		info, err := catalog.Inspect(outPath)
		if err != nil {
			return fmt.Errorf("failed to inspect output catalog: %w", err)
		}
		fmt.Printf("✓ Extracted %d entries from %d files to %s\n", info.Entries, len(files), cfg.Extract.Output)
	}
	return nil
}

// watchAndExtract re-runs extraction after every debounced batch of source
// changes until the context is cancelled.
func watchAndExtract(ctx context.Context, rootDir string, cfg *config.Config) error {
	outPath := cfg.OutputPath(rootDir)
	metaDir := filepath.Join(rootDir, ".potx")

	// Discovery tolerates missing search paths; the watcher only gets the
	// directories that exist.
	var dirs []string
	for _, p := range cfg.Sources.Paths {
		dir := filepath.Join(rootDir, filepath.FromSlash(p))
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no watchable source directories")
	}

	w, err := watch.New(dirs, func(path string) bool {
		if path == outPath {
			return false
		}
		return !strings.HasPrefix(path, metaDir+string(filepath.Separator))
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Stop()

	w.Start(ctx, func(paths []string) {
		if !quietFlag {
			fmt.Fprintf(os.Stderr, "%d files changed, re-extracting...\n", len(paths))
		}
		if err := extractOnce(ctx, rootDir, cfg); err != nil && ctx.Err() == nil {
			fmt.Fprintln(os.Stderr, "extraction failed:", err)
		}
	})

	if !quietFlag {
		fmt.Fprintln(os.Stderr, "Watching for changes (Ctrl+C to stop)...")
	}
	<-ctx.Done()
	return nil
}

func printDiagnostics(diags []extract.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.String())
	}
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
