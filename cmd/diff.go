package cmd

import (
	"fmt"

	"confdiff/core/config"
	"confdiff/core/differ"
	"confdiff/core/logger"
	"confdiff/core/tree"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ignorePath string

// diffCmd compares two trees of configuration files and prints value drift.
var diffCmd = &cobra.Command{
	Use:   "diff <left-root> <right-root>",
	Short: "Report value drift between two configuration trees",
	Long: `Compare two directory trees of .cfg files and report, per matched
file, every key whose value differs between the left and right copy.

Files are matched across trees by file name; files present on only one
side are skipped. Keys present on only one side are not reported — only
value drift on keys common to both.

Examples:
  # Compare a staging tree against production
  confdiff diff ./staging ./production

  # Suppress differences in volatile sections or properties
  confdiff diff ./staging ./production --ignore volatile.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVarP(&ignorePath, "ignore", "i", "", "File containing section/property names to ignore (one per line)")

	RootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	leftRoot, rightRoot := args[0], args[1]

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = l.With(zap.String("run_id", uuid.NewString()))

	fsys := afero.NewOsFs()

	// Load the ignore list, if any
	ignore := differ.IgnoreSet{}
	if ignorePath != "" {
		ignore, err = differ.LoadIgnoreSet(fsys, ignorePath)
		if err != nil {
			return err
		}
		l.Debug("Loaded ignore list", zap.String("path", ignorePath), zap.Int("tokens", ignore.Len()))
	}

	// Discover file pairs common to both trees
	pairs, err := tree.CommonFiles(fsys, cfg.Tree, leftRoot, rightRoot)
	if err != nil {
		return err
	}
	l.Debug("Matched file pairs",
		zap.String("left", leftRoot),
		zap.String("right", rightRoot),
		zap.Int("count", len(pairs)),
	)

	drifted := 0
	for _, pair := range pairs {
		diffs, err := differ.Files(fsys, pair.Left, pair.Right)
		if err != nil {
			return fmt.Errorf("failed to compare %s: %w", pair.Name, err)
		}

		diffs = ignore.Filter(diffs)
		if len(diffs) == 0 {
			continue
		}

		drifted++
		printDifferences(pair.Name, diffs)
	}

	l.Info("Comparison finished",
		zap.Int("pairs", len(pairs)),
		zap.Int("drifted_files", drifted),
	)

	return nil
}

// printDifferences writes the per-file drift report to standard output.
func printDifferences(name string, diffs []differ.Difference) {
	fmt.Printf("# %s (%d)\n", name, len(diffs))
	for _, d := range diffs {
		fmt.Printf("  %s\n    %s\n    %s\n", d.Key, d.Left, d.Right)
	}
}
