package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/reviewers-cli/reviewers/internal/config"
	"github.com/reviewers-cli/reviewers/internal/gitcmd"
	"github.com/reviewers-cli/reviewers/internal/output"
	"github.com/reviewers-cli/reviewers/internal/suggest"
)

const version = "1.0.0"

// Exit codes. Only repository-level failures are non-zero; an empty
// result set is a success.
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitNoRepository = 3
	ExitRuntimeError = 4
)

var (
	flagBase        string
	flagContributor string
	flagOutput      string
	flagMargin      int
	flagJobs        int
	flagNoColor     bool
	flagVerbose     bool
)

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var rootCmd = &cobra.Command{
	Use:   "reviewers [file ...]",
	Short: "Suggest code reviewers for a pending change",
	Long: `Reviewers suggests code reviewers for your working branch by attributing
the lines near each change to their most recent authors via git blame,
then ranking contributors by aggregate share of the attributed lines.

Positional file arguments restrict the analysis to those paths.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runSuggest,
}

func init() {
	rootCmd.Flags().StringVarP(&flagBase, "base", "b", "", "Base reference to diff against (default: develop if it exists, else master)")
	rootCmd.Flags().StringVarP(&flagContributor, "contributor", "c", "", "Show only this contributor's attributed lines (substring match; text output only, raw dumps the full report)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output format: text or raw")
	rootCmd.Flags().IntVar(&flagMargin, "margin", -1, "Lines to widen each changed range by (-1 uses the default)")
	rootCmd.Flags().IntVar(&flagJobs, "jobs", 0, "Per-file attribution workers (0 uses the default)")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable color and syntax highlighting")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}

func runSuggest(cmd *cobra.Command, args []string) error {
	log.SetOutput(os.Stderr)
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}

	repo, err := gitcmd.Open()
	if err != nil {
		if errors.Is(err, gitcmd.ErrNotARepository) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitNoRepository
			return nil
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	files, err := relToRoot(repo.Root(), args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	opts := suggest.Options{
		Base:   repo.ResolveBase(cfg.Base),
		Margin: cfg.Margin,
		Jobs:   cfg.Jobs,
		Files:  files,
	}
	log.Debugf("diffing against %s with margin %d", opts.Base, opts.Margin)

	report, err := suggest.Run(context.Background(), repo, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	writer, err := pickWriter(cfg)
	if err != nil {
		return err
	}
	if err := writer.Write(os.Stdout, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
	}
	return nil
}

// buildOverrides translates set flags into config overrides.
func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagBase != "" {
		m["base"] = flagBase
	}
	if flagOutput != "" {
		m["format"] = flagOutput
	}
	if flagMargin >= 0 {
		m["margin"] = strconv.Itoa(flagMargin)
	}
	if flagJobs > 0 {
		m["jobs"] = strconv.Itoa(flagJobs)
	}
	if flagNoColor {
		m["noColor"] = "true"
	}
	return m
}

// relToRoot rewrites user-supplied paths as repo-root-relative, since the
// diff output they are matched against uses root-relative paths. This keeps
// positional arguments working from any directory inside the repository.
func relToRoot(root string, args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	files := make([]string, 0, len(args))
	for _, a := range args {
		abs, err := filepath.Abs(a)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", a, err)
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", a, err)
		}
		files = append(files, filepath.ToSlash(rel))
	}
	return files, nil
}

// pickWriter selects the presenter: raw JSON always dumps the full report,
// a contributor filter switches text output to diff mode.
func pickWriter(cfg config.Config) (output.Writer, error) {
	color := cfg.Color && term.IsTerminal(int(os.Stdout.Fd()))
	if cfg.Format == "text" && flagContributor != "" {
		return output.NewContribWriter(flagContributor, color), nil
	}
	return output.GetWriter(cfg.Format, color)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print reviewers version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "reviewers version %s\n", version)
	},
}
