package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gobrackets/internal/configloader"
	"github.com/yaklabco/gobrackets/internal/logging"
	"github.com/yaklabco/gobrackets/pkg/config"
	"github.com/yaklabco/gobrackets/pkg/reporter"
	"github.com/yaklabco/gobrackets/pkg/runner"
)

// ErrScanFailures is returned when some files could not be scanned.
var ErrScanFailures = errors.New("scan failures")

// stdinPath is the pseudo-path that selects standard input.
const stdinPath = "-"

type scanFlags struct {
	format         string
	lang           string
	heuristic      string
	levels         int
	jobs           int
	ignore         []string
	include        []string
	extensions     []string
	noRound        bool
	noCurly        bool
	noSquare       bool
	noAngle        bool
	noPreprocessor bool
	noTokenizer    bool
	noContext      bool
	noSummary      bool
	compact        bool
	followSymlinks bool
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan files and colorize bracket pairs",
		Long:  scanLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	addScanFlags(cmd, flags)

	return cmd
}

const scanLongDescription = `Scan source files and report bracket pairs colorized by nesting depth.

By default, scans all files in the current directory and subdirectories.
Specify paths to scan specific files or directories, or "-" to read from
standard input.

Examples:
  gobrackets scan                      # Scan current directory
  gobrackets scan src/                 # Scan src directory
  gobrackets scan main.c               # Scan single file
  gobrackets scan --format render      # Paint the source itself
  gobrackets scan --format json        # Output as JSON for tooling
  gobrackets scan --lang c++ -         # Scan stdin as C++
  gobrackets scan --no-angle           # Ignore angle brackets entirely`

func runScan(cmd *cobra.Command, args []string, flags *scanFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliConfig(cmd, flags),
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldLevels, finalCfg.Levels,
		logging.FieldHeuristic, finalCfg.Heuristic,
		logging.FieldLang, finalCfg.Lang,
		logging.FieldJobs, finalCfg.Jobs,
	)

	result, err := scanSources(ctx, cmd, args, finalCfg, flags, workDir)
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       string(finalCfg.Color),
		Palette:     finalCfg.Palette,
		ShowContext: !flags.noContext,
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrScanFailures
	}

	return nil
}

// scanSources runs the scan against stdin or the filesystem.
func scanSources(
	ctx context.Context,
	cmd *cobra.Command,
	args []string,
	cfg *config.Config,
	flags *scanFlags,
	workDir string,
) (*runner.Result, error) {
	logger := logging.Default()

	if readFromStdin(cmd, args) {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		outcome := runner.ScanContent("<stdin>", content, cfg, cfg.Preprocessor.On())
		return runner.NewResult(outcome), nil
	}

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     normalizeExtensions(flags.extensions),
		IncludeGlobs:   flags.include,
		ExcludeGlobs:   cfg.Ignore,
		FollowSymlinks: flags.followSymlinks,
		WithInactive:   cfg.Preprocessor.On(),
		Jobs:           cfg.Jobs,
		Config:         cfg,
	}

	logger.Debug("starting scan run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New().Run(ctx, runOpts)
	if err != nil {
		return nil, errors.Join(errors.New("scan run failed"), err)
	}

	return result, nil
}

// readFromStdin reports whether input should come from standard input.
// Explicit "-" always wins; with no paths at all, piped stdin is used.
func readFromStdin(cmd *cobra.Command, args []string) bool {
	if len(args) == 1 && args[0] == stdinPath {
		return true
	}

	if len(args) > 0 {
		return false
	}

	// Only treat stdin as input when it is actually a pipe; an interactive
	// terminal means the user wants a directory scan.
	if cmd.InOrStdin() != os.Stdin {
		return false
	}

	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// cliConfig builds the CLI-precedence config layer from explicitly set flags.
func cliConfig(cmd *cobra.Command, flags *scanFlags) *config.Config {
	cfg := &config.Config{}

	cfg.Format = config.OutputFormat(flags.format)
	cfg.Lang = flags.lang

	if cmd.Flags().Changed("levels") {
		cfg.Levels = flags.levels
	}
	if cmd.Flags().Changed("heuristic") {
		cfg.Heuristic = flags.heuristic
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = flags.ignore
	}

	if colorMode, err := cmd.Flags().GetString("color"); err == nil && colorMode != "" {
		cfg.Color = config.ColorMode(colorMode)
	}

	disabled := func() *bool {
		value := false
		return &value
	}
	if flags.noRound {
		cfg.Kinds.Round = disabled()
	}
	if flags.noCurly {
		cfg.Kinds.Curly = disabled()
	}
	if flags.noSquare {
		cfg.Kinds.Square = disabled()
	}
	if flags.noAngle {
		cfg.Kinds.Angle = disabled()
	}

	if flags.noPreprocessor {
		enabled := false
		cfg.Preprocessor.Enabled = &enabled
	}
	cfg.NoTokenizer = flags.noTokenizer

	return cfg
}

// normalizeExtensions lowercases extensions and ensures a leading dot.
func normalizeExtensions(extensions []string) []string {
	if len(extensions) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}

func addScanFlags(cmd *cobra.Command, flags *scanFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, render, json, summary")
	cmd.Flags().StringVar(&flags.lang, "lang", "", "language identifier (skips detection)")
	cmd.Flags().StringVar(&flags.heuristic, "heuristic", "strict", "angle-bracket heuristic: strict, loose")
	cmd.Flags().IntVar(&flags.levels, "levels", config.DefaultLevels, "nesting levels before colors repeat")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "glob patterns to include")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "restrict scanning to these file extensions")
	cmd.Flags().BoolVar(&flags.noRound, "no-round", false, "ignore round brackets ()")
	cmd.Flags().BoolVar(&flags.noCurly, "no-curly", false, "ignore curly brackets {}")
	cmd.Flags().BoolVar(&flags.noSquare, "no-square", false, "ignore square brackets []")
	cmd.Flags().BoolVar(&flags.noAngle, "no-angle", false, "ignore angle brackets <>")
	cmd.Flags().BoolVar(&flags.noPreprocessor, "no-preprocessor", false, "disable C-preprocessor awareness")
	cmd.Flags().BoolVar(&flags.noTokenizer, "no-tokenizer", false, "skip syntax tokenization and scan raw bytes")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "traverse directory symlinks")
}
