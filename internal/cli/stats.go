package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gobrackets/internal/configloader"
	"github.com/yaklabco/gobrackets/internal/ui/pretty"
	"github.com/yaklabco/gobrackets/pkg/analysis"
	"github.com/yaklabco/gobrackets/pkg/runner"
)

type statsFlags struct {
	format string
	sortBy string
	byFile bool
	byKind bool
	byLang bool
	jobs   int
}

func newStatsCommand() *cobra.Command {
	flags := &statsFlags{}

	cmd := &cobra.Command{
		Use:   "stats [paths...]",
		Short: "Report aggregate bracket statistics",
		Long: `Scan files and report aggregate bracket statistics: totals, per-file
counts with maximum nesting level, counts per bracket kind, and counts
per detected language.

Examples:
  gobrackets stats src/             Statistics for a directory
  gobrackets stats --sort depth .   Deepest-nesting files first
  gobrackets stats --format json .  Machine-readable report`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")
	cmd.Flags().StringVar(&flags.sortBy, "sort", string(analysis.SortByCount),
		"sort order: count, alpha, depth")
	cmd.Flags().BoolVar(&flags.byFile, "by-file", true, "Include per-file breakdown")
	cmd.Flags().BoolVar(&flags.byKind, "by-kind", true, "Include per-kind breakdown")
	cmd.Flags().BoolVar(&flags.byLang, "by-language", true, "Include per-language breakdown")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "Number of parallel workers (0 = NumCPU)")

	return cmd
}

func runStats(cmd *cobra.Command, args []string, flags *statsFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sortBy := analysis.SortField(flags.sortBy)
	if !sortBy.IsValid() {
		return fmt.Errorf("invalid sort order %q: valid orders are count, alpha, depth", flags.sortBy)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	jobs := flags.jobs
	if jobs == 0 {
		jobs = loadResult.Config.Jobs
	}

	result, err := runner.New().Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: loadResult.Config.Ignore,
		WithInactive: loadResult.Config.Preprocessor.On(),
		Jobs:         jobs,
		Config:       loadResult.Config,
	})
	if err != nil {
		return errors.Join(errors.New("scan run failed"), err)
	}

	report := analysis.Analyze(result, analysis.Options{
		IncludeByFile:     flags.byFile,
		IncludeByKind:     flags.byKind,
		IncludeByLanguage: flags.byLang,
		SortBy:            sortBy,
		SortDesc:          true,
		WorkingDir:        workDir,
	})

	if flags.format == formatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return nil
	}

	return outputStatsText(cmd, report)
}

// outputStatsText prints the report in human-readable form.
func outputStatsText(cmd *cobra.Command, report *analysis.Report) error {
	out := cmd.OutOrStdout()

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out), nil)

	if !report.Totals.HasBrackets() {
		fmt.Fprintln(out, "No brackets found.")
		return nil
	}

	if len(report.ByFile) > 0 {
		fmt.Fprintln(out, styles.SummaryTitle.Render("Files"))
		for _, fa := range report.ByFile {
			detail := fmt.Sprintf("%d brackets, max level %d", fa.Brackets, fa.MaxLevel)
			if fa.InactiveRegions > 0 {
				detail += fmt.Sprintf(", %d inactive regions", fa.InactiveRegions)
			}
			fmt.Fprintf(out, "  %s  %s\n",
				styles.FilePath.Render(fa.Path), styles.Dim.Render(detail))
		}
		fmt.Fprintln(out)
	}

	if len(report.ByKind) > 0 {
		fmt.Fprintln(out, styles.SummaryTitle.Render("Kinds"))
		for _, ka := range report.ByKind {
			fmt.Fprintf(out, "  %-8s %d brackets in %d files\n",
				styles.KindName.Render(ka.Kind), ka.Brackets, len(ka.Files))
		}
		fmt.Fprintln(out)
	}

	if len(report.ByLanguage) > 0 {
		fmt.Fprintln(out, styles.SummaryTitle.Render("Languages"))
		for _, la := range report.ByLanguage {
			fmt.Fprintf(out, "  %-12s %d brackets in %d files\n",
				la.Language, la.Brackets, la.Files)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, styles.SummaryTitle.Render("Totals"))
	fmt.Fprintf(out, "  Files scanned:  %d\n", report.Totals.Files)
	fmt.Fprintf(out, "  With brackets:  %d\n", report.Totals.FilesWithBrackets)
	fmt.Fprintf(out, "  Total brackets: %d\n", report.Totals.Brackets)
	fmt.Fprintf(out, "  Max level:      %d\n", report.Totals.MaxLevel)
	if report.Totals.InactiveRegions > 0 {
		fmt.Fprintf(out, "  Inactive regions: %d\n", report.Totals.InactiveRegions)
	}

	return nil
}
