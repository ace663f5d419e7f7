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
	"github.com/yaklabco/gobrackets/pkg/runner"
)

type inactiveFlags struct {
	format string
}

const formatJSON = "json"

// inactiveRegionInfo represents an inactive region in JSON output.
type inactiveRegionInfo struct {
	StartLine   int `json:"startLine"`
	EndLine     int `json:"endLine"`
	StartOffset int `json:"startOffset"`
	EndOffset   int `json:"endOffset"`
}

// inactiveFileInfo represents a file with inactive regions in JSON output.
type inactiveFileInfo struct {
	Path    string               `json:"path"`
	Regions []inactiveRegionInfo `json:"regions"`
}

func newInactiveCommand() *cobra.Command {
	flags := &inactiveFlags{}

	cmd := &cobra.Command{
		Use:   "inactive [paths...]",
		Short: "List inactive C-preprocessor regions",
		Long: `List the regions excluded from compilation by C-preprocessor
conditionals, such as the body of an #if 0 block. Only C-family files
are inspected; brackets inside these regions are never colorized.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInactive(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

func runInactive(cmd *cobra.Command, args []string, flags *inactiveFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
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

	result, err := runner.New().Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: loadResult.Config.Ignore,
		WithInactive: true,
		Jobs:         loadResult.Config.Jobs,
		Config:       loadResult.Config,
	})
	if err != nil {
		return errors.Join(errors.New("scan run failed"), err)
	}

	files := collectInactive(result)

	if flags.format == formatJSON {
		return outputInactiveJSON(cmd, files)
	}

	return outputInactiveText(cmd, files)
}

// collectInactive gathers files with at least one inactive region.
func collectInactive(result *runner.Result) []inactiveFileInfo {
	var files []inactiveFileInfo

	for _, outcome := range result.Files {
		if outcome.Doc == nil || len(outcome.Inactive) == 0 {
			continue
		}

		info := inactiveFileInfo{Path: outcome.Path}
		for _, region := range outcome.Inactive {
			startLine, _ := outcome.Doc.LineAt(region.Start)
			endLine, _ := outcome.Doc.LineAt(region.End)
			info.Regions = append(info.Regions, inactiveRegionInfo{
				StartLine:   startLine,
				EndLine:     endLine,
				StartOffset: region.Start,
				EndOffset:   region.End,
			})
		}
		files = append(files, info)
	}

	return files
}

// outputInactiveText prints inactive regions in human-readable form.
func outputInactiveText(cmd *cobra.Command, files []inactiveFileInfo) error {
	out := cmd.OutOrStdout()

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out), nil)

	if len(files) == 0 {
		fmt.Fprintln(out, "No inactive regions found.")
		return nil
	}

	for _, file := range files {
		fmt.Fprintln(out, styles.FilePath.Render(file.Path))
		for _, region := range file.Regions {
			location := fmt.Sprintf("lines %d-%d", region.StartLine, region.EndLine)
			span := fmt.Sprintf("(bytes %d-%d)", region.StartOffset, region.EndOffset)
			fmt.Fprintf(out, "  %-16s %s\n",
				styles.Inactive.Render(location), styles.Dim.Render(span))
		}
	}

	return nil
}

// outputInactiveJSON prints inactive regions as a JSON array.
func outputInactiveJSON(cmd *cobra.Command, files []inactiveFileInfo) error {
	if files == nil {
		files = []inactiveFileInfo{}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(files); err != nil {
		return fmt.Errorf("encoding regions: %w", err)
	}
	return nil
}
