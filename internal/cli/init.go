package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gobrackets/internal/configloader"
	"github.com/yaklabco/gobrackets/internal/logging"
	"github.com/yaklabco/gobrackets/pkg/config"
	"github.com/yaklabco/gobrackets/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gobrackets configuration file",
		Long: `Create a new .gobrackets.yml configuration file in the current directory
with sensible defaults. The file can be customized to change the palette,
disable bracket kinds, and configure other options.

Examples:
  gobrackets init                    Create minimal .gobrackets.yml
  gobrackets init --full             Create full config with every setting
  gobrackets init --output custom.yml  Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with every setting spelled out")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .gobrackets.yml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	// Determine output path
	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".gobrackets.yml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(absPath, content, configloader.ConfigFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)

	if flags.full {
		logger.Info("full template includes every setting with its default value")
	}

	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'gobrackets palette' to preview the level colors")

	return nil
}
