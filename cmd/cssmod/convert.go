package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/cssmod/internal/cssmod"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert components to CSS Modules in place",
	Long: `Convert each manifest entry, in order, relative to --root.
Entries may be paths or doublestar globs (components/**/*.jsx).
Positional arguments replace the configured file list.

Files without a stylesheet import are reported as skipped and left untouched.
Missing files are reported as not found.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup(cmd)
	},
	RunE: runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.String("root", "frontend/src", "Directory the manifest entries are relative to")
	f.StringSlice("files", nil, "Manifest entries (paths or globs) relative to --root")
	f.Bool("diff", false, "Print changed lines for each converted file")
	f.Bool("gitignore", true, "Skip gitignored glob matches")
}

func runConvert(cmd *cobra.Command, args []string) error {
	config := buildConvertConfig()
	if len(args) > 0 {
		config.Files = args
	}

	zerolog.Ctx(cmd.Context()).Debug().
		Str("root", config.Root).
		Strs("files", config.Files).
		Msg("starting conversion")

	rep := cssmod.NewReporter(cmd.OutOrStdout(), config)
	if _, err := cssmod.Run(cmd.Context(), config, rep); err != nil {
		return errors.Errorf("conversion failed: %w", err)
	}
	return nil
}
