package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssmod/internal/cssmod"
)

var classesCmd = &cobra.Command{
	Use:   "classes <file.css>...",
	Short: "List stylesheet classes and their styles accessors",
	Long: `Lex each stylesheet and print its class selectors next to the property
names the converter produces for them, camelCase for className="..." and
underscores for className={'...'}.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := cssmod.NewReporter(cmd.OutOrStdout(), buildConvertConfig())
		for _, path := range args {
			classes, err := cssmod.ParseStylesheet(path)
			if err != nil {
				return err
			}
			rep.PrintClasses(path, classes)
		}
		return nil
	},
}
