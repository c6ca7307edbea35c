package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssmod",
	Short: "Migrate React components from global CSS classes to CSS Modules",
	Long: `Rewrites stylesheet imports to scoped CSS Module imports and className
literals to property accesses on the imported styles object:

  import './Foo.css'         -> import styles from './Foo.module.css'
  className="customer-list"  -> className={styles.customerList}
  className={'main-layout'}  -> className={styles.main_layout}`,
	// Default behavior: run convert when no subcommand is given.
	// We must call setup here because PreRunE of convertCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := setup(cmd); err != nil {
			return err
		}
		return runConvert(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and attaches a logger to the command context.
func setup(cmd *cobra.Command) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	logger := newLogger(getBoolWithFallback("verbose", "verbose", false))
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}
