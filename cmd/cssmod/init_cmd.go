package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssmod.yaml config file",
	Long:  `Create a .cssmod.yaml configuration file in the current directory listing the default migration targets.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return errors.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return errors.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# cssmod configuration

# Shared settings
verbose: false
quiet: false
color: false

# Entries are relative to root, converted in this order.
# Globs are expanded with ** support.
root: frontend/src
files:
  - pages/CustomersPage.jsx
  - pages/UsersPage.jsx
  - pages/Dashboard.jsx
  - pages/LoginPage.jsx
  - components/features/CustomerList.jsx
  - components/features/CustomerForm.jsx
  - components/features/UserList.jsx
  - components/features/UserForm.jsx
  - components/shared/MainLayout.jsx

convert:
  diff: false       # print changed lines for converted files
  gitignore: true   # skip gitignored glob matches
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
