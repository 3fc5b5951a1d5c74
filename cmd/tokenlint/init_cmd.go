package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tokenlint.yaml config file",
	Long:  `Create a .tokenlint.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".tokenlint.yaml"); err == nil && !force {
			return fmt.Errorf(".tokenlint.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".tokenlint.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .tokenlint.yaml")
		return nil
	},
}

const defaultConfig = `# tokenlint configuration
# Docs: https://github.com/yacobolo/tokenlint

# Shared settings
verbose: false

# Check settings
check:
  paths:
    - "**/*.css"
  root-selector: ":root"
  dark-selector: ".dark"
  min-contrast: 4.5        # WCAG AA for normal text
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
