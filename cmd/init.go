package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saber-notes/saberweb/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize saberweb configuration",
	Long:  `Runs an interactive wizard to configure the site build and writes the config file. Use --defaults to skip the questions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if useDefaults, _ := cmd.Flags().GetBool("defaults"); useDefaults {
			if err := config.DefaultConfig().Save(cfgFile); err != nil {
				return err
			}
			fmt.Printf("Configuration saved to %s\n", cfgFile)
			return nil
		}
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	initCmd.Flags().Bool("defaults", false, "write the default configuration without prompting")
	rootCmd.AddCommand(initCmd)
}
