package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saber-notes/saberweb/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "saberweb",
	Short: "Static landing page generator for the Saber notes app",
	Long: `saberweb builds the Saber landing page as a static site. It looks up
the latest Saber release on GitHub, points the Windows and AppImage
download badges at that release, and renders the page together with its
hand-drawn annotations.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
