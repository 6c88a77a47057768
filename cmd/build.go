package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saber-notes/saberweb/internal/progress"
	"github.com/saber-notes/saberweb/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static landing page",
	Long: `Resolves the latest Saber release, builds the download links and renders
the landing page and privacy policy into the output directory. The build
fails, and nothing is written, if the release cannot be resolved.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from the config)")
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	buildCmd.Flags().Int("port", 8080, "port for the local server")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if outputDir, _ := cmd.Flags().GetString("output"); outputDir != "" {
		cfg.OutputDir = outputDir
	}
	logVerbose("repo: %s, api: %s, output: %s", cfg.Repo, cfg.APIBaseURL, cfg.OutputDir)

	generator := site.NewGenerator(cfg, newResolver(cfg))
	generator.Reporter = progress.NewReporter()
	result, err := generator.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Static site generated: %s (Saber %s, %d files)\n", cfg.OutputDir, result.Version, len(result.Files))
	logVerbose("build id: %s", result.BuildID)
	logVerbose("installer: %s", result.Links.InstallerURL)
	logVerbose("appimage:  %s", result.Links.ArchiveURL)

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		port, _ := cmd.Flags().GetInt("port")
		openBrowser, _ := cmd.Flags().GetBool("open")
		if err := site.ServeDir(cfg.OutputDir, port, openBrowser); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}

	return nil
}
