package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saber-notes/saberweb/internal/links"
	"github.com/saber-notes/saberweb/internal/release"
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Print the download links for the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		version, err := newResolver(cfg).Resolve(cmd.Context())
		if err != nil {
			return fmt.Errorf("resolving version: %w", err)
		}
		l := links.NewBuilder(cfg.DownloadBaseURL, cfg.Repo).Build(version)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Version release.VersionName `json:"version"`
				links.Links
			}{version, l})
		}

		fmt.Printf("Version:   %s\n", version)
		fmt.Printf("Installer: %s\n", l.InstallerURL)
		fmt.Printf("AppImage:  %s\n", l.ArchiveURL)
		return nil
	},
}

func init() {
	linksCmd.Flags().Bool("json", false, "print links as JSON")
	rootCmd.AddCommand(linksCmd)
}
