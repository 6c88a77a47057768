package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to saberweb! Let's configure the site build.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Repository the releases are read from.
	repoPrompt := promptui.Prompt{
		Label:   "GitHub repository (owner/name)",
		Default: cfg.Repo,
		Validate: func(s string) error {
			owner, name, ok := strings.Cut(s, "/")
			if !ok || owner == "" || name == "" {
				return fmt.Errorf("expected owner/name")
			}
			return nil
		},
	}
	repo, err := repoPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("repository: %w", err)
	}
	cfg.Repo = repo

	// 2. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 3. Image handling.
	imagesPrompt := promptui.Select{
		Label: "Remote images",
		Items: []string{
			"unoptimized — reference any remote image as-is",
			"restricted  — only allow images matching remote_patterns",
		},
	}
	idx, _, err := imagesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("images: %w", err)
	}
	cfg.Images.Unoptimized = idx == 0

	// 4. Optional public URL.
	sitePrompt := promptui.Prompt{
		Label:   "Public site URL (leave blank to omit canonical links)",
		Default: cfg.SiteURL,
	}
	siteURL, err := sitePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site url: %w", err)
	}
	cfg.SiteURL = strings.TrimSpace(siteURL)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
