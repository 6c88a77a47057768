package cmd

import (
	"fmt"
	"os"

	"github.com/saber-notes/saberweb/internal/config"
	"github.com/saber-notes/saberweb/internal/release"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `saberweb init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newResolver creates the release resolver for cfg. GITHUB_TOKEN, when set,
// is sent to raise the API rate limit.
func newResolver(cfg *config.Config) *release.Resolver {
	client := release.NewGitHubClient(cfg.APIBaseURL, cfg.Repo, cfg.Timeout())
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client.WithToken(token)
	}
	return release.NewResolver(client)
}

func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
