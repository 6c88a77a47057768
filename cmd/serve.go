package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/saber-notes/saberweb/internal/links"
	"github.com/saber-notes/saberweb/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a development server that renders the page on every request",
	Long: `Resolves the latest release once, then serves the landing page, rendering
it again for every request so template and content changes show up without
a full build.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	version, err := newResolver(cfg).Resolve(cmd.Context())
	if err != nil {
		return fmt.Errorf("resolving version: %w", err)
	}

	var privacy []byte
	if cfg.PrivacyPolicy != "" {
		if privacy, err = os.ReadFile(cfg.PrivacyPolicy); err != nil {
			return fmt.Errorf("reading privacy policy: %w", err)
		}
	}
	renderer, err := site.NewRenderer(site.NewImagePolicy(cfg.Images), cfg.SiteURL, privacy)
	if err != nil {
		return err
	}

	l := links.NewBuilder(cfg.DownloadBaseURL, cfg.Repo).Build(version)
	srv := site.NewServer(renderer, version, l, cfg.HighlightColor)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		srv.Shutdown(context.Background())
	}()

	port, _ := cmd.Flags().GetInt("port")
	openBrowser, _ := cmd.Flags().GetBool("open")
	fmt.Fprintf(os.Stderr, "saberweb %s serving Saber %s on http://localhost:%d\n", Version, version, port)

	if err := srv.ListenAndServe(port, openBrowser); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
