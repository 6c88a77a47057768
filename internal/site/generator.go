package site

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/saber-notes/saberweb/internal/config"
	"github.com/saber-notes/saberweb/internal/links"
	"github.com/saber-notes/saberweb/internal/progress"
	"github.com/saber-notes/saberweb/internal/release"
)

// VersionResolver yields the version the download links point at.
type VersionResolver interface {
	Resolve(ctx context.Context) (release.VersionName, error)
}

// Generator builds the static site.
type Generator struct {
	Resolver       VersionResolver
	Links          links.Builder
	Images         ImagePolicy
	OutputDir      string
	SiteURL        string
	HighlightColor string
	// PrivacyPolicy is an optional markdown file replacing the built-in policy.
	PrivacyPolicy string
	Reporter      progress.Reporter
	Now           func() time.Time
}

// NewGenerator creates a Generator configured from cfg.
func NewGenerator(cfg *config.Config, resolver VersionResolver) *Generator {
	return &Generator{
		Resolver:       resolver,
		Links:          links.NewBuilder(cfg.DownloadBaseURL, cfg.Repo),
		Images:         NewImagePolicy(cfg.Images),
		OutputDir:      cfg.OutputDir,
		SiteURL:        cfg.SiteURL,
		HighlightColor: cfg.HighlightColor,
		PrivacyPolicy:  cfg.PrivacyPolicy,
	}
}

// Result describes a finished build.
type Result struct {
	BuildID string              `json:"build_id"`
	Version release.VersionName `json:"version"`
	Links   links.Links         `json:"links"`
	BuiltAt time.Time           `json:"built_at"`
	Files   []string            `json:"-"`
}

// outputFile is one file of the generated site, relative to OutputDir.
type outputFile struct {
	path string
	data []byte
}

const generateSteps = 4

// Generate resolves the release version, renders every page and writes the
// site. Nothing is written unless every step before writing succeeded.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	rep := g.Reporter
	if rep == nil {
		rep = progress.Nop{}
	}
	rep.Start(generateSteps)
	defer rep.Finish()

	rep.Step("Resolving latest release")
	version, err := g.Resolver.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving version: %w", err)
	}
	result := &Result{
		BuildID: uuid.NewString(),
		Version: version,
		Links:   g.Links.Build(version),
		BuiltAt: g.now().UTC(),
	}

	rep.Step("Rendering pages")
	files, err := g.render(result)
	if err != nil {
		return nil, err
	}

	rep.Step("Writing build manifest")
	manifest, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding build manifest: %w", err)
	}
	files = append(files, outputFile{"build.json", append(manifest, '\n')})

	rep.Step("Writing " + g.OutputDir)
	for _, f := range files {
		outPath := filepath.Join(g.OutputDir, filepath.FromSlash(f.path))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(outPath, f.data, 0o644); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, f.path)
	}

	return result, nil
}

func (g *Generator) render(result *Result) ([]outputFile, error) {
	var privacy []byte
	if g.PrivacyPolicy != "" {
		data, err := os.ReadFile(g.PrivacyPolicy)
		if err != nil {
			return nil, fmt.Errorf("reading privacy policy: %w", err)
		}
		privacy = data
	}

	r, err := NewRenderer(g.Images, g.SiteURL, privacy)
	if err != nil {
		return nil, err
	}

	page := NewPage(g.HighlightColor)
	defer page.Unmount()

	index, err := r.Landing(result.Links, page)
	if err != nil {
		return nil, fmt.Errorf("rendering index.html: %w", err)
	}
	policy, err := r.PrivacyPolicy()
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", privacyPolicyPath, err)
	}

	files := []outputFile{
		{"index.html", index},
		{privacyPolicyPath, policy},
	}
	for _, a := range staticAssets {
		files = append(files, outputFile{a.path, []byte(a.content)})
	}
	return files, nil
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// staticAsset is a file copied verbatim into the site.
type staticAsset struct {
	path        string
	contentType string
	content     string
}

var staticAssets = []staticAsset{
	{"style.css", "text/css; charset=utf-8", cssContent},
	{"script.js", "text/javascript; charset=utf-8", jsContent},
	{"images/badges/github-mark.svg", "image/svg+xml", githubMarkSVG},
	{"images/badges/github-mark-white.svg", "image/svg+xml", githubMarkWhiteSVG},
}
