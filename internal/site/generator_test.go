package site

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/saber-notes/saberweb/internal/annotate"
	"github.com/saber-notes/saberweb/internal/config"
	"github.com/saber-notes/saberweb/internal/links"
	"github.com/saber-notes/saberweb/internal/release"
)

type tagList []string

func (l tagList) ListTags(ctx context.Context) ([]release.Tag, error) {
	tags := make([]release.Tag, len(l))
	for i, n := range l {
		tags[i] = release.Tag{Name: release.ReleaseTag(n)}
	}
	return tags, nil
}

type failingSource struct{}

func (failingSource) ListTags(ctx context.Context) ([]release.Tag, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func newTestGenerator(t *testing.T, src release.TagSource) *Generator {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")
	g := NewGenerator(cfg, release.NewResolver(src))
	g.Now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return g
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// annotationsIn extracts the annotation manifest embedded in a landing page.
func annotationsIn(t *testing.T, page string) []annotate.Annotation {
	t.Helper()
	const open = `<script type="application/json" id="annotations">`
	start := strings.Index(page, open)
	if start == -1 {
		t.Fatalf("page has no annotation manifest")
	}
	rest := page[start+len(open):]
	end := strings.Index(rest, "</script>")
	if end == -1 {
		t.Fatalf("annotation manifest not terminated")
	}
	var out []annotate.Annotation
	if err := json.Unmarshal([]byte(rest[:end]), &out); err != nil {
		t.Fatalf("decoding annotation manifest: %v", err)
	}
	return out
}

func TestGenerate(t *testing.T) {
	g := newTestGenerator(t, tagList{"v2.3.1", "v2.2.0"})

	result, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Version != "2.3.1" {
		t.Errorf("Version = %q, want 2.3.1", result.Version)
	}
	wantInstaller := "https://github.com/saber-notes/saber/releases/download/v2.3.1/SaberInstaller_v2.3.1.exe"
	if result.Links.InstallerURL != wantInstaller {
		t.Errorf("InstallerURL = %q, want %q", result.Links.InstallerURL, wantInstaller)
	}

	for _, name := range []string{
		"index.html",
		"privacy_policy.html",
		"style.css",
		"script.js",
		"images/badges/github-mark.svg",
		"images/badges/github-mark-white.svg",
		"build.json",
	} {
		if _, err := os.Stat(filepath.Join(g.OutputDir, filepath.FromSlash(name))); err != nil {
			t.Errorf("missing output file %s: %v", name, err)
		}
	}
	if len(result.Files) != 7 {
		t.Errorf("Files = %v, want 7 entries", result.Files)
	}

	index := readFile(t, filepath.Join(g.OutputDir, "index.html"))
	for _, want := range []string{
		wantInstaller,
		"https://github.com/saber-notes/saber/releases/download/v2.3.1/Saber-2.3.1-x86_64.AppImage",
		"https://snapcraft.io/saber",
		`href="privacy_policy.html"`,
		`<span class="underline-me" data-annotation=`,
		"<title>Saber</title>",
	} {
		if !strings.Contains(index, want) {
			t.Errorf("index.html missing %q", want)
		}
	}

	var manifest Result
	if err := json.Unmarshal([]byte(readFile(t, filepath.Join(g.OutputDir, "build.json"))), &manifest); err != nil {
		t.Fatalf("decoding build.json: %v", err)
	}
	if manifest.Version != "2.3.1" || manifest.BuildID == "" {
		t.Errorf("build.json = %+v", manifest)
	}
	if !manifest.BuiltAt.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("BuiltAt = %v", manifest.BuiltAt)
	}
}

func TestGenerateInvalidTagWritesNothing(t *testing.T) {
	g := newTestGenerator(t, tagList{"2.3.1"})

	_, err := g.Generate(context.Background())
	if !errors.Is(err, release.ErrInvalidReleaseFormat) {
		t.Fatalf("err = %v, want ErrInvalidReleaseFormat", err)
	}
	if _, statErr := os.Stat(g.OutputDir); !os.IsNotExist(statErr) {
		t.Errorf("output dir should not exist, stat err = %v", statErr)
	}
}

func TestGenerateNetworkError(t *testing.T) {
	g := newTestGenerator(t, failingSource{})

	_, err := g.Generate(context.Background())
	if !errors.Is(err, release.ErrNetwork) {
		t.Fatalf("err = %v, want ErrNetwork", err)
	}
	if _, statErr := os.Stat(g.OutputDir); !os.IsNotExist(statErr) {
		t.Errorf("output dir should not exist, stat err = %v", statErr)
	}
}

func TestGenerateRestrictedImages(t *testing.T) {
	g := newTestGenerator(t, tagList{"v1.0.0"})
	g.Images = ImagePolicy{Patterns: config.DefaultConfig().Images.RemotePatterns}
	if _, err := g.Generate(context.Background()); err != nil {
		t.Fatalf("default patterns should allow every page image: %v", err)
	}

	g = newTestGenerator(t, tagList{"v1.0.0"})
	g.Images = ImagePolicy{Patterns: []config.RemotePattern{
		{Protocol: "https", Hostname: "raw.githubusercontent.com", Pathname: "/adil192/saber/**"},
	}}
	_, err := g.Generate(context.Background())
	if !errors.Is(err, ErrRemoteImageNotAllowed) {
		t.Fatalf("err = %v, want ErrRemoteImageNotAllowed", err)
	}
	if _, statErr := os.Stat(g.OutputDir); !os.IsNotExist(statErr) {
		t.Errorf("output dir should not exist, stat err = %v", statErr)
	}
}

func TestGenerateCustomPrivacyPolicy(t *testing.T) {
	g := newTestGenerator(t, tagList{"v1.0.0"})
	src := filepath.Join(t.TempDir(), "policy.md")
	if err := os.WriteFile(src, []byte("# Datenschutz\n\nKeine Daten.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g.PrivacyPolicy = src

	if _, err := g.Generate(context.Background()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	page := readFile(t, filepath.Join(g.OutputDir, "privacy_policy.html"))
	if !strings.Contains(page, "<title>Datenschutz - Saber</title>") {
		t.Errorf("custom title missing:\n%s", page)
	}
	if !strings.Contains(page, "<p>Keine Daten.</p>") {
		t.Errorf("custom body missing:\n%s", page)
	}
}

func TestLandingAnnotations(t *testing.T) {
	r, err := NewRenderer(ImagePolicy{Unoptimized: true}, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	page := NewPage("")
	l := links.Build("0.26.0")

	var out []byte
	for i := 0; i < 3; i++ {
		if out, err = r.Landing(l, page); err != nil {
			t.Fatalf("Landing: %v", err)
		}
	}
	if page.manifest.VisibleGroups() != 1 {
		t.Errorf("visible groups = %d, want 1", page.manifest.VisibleGroups())
	}

	got := annotationsIn(t, string(out))
	if len(got) != 9 {
		t.Fatalf("annotations = %d, want 9 (header, badges, 6 headings, 1 underline)", len(got))
	}
	counts := map[annotate.Type]int{}
	for _, a := range got {
		counts[a.Style.Type]++
	}
	want := map[annotate.Type]int{
		annotate.TypeBox:       1,
		annotate.TypeBracket:   1,
		annotate.TypeHighlight: 6,
		annotate.TypeUnderline: 1,
	}
	for typ, n := range want {
		if counts[typ] != n {
			t.Errorf("%s annotations = %d, want %d", typ, counts[typ], n)
		}
	}
	if got[0].Style.Type != annotate.TypeBox || got[1].Style.Type != annotate.TypeBracket {
		t.Errorf("first annotations = %+v, want header box then badge bracket", got[:2])
	}

	page.Unmount()
	if page.manifest.VisibleGroups() != 0 {
		t.Error("annotations still visible after Unmount")
	}
}

func TestLandingCanonical(t *testing.T) {
	r, err := NewRenderer(ImagePolicy{Unoptimized: true}, "https://example.org/", nil)
	if err != nil {
		t.Fatal(err)
	}
	out, err := r.Landing(links.Build("1.0.0"), NewPage(""))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `<link rel="canonical" href="https://example.org/"/>`) {
		t.Error("canonical link missing")
	}
}

func TestPrivacyPolicyDefault(t *testing.T) {
	r, err := NewRenderer(ImagePolicy{}, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	out, err := r.PrivacyPolicy()
	if err != nil {
		t.Fatalf("PrivacyPolicy: %v", err)
	}
	page := string(out)
	if !strings.Contains(page, `<h1 id="privacy-policy">Privacy policy</h1>`) {
		t.Errorf("heading missing:\n%s", page)
	}
	if !strings.Contains(page, `<a href="index.html">`) {
		t.Error("back link missing")
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		content, fallback, want string
	}{
		{"# Hello World\nsome text", "x", "Hello World"},
		{"no heading here", "Privacy policy", "Privacy policy"},
		{"## Sub\n# Main", "x", "Main"},
	}
	for _, tt := range tests {
		if got := extractTitle(tt.content, tt.fallback); got != tt.want {
			t.Errorf("extractTitle(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}
