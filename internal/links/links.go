// Package links builds the version-dependent download URLs shown on the
// landing page.
package links

import (
	"fmt"
	"strings"

	"github.com/saber-notes/saberweb/internal/release"
)

const (
	DefaultBaseURL = "https://github.com"
	DefaultRepo    = "saber-notes/saber"
)

// Links holds the two platform-specific download URLs for one release.
type Links struct {
	InstallerURL string `json:"installer_url"`
	ArchiveURL   string `json:"archive_url"`
}

// Builder formats release artifact URLs for a repository.
type Builder struct {
	BaseURL string
	Repo    string
}

// NewBuilder returns a Builder, substituting defaults for empty arguments.
func NewBuilder(baseURL, repo string) Builder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if repo == "" {
		repo = DefaultRepo
	}
	return Builder{BaseURL: strings.TrimRight(baseURL, "/"), Repo: repo}
}

// Build substitutes v into the installer and AppImage templates. The
// version is inserted verbatim.
func (b Builder) Build(v release.VersionName) Links {
	dir := fmt.Sprintf("%s/%s/releases/download/v%s", b.BaseURL, b.Repo, v)
	return Links{
		InstallerURL: fmt.Sprintf("%s/SaberInstaller_v%s.exe", dir, v),
		ArchiveURL:   fmt.Sprintf("%s/Saber-%s-x86_64.AppImage", dir, v),
	}
}

// Build formats the links for the public Saber repository.
func Build(v release.VersionName) Links {
	return NewBuilder("", "").Build(v)
}
