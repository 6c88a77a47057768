package site

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/saber-notes/saberweb/internal/config"
)

// ErrRemoteImageNotAllowed is returned when image restrictions are on and a
// remote image matches no configured pattern.
var ErrRemoteImageNotAllowed = errors.New("remote image not allowed")

// ImagePolicy decides which remote image URLs the page may reference.
type ImagePolicy struct {
	// Unoptimized disables all checks; images are referenced as-is.
	Unoptimized bool
	Patterns    []config.RemotePattern
}

// NewImagePolicy builds an ImagePolicy from the images section of the config.
func NewImagePolicy(cfg config.ImagesConfig) ImagePolicy {
	return ImagePolicy{Unoptimized: cfg.Unoptimized, Patterns: cfg.RemotePatterns}
}

// Check returns nil when src may be used. Relative sources are local assets
// and always allowed.
func (p ImagePolicy) Check(src string) error {
	if p.Unoptimized {
		return nil
	}
	u, err := url.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing image url %q: %w", src, err)
	}
	if !u.IsAbs() {
		return nil
	}
	for _, pat := range p.Patterns {
		if matchPattern(pat, u) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrRemoteImageNotAllowed, src)
}

// CheckAll applies Check to every source and stops at the first failure.
func (p ImagePolicy) CheckAll(srcs []string) error {
	for _, src := range srcs {
		if err := p.Check(src); err != nil {
			return err
		}
	}
	return nil
}

func matchPattern(pat config.RemotePattern, u *url.URL) bool {
	if pat.Protocol != "" && pat.Protocol != u.Scheme {
		return false
	}
	if ok, _ := doublestar.Match(pat.Hostname, u.Hostname()); !ok {
		return false
	}
	if pat.Port != "" && pat.Port != u.Port() {
		return false
	}
	if pat.Pathname == "" {
		return true
	}
	ok, _ := doublestar.Match(pat.Pathname, u.Path)
	return ok
}
