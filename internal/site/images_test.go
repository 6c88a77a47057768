package site

import (
	"errors"
	"testing"

	"github.com/saber-notes/saberweb/internal/config"
	"github.com/saber-notes/saberweb/internal/links"
)

func TestImagePolicyCheck(t *testing.T) {
	p := ImagePolicy{Patterns: []config.RemotePattern{
		{Protocol: "https", Hostname: "raw.githubusercontent.com", Pathname: "/saber-notes/saber/**"},
		{Hostname: "*.example.com", Port: "8443"},
	}}
	tests := []struct {
		src     string
		allowed bool
	}{
		{"https://raw.githubusercontent.com/saber-notes/saber/main/assets_raw/badges/snap-badge.png", true},
		{"http://raw.githubusercontent.com/saber-notes/saber/main/x.png", false},
		{"https://raw.githubusercontent.com/adil192/saber/main/x.png", false},
		{"https://evil.com/saber-notes/saber/x.png", false},
		{"https://cdn.example.com:8443/anything.png", true},
		{"https://cdn.example.com/anything.png", false},
		{"images/badges/github-mark.svg", true},
		{"/favicon.ico", true},
	}
	for _, tt := range tests {
		err := p.Check(tt.src)
		if tt.allowed && err != nil {
			t.Errorf("Check(%q) = %v, want allowed", tt.src, err)
		}
		if !tt.allowed && !errors.Is(err, ErrRemoteImageNotAllowed) {
			t.Errorf("Check(%q) = %v, want ErrRemoteImageNotAllowed", tt.src, err)
		}
	}
}

func TestImagePolicyUnoptimized(t *testing.T) {
	p := ImagePolicy{Unoptimized: true}
	if err := p.Check("https://anywhere.test/x.png"); err != nil {
		t.Errorf("unoptimized policy rejected image: %v", err)
	}
}

func TestLandingImagesAllowedByDefault(t *testing.T) {
	p := NewImagePolicy(config.ImagesConfig{RemotePatterns: config.DefaultConfig().Images.RemotePatterns})
	data := newLandingData(landingLinks(), "")
	if err := p.CheckAll(data.remoteImages()); err != nil {
		t.Errorf("default patterns reject a page image: %v", err)
	}
}

func landingLinks() links.Links {
	return links.Build("1.0.0")
}
