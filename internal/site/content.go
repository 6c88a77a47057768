package site

import (
	"html/template"

	"github.com/saber-notes/saberweb/internal/links"
)

const (
	pageTitle       = "Saber"
	pageSubtitle    = "Handwritten Notes"
	pageDescription = "The notes app built for handwriting"

	rawAssetsURL = "https://raw.githubusercontent.com/saber-notes/saber/main/assets_raw/badges/"
	logoURL      = "https://raw.githubusercontent.com/saber-notes/saber/refs/heads/main/assets/icon/icon.svg"
	sourceURL    = "https://github.com/saber-notes/saber"

	privacyPolicyPath = "privacy_policy.html"
)

// Image is an <img> reference. Remote sources are checked against the
// ImagePolicy before rendering.
type Image struct {
	Src    string
	Alt    string
	Width  int
	Height int
}

// Badge is a store badge linking to a download or listing.
type Badge struct {
	Href  string
	Image Image
}

// Feature is one feature-description block. Paragraphs are trusted markup.
type Feature struct {
	Heading    string
	Paragraphs []template.HTML
}

// landingData is passed to the landing page template.
type landingData struct {
	Title       string
	Subtitle    string
	Description string
	Canonical   string
	Logo        Image
	Badges      []Badge
	Features    []Feature
}

// badges lists the download badges in display order. Only the Windows and
// AppImage entries depend on the release version.
func badges(l links.Links) []Badge {
	return []Badge{
		{
			Href:  "https://play.google.com/store/apps/details?id=com.adilhanney.saber",
			Image: Image{Src: rawAssetsURL + "google-play-badge.png", Alt: "Get it on Google Play", Width: 564, Height: 168},
		},
		{
			Href:  "https://f-droid.org/packages/com.adilhanney.saber/",
			Image: Image{Src: rawAssetsURL + "f-droid-badge.png", Alt: "Get it on F-Droid", Width: 564, Height: 168},
		},
		{
			Href:  "https://apps.apple.com/us/app/saber/id1671523739",
			Image: Image{Src: rawAssetsURL + "app-store-badge.svg", Alt: "Download on the App Store", Width: 120, Height: 40},
		},
		{
			Href:  l.InstallerURL,
			Image: Image{Src: rawAssetsURL + "windows-badge.png", Alt: "Download for Windows", Width: 391, Height: 129},
		},
		{
			Href:  "https://flathub.org/apps/details/com.adilhanney.saber",
			Image: Image{Src: rawAssetsURL + "flathub-badge.svg", Alt: "Download on Flathub", Width: 300, Height: 100},
		},
		{
			Href:  l.ArchiveURL,
			Image: Image{Src: rawAssetsURL + "appimage-logo.png", Alt: "Get it as an AppImage", Width: 468, Height: 468},
		},
		{
			Href:  "https://snapcraft.io/saber",
			Image: Image{Src: rawAssetsURL + "snap-badge.png", Alt: "Get it from the Snap Store", Width: 364, Height: 112},
		},
	}
}

var features = []Feature{
	{
		Heading: "Private",
		Paragraphs: []template.HTML{
			`Only you can access your notes!`,
			`You can sync your notes across devices knowing that they are encrypted and stored securely, and not even the server can read them.`,
			`You can also read the <a href="` + privacyPolicyPath + `">privacy policy</a>.`,
		},
	},
	{
		Heading: "Cross-platform",
		Paragraphs: []template.HTML{
			`You can sync and edit your notes across all your devices, whether they&apos;re a phone, tablet, or computer.`,
		},
	},
	{
		Heading: "The perfect highlighter",
		Paragraphs: []template.HTML{
			`Saber&apos;s highlighter doesn&apos;t overlap with itself and change color when you go over the same area again.`,
			`The highlighter also renders <span class="underline-me">underneath</span> the text, so you can still see the text clearly.`,
		},
	},
	{
		Heading: "Stay organized",
		Paragraphs: []template.HTML{
			`Saber lets you organize your notes into unlimited nested folders.`,
			`You can also quickly access your most recent notes from the home screen.`,
		},
	},
	{
		Heading: "Cohesive dark mode",
		Paragraphs: []template.HTML{
			`Saber&apos;s dark mode doesn&apos;t just darken the UI; it also darkens the notes themselves.`,
			`This means that you can read your notes in the dark without hurting your eyes.`,
		},
	},
	{
		Heading: "Open source",
		Paragraphs: []template.HTML{
			`No sneaky stuff! Saber is free and open source software.`,
			`Find the code on <a href="` + sourceURL + `"><picture><source srcset="images/badges/github-mark-white.svg" media="(prefers-color-scheme: dark)"><img class="github-logo" src="images/badges/github-mark.svg" alt="" aria-hidden="true" width="100" height="41"></picture>GitHub</a>.`,
		},
	},
}

func newLandingData(l links.Links, siteURL string) landingData {
	return landingData{
		Title:       pageTitle,
		Subtitle:    pageSubtitle,
		Description: pageDescription,
		Canonical:   siteURL,
		Logo:        Image{Src: logoURL, Alt: "Logo", Width: 100, Height: 100},
		Badges:      badges(l),
		Features:    features,
	}
}

// remoteImages returns every image source referenced by the landing page.
func (d landingData) remoteImages() []string {
	srcs := []string{d.Logo.Src}
	for _, b := range d.Badges {
		srcs = append(srcs, b.Image.Src)
	}
	return srcs
}
