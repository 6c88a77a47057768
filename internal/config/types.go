package config

// OutputMode selects how the site is produced.
type OutputMode string

const (
	// OutputExport writes a fully static site to OutputDir.
	OutputExport OutputMode = "export"
)

// Config is the top-level saberweb configuration, corresponding to .saberweb.yml.
type Config struct {
	Repo            string       `yaml:"repo" koanf:"repo"`
	APIBaseURL      string       `yaml:"api_base_url" koanf:"api_base_url"`
	DownloadBaseURL string       `yaml:"download_base_url" koanf:"download_base_url"`
	OutputDir       string       `yaml:"output_dir" koanf:"output_dir"`
	Output          OutputMode   `yaml:"output" koanf:"output"`
	SiteURL         string       `yaml:"site_url" koanf:"site_url"`
	HighlightColor  string       `yaml:"highlight_color" koanf:"highlight_color"`
	HTTPTimeout     int          `yaml:"http_timeout" koanf:"http_timeout"`
	PrivacyPolicy   string       `yaml:"privacy_policy,omitempty" koanf:"privacy_policy"`
	Images          ImagesConfig `yaml:"images" koanf:"images"`
}

// ImagesConfig controls which remote images the page may reference.
type ImagesConfig struct {
	Unoptimized    bool            `yaml:"unoptimized" koanf:"unoptimized"`
	RemotePatterns []RemotePattern `yaml:"remote_patterns" koanf:"remote_patterns"`
}

// RemotePattern allows remote images whose URL matches every non-empty field.
// Pathname is a doublestar glob such as "/saber-notes/saber/**".
type RemotePattern struct {
	Protocol string `yaml:"protocol" koanf:"protocol"`
	Hostname string `yaml:"hostname" koanf:"hostname"`
	Port     string `yaml:"port" koanf:"port"`
	Pathname string `yaml:"pathname" koanf:"pathname"`
}
