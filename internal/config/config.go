package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL   = "https://vault.racerxonline.com"
	DefaultUserAgent = "mxvault/1.0 (research crawl; github.com/pmartens/mxvault)"
	DefaultOutDir    = "racerx_export"
	DefaultCacheDir  = ".mxvault-cache"
	DefaultDelay     = 500 * time.Millisecond
	DefaultTimeout   = 30 * time.Second

	DefaultFirstYear = 1974
	DefaultLastYear  = 2025
)

// Duration wraps time.Duration so YAML configs can say "500ms" or "2s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config controls the scope and pacing of a crawl.
type Config struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`

	// Series maps URL slugs to display names. Listing pages live under
	// {base}/{year}/{slug}/races.
	Series map[string]string `yaml:"series"`

	FirstYear int `yaml:"first_year"`
	LastYear  int `yaml:"last_year"`

	// SMX event links show up mixed into SX/MX listing pages; when false
	// they are filtered out of discovery.
	IncludeSMX bool `yaml:"include_smx"`

	Delay    Duration `yaml:"delay"`
	Timeout  Duration `yaml:"timeout"`
	CacheDir string   `yaml:"cache_dir"`
	OutDir   string   `yaml:"out_dir"`
}

// Default returns a Config mirroring the stock crawl scope: Supercross and
// Motocross listing pages for every season from 1974 through the current
// upper bound, with SMX links included.
func Default() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
		Series: map[string]string{
			"sx": "Supercross",
			"mx": "Motocross",
		},
		FirstYear:  DefaultFirstYear,
		LastYear:   DefaultLastYear,
		IncludeSMX: true,
		Delay:      Duration(DefaultDelay),
		Timeout:    Duration(DefaultTimeout),
		CacheDir:   DefaultCacheDir,
		OutDir:     DefaultOutDir,
	}
}

// Load reads a YAML config file and overlays it on the defaults. Fields
// absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config describes a crawlable scope.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if len(c.Series) == 0 {
		return fmt.Errorf("at least one series slug is required")
	}
	if c.FirstYear > c.LastYear {
		return fmt.Errorf("first_year %d is after last_year %d", c.FirstYear, c.LastYear)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative")
	}
	return nil
}

// Years returns the inclusive season range as a slice.
func (c *Config) Years() []int {
	years := make([]int, 0, c.LastYear-c.FirstYear+1)
	for y := c.FirstYear; y <= c.LastYear; y++ {
		years = append(years, y)
	}
	return years
}
