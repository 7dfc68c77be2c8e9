package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	snaghttp "github.com/snaghttp/snag/internal/http"
)

// Profile holds the client defaults and batch entries loaded from a
// YAML file.
type Profile struct {
	BaseURL     string                 `yaml:"base_url"`
	Timeout     string                 `yaml:"timeout,omitempty"`
	LogFile     string                 `yaml:"log_file,omitempty"`
	CookieJar   string                 `yaml:"cookie_jar,omitempty"`
	Headers     map[string]string      `yaml:"headers,omitempty"`
	Options     map[string]interface{} `yaml:"options,omitempty"`
	Concurrency int                    `yaml:"concurrency,omitempty"`
	Batch       []BatchEntry           `yaml:"batch,omitempty"`
}

// BatchEntry is one batch request in a profile: a target URL plus
// option overrides applied on top of the profile options.
type BatchEntry struct {
	URL     string                 `yaml:"url"`
	Options map[string]interface{} `yaml:"options,omitempty"`
}

// Load reads and parses a profile file, then validates it.
func Load(path string) (*Profile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("profile not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading profile: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("error parsing profile: %w", err)
	}

	if errs := Validate(&profile); len(errs) > 0 {
		return nil, fmt.Errorf("invalid profile: %s", errs[0].Error())
	}

	return &profile, nil
}

// TimeoutDuration parses the profile timeout, defaulting when unset.
func (p *Profile) TimeoutDuration() (time.Duration, error) {
	if p.Timeout == "" {
		return snaghttp.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", p.Timeout, err)
	}
	return d, nil
}

// ClientOptions converts the profile's string-keyed option map into the
// client's option vocabulary. Keys are passed through untouched; the
// client ignores ones it does not recognize.
func (p *Profile) ClientOptions() map[snaghttp.Option]interface{} {
	return toClientOptions(p.Options)
}

// BatchRequests converts the profile's batch entries into client batch
// requests.
func (p *Profile) BatchRequests() []snaghttp.BatchRequest {
	requests := make([]snaghttp.BatchRequest, len(p.Batch))
	for i, entry := range p.Batch {
		requests[i] = snaghttp.BatchRequest{
			URL:     entry.URL,
			Options: toClientOptions(entry.Options),
		}
	}
	return requests
}

func toClientOptions(raw map[string]interface{}) map[snaghttp.Option]interface{} {
	if len(raw) == 0 {
		return nil
	}
	opts := make(map[snaghttp.Option]interface{}, len(raw))
	for key, value := range raw {
		opts[snaghttp.Option(key)] = value
	}
	return opts
}
