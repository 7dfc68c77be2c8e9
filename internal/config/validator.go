package config

import (
	"fmt"
	"net/url"
	"time"
)

// ValidationError represents a profile validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks a profile for structural problems. Option keys are
// deliberately not validated; unknown keys are ignored downstream.
func Validate(profile *Profile) []ValidationError {
	var errors []ValidationError

	if profile.BaseURL == "" && len(profile.Batch) == 0 {
		errors = append(errors, ValidationError{
			Path:    "base_url",
			Message: "base_url is required when no batch entries are given",
		})
	}

	if profile.BaseURL != "" {
		if err := checkURL(profile.BaseURL); err != nil {
			errors = append(errors, ValidationError{
				Path:    "base_url",
				Message: err.Error(),
			})
		}
	}

	if profile.Timeout != "" {
		if _, err := time.ParseDuration(profile.Timeout); err != nil {
			errors = append(errors, ValidationError{
				Path:    "timeout",
				Message: fmt.Sprintf("invalid duration: %s", profile.Timeout),
			})
		}
	}

	if profile.Concurrency < 0 {
		errors = append(errors, ValidationError{
			Path:    "concurrency",
			Message: "concurrency cannot be negative",
		})
	}

	for i, entry := range profile.Batch {
		if entry.URL == "" {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("batch[%d].url", i),
				Message: "url is required",
			})
			continue
		}
		if err := checkURL(entry.URL); err != nil {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("batch[%d].url", i),
				Message: err.Error(),
			})
		}
	}

	return errors
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL must have a host")
	}
	return nil
}
