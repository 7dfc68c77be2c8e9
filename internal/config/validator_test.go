package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidProfile(t *testing.T) {
	profile := &Profile{
		BaseURL: "https://api.example.com",
		Timeout: "30s",
		Batch: []BatchEntry{
			{URL: "https://api.example.com/x"},
		},
	}

	assert.Empty(t, Validate(profile))
}

func TestValidate_MissingBaseURL(t *testing.T) {
	errs := Validate(&Profile{})
	require.Len(t, errs, 1)
	assert.Equal(t, "base_url", errs[0].Path)
}

func TestValidate_BatchOnlyProfileNeedsNoBaseURL(t *testing.T) {
	profile := &Profile{
		Batch: []BatchEntry{{URL: "http://example.com"}},
	}
	assert.Empty(t, Validate(profile))
}

func TestValidate_BadScheme(t *testing.T) {
	errs := Validate(&Profile{BaseURL: "ftp://example.com"})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "unsupported scheme")
}

func TestValidate_BadTimeout(t *testing.T) {
	errs := Validate(&Profile{BaseURL: "http://example.com", Timeout: "soon"})
	require.Len(t, errs, 1)
	assert.Equal(t, "timeout", errs[0].Path)
}

func TestValidate_BatchEntryErrorsArePathQualified(t *testing.T) {
	profile := &Profile{
		BaseURL: "http://example.com",
		Batch: []BatchEntry{
			{URL: "http://example.com/ok"},
			{URL: ""},
			{URL: "not-a-url"},
		},
	}

	errs := Validate(profile)
	require.Len(t, errs, 2)
	assert.Equal(t, "batch[1].url", errs[0].Path)
	assert.Equal(t, "batch[2].url", errs[1].Path)
}

func TestValidate_NegativeConcurrency(t *testing.T) {
	errs := Validate(&Profile{BaseURL: "http://example.com", Concurrency: -1})
	require.Len(t, errs, 1)
	assert.Equal(t, "concurrency", errs[0].Path)
}
