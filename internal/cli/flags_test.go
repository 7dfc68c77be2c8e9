package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseHeaders(t *testing.T) {
	headers := parseHeaders([]string{
		"Accept: application/json",
		"X-Token:abc",
		"malformed",
	})

	assert.Equal(t, map[string]string{
		"Accept":  "application/json",
		"X-Token": "abc",
	}, headers)
}

func TestParseKeyValues(t *testing.T) {
	pairs := parseKeyValues([]string{
		"a=1",
		"b=x=y", // value may contain '='
		"broken",
	})

	assert.Equal(t, map[string]string{
		"a": "1",
		"b": "x=y",
	}, pairs)
}

func TestParseOptionValue(t *testing.T) {
	assert.Equal(t, true, parseOptionValue("true"))
	assert.Equal(t, false, parseOptionValue("false"))
	assert.Equal(t, 10, parseOptionValue("10"))
	assert.Equal(t, 5*time.Second, parseOptionValue("5s"))
	assert.Equal(t, "strict", parseOptionValue("strict"))
}
