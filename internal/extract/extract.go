// Package extract pulls fields out of JSON response bodies using gjson
// path expressions (e.g. "users.0.name").
package extract

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Field returns the value at the given path within a JSON document.
func Field(body, path string) (string, error) {
	if body == "" {
		return "", fmt.Errorf("empty JSON body")
	}
	if path == "" {
		return "", fmt.Errorf("empty path expression")
	}

	result := gjson.Get(body, path)
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}

	if result.Type == gjson.Null {
		return "null", nil
	}

	return result.String(), nil
}

// Fields extracts several named paths at once. All paths are attempted;
// the error aggregates every miss.
func Fields(body string, paths map[string]string) (map[string]string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no path expressions provided")
	}

	values := make(map[string]string, len(paths))
	var missing []string

	for name, path := range paths {
		value, err := Field(body, path)
		if err != nil {
			missing = append(missing, path)
			continue
		}
		values[name] = value
	}

	if len(missing) > 0 {
		return values, fmt.Errorf("paths not found: %v", missing)
	}

	return values, nil
}
