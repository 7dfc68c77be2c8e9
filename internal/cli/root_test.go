package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandHasAllVerbs(t *testing.T) {
	var names []string
	for _, cmd := range RootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, verb := range []string{"get", "post", "put", "delete", "patch", "head", "options", "batch"} {
		assert.Contains(t, names, verb)
	}
}

func TestVerbCommandsRequireURL(t *testing.T) {
	for _, cmd := range []string{"get", "post", "delete"} {
		c, _, err := RootCmd.Find([]string{cmd})
		assert.NoError(t, err)
		assert.Error(t, c.Args(c, []string{}), "%s should require a URL argument", cmd)
	}
}
