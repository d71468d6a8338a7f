package run

import (
	"encoding/json"
	"testing"

	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionNative(t *testing.T) {
	root := newTestRoot(t, "", "")

	out, err := executeCommand(t, root, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "mkenv version dev, commit none\n", out)
}

func TestVersionJson(t *testing.T) {
	root := newTestRoot(t, "", "")

	out, err := executeCommand(t, root, "", "version", "--output-format", "json")
	require.NoError(t, err)

	var output struct {
		Name    string `json:"name"`
		Version string `json:"version"`
		Commit  string `json:"commit"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	assert.Equal(t, app.Name, output.Name)
	assert.Equal(t, app.Version, output.Version)
}
