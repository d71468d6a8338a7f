package run

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapsKeySetWithArg(t *testing.T) {
	mapsKeyFile := filepath.Join(t.TempDir(), "mapkey.txt")
	root := newTestRoot(t, "", mapsKeyFile)

	out, err := executeCommand(t, root, "", "maps-key", "set", "AIzaFakeKey123")
	require.NoError(t, err)
	assert.Contains(t, out, "maps api key saved to")

	b, err := os.ReadFile(mapsKeyFile)
	require.NoError(t, err)
	assert.Equal(t, "AIzaFakeKey123\n", string(b))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(mapsKeyFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestMapsKeySetFromStdin(t *testing.T) {
	mapsKeyFile := filepath.Join(t.TempDir(), "mapkey.txt")
	root := newTestRoot(t, "", mapsKeyFile)

	_, err := executeCommand(t, root, "AIzaFakeKey123\n", "maps-key", "set")
	require.NoError(t, err)

	b, err := os.ReadFile(mapsKeyFile)
	require.NoError(t, err)
	assert.Equal(t, "AIzaFakeKey123\n", string(b))
}

func TestMapsKeySetRejectsWhitespace(t *testing.T) {
	mapsKeyFile := filepath.Join(t.TempDir(), "mapkey.txt")
	root := newTestRoot(t, "", mapsKeyFile)

	_, err := executeCommand(t, root, "", "maps-key", "set", "AIza Fake")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not contain whitespace")
}

func TestMapsKeySetEmptyInput(t *testing.T) {
	mapsKeyFile := filepath.Join(t.TempDir(), "mapkey.txt")
	root := newTestRoot(t, "", mapsKeyFile)

	_, err := executeCommand(t, root, "\n", "maps-key", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please provide a maps api key")
}

func TestMapsKeyShow(t *testing.T) {
	mapsKeyFile := filepath.Join(t.TempDir(), "mapkey.txt")
	require.NoError(t, os.WriteFile(mapsKeyFile, []byte("AIzaFakeKey123\n"), 0600))

	root := newTestRoot(t, "", mapsKeyFile)

	out, err := executeCommand(t, root, "", "maps-key", "show")
	require.NoError(t, err)
	assert.Equal(t, "AIzaFakeKey123\n", out)
}

func TestMapsKeyShowJson(t *testing.T) {
	mapsKeyFile := filepath.Join(t.TempDir(), "mapkey.txt")
	require.NoError(t, os.WriteFile(mapsKeyFile, []byte("AIzaFakeKey123\n"), 0600))

	root := newTestRoot(t, "", mapsKeyFile)

	out, err := executeCommand(t, root, "", "maps-key", "show", "--output-format", "json")
	require.NoError(t, err)

	var output struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	assert.Equal(t, app.VarMapsAPIKey, output.Name)
	assert.Equal(t, "AIzaFakeKey123", output.Value)
}

func TestMapsKeyShowMissingFile(t *testing.T) {
	mapsKeyFile := filepath.Join(t.TempDir(), "mapkey.txt")
	root := newTestRoot(t, "", mapsKeyFile)

	_, err := executeCommand(t, root, "", "maps-key", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no maps api key at")
}

func TestMapsKeyPushInvalidName(t *testing.T) {
	root := newTestRoot(t, writeProjectFile(t), "")

	_, err := executeCommand(t, root, "", "maps-key", "push", "AIzaFakeKey123", "--name", "Bad_Name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid name")
}

func TestMapsKeyPushEmptyKey(t *testing.T) {
	mapsKeyFile := filepath.Join(t.TempDir(), "mapkey.txt")
	root := newTestRoot(t, writeProjectFile(t), mapsKeyFile)

	_, err := executeCommand(t, root, "", "maps-key", "push")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please provide a maps api key")
}

func TestMapsKeyPushMissingProjectFile(t *testing.T) {
	projectFile := filepath.Join(t.TempDir(), "project_id.txt")
	root := newTestRoot(t, projectFile, "")

	_, err := executeCommand(t, root, "", "maps-key", "push", "AIzaFakeKey123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please run mkenv init first")
}

func TestMapsKeyPushWithoutCredentials(t *testing.T) {
	root := newTestRoot(t, writeProjectFile(t), "")

	_, err := executeCommand(t, root, "", "maps-key", "push", "AIzaFakeKey123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create secret manager client")
}

func TestMapsKeyPullWithoutCredentials(t *testing.T) {
	mapsKeyFile := filepath.Join(t.TempDir(), "mapkey.txt")
	root := newTestRoot(t, writeProjectFile(t), mapsKeyFile)

	_, err := executeCommand(t, root, "", "maps-key", "pull")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create secret manager client")
}

func TestMapsKeyListWithoutCredentials(t *testing.T) {
	root := newTestRoot(t, writeProjectFile(t), "")

	_, err := executeCommand(t, root, "", "maps-key", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create secret manager client")
}

func TestMapsKeyDeleteConfirmationMismatch(t *testing.T) {
	root := newTestRoot(t, writeProjectFile(t), "")

	_, err := executeCommand(t, root, "other-name\n", "maps-key", "delete")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input does not match secret name")
}

func TestMapsKeyDeleteForceWithoutCredentials(t *testing.T) {
	root := newTestRoot(t, writeProjectFile(t), "")

	_, err := executeCommand(t, root, "", "maps-key", "delete", "--force")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create secret manager client")
}
