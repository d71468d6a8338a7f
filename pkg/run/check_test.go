package run

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOfflineReportsEveryProbe(t *testing.T) {
	projectFile := filepath.Join(t.TempDir(), "project_id.txt")
	mapsKeyFile := filepath.Join(t.TempDir(), "mapkey.txt")
	root := newTestRoot(t, projectFile, mapsKeyFile)

	out, err := executeCommand(t, root, "", "check", "--output-format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 7 checks failed")

	var results []checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 7)

	statuses := make(map[string]string, len(results))
	for _, result := range results {
		statuses[result.Check] = result.Status
	}

	assert.Equal(t, checkStatusFail, statuses["authentication"])
	assert.Equal(t, checkStatusFail, statuses["project id"])
	assert.Equal(t, checkStatusSkip, statuses["project"])
	assert.Equal(t, checkStatusSkip, statuses["service account"])
	assert.Equal(t, checkStatusSkip, statuses["spanner instance"])
	assert.Equal(t, checkStatusSkip, statuses["spanner database"])
	assert.Equal(t, checkStatusSkip, statuses["maps api key"])
}

func TestCheckProjectFileOk(t *testing.T) {
	projectFile := writeProjectFile(t)
	mapsKeyFile := filepath.Join(t.TempDir(), "mapkey.txt")
	root := newTestRoot(t, projectFile, mapsKeyFile)

	out, err := executeCommand(t, root, "", "check", "--output-format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 7 checks failed")

	var results []checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))

	statuses := make(map[string]string, len(results))
	details := make(map[string]string, len(results))
	for _, result := range results {
		statuses[result.Check] = result.Status
		details[result.Check] = result.Detail
	}

	assert.Equal(t, checkStatusFail, statuses["authentication"])
	assert.Equal(t, checkStatusOk, statuses["project id"])
	assert.Contains(t, details["project id"], "my-project-123")
	assert.Contains(t, details["project id"], "file")
}

func TestCheckMapsKeyFilePresent(t *testing.T) {
	projectFile := filepath.Join(t.TempDir(), "project_id.txt")
	mapsKeyFile := filepath.Join(t.TempDir(), "mapkey.txt")
	require.NoError(t, os.WriteFile(mapsKeyFile, []byte("AIzaFakeKey123\n"), 0600))

	root := newTestRoot(t, projectFile, mapsKeyFile)

	out, err := executeCommand(t, root, "", "check", "--output-format", "json")
	require.Error(t, err)

	var results []checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))

	var mapsStatus string
	for _, result := range results {
		if result.Check == "maps api key" {
			mapsStatus = result.Status
		}
	}
	assert.Equal(t, checkStatusOk, mapsStatus)
}

func TestCheckTableOutput(t *testing.T) {
	projectFile := filepath.Join(t.TempDir(), "project_id.txt")
	root := newTestRoot(t, projectFile, "")

	out, err := executeCommand(t, root, "", "check", "--output-format", "table")
	require.Error(t, err)

	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "authentication")
	assert.Contains(t, out, "spanner instance")
}

func TestCheckNativeOutput(t *testing.T) {
	projectFile := filepath.Join(t.TempDir(), "project_id.txt")
	root := newTestRoot(t, projectFile, "")

	out, err := executeCommand(t, root, "", "check")
	require.Error(t, err)

	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "SKIP")
	assert.Contains(t, out, "maps api key")
}
