package run

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUnknownVar(t *testing.T) {
	projectFile := writeProjectFile(t)
	root := newTestRoot(t, projectFile, "")

	_, err := executeCommand(t, root, "", "get", "NOT_A_VAR")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown env var NOT_A_VAR")
	assert.Contains(t, err.Error(), "PROJECT_ID")
}

func TestGetNormalizesName(t *testing.T) {
	projectFile := filepath.Join(t.TempDir(), "project_id.txt")
	root := newTestRoot(t, projectFile, "")

	// Lowercase input passes name validation and proceeds to resolution,
	// which fails on the missing project file rather than on the name.
	_, err := executeCommand(t, root, "", "get", "project_id", "--skip-auth-check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please run mkenv init first")
}

func TestGetMissingProjectFile(t *testing.T) {
	projectFile := filepath.Join(t.TempDir(), "project_id.txt")
	root := newTestRoot(t, projectFile, "")

	_, err := executeCommand(t, root, "", "get", "PROJECT_ID", "--skip-auth-check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please run mkenv init first")
}
