package envfmt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToFileCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.sh")

	require.NoError(t, WriteToFile(path, "export A=1\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export A=1\n", string(data))
}

func TestWriteToFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.sh")

	require.NoError(t, WriteToFile(path, "export A=1\n"))
	require.NoError(t, WriteToFile(path, "export B=2\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export A=1\nexport B=2\n", string(data))
}

func TestWriteToFileBadPath(t *testing.T) {
	err := WriteToFile(filepath.Join(t.TempDir(), "missing", "env.sh"), "x")
	assert.Error(t, err)
}
