package run

import (
	"strings"
	"testing"

	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/envfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnset(t *testing.T) {
	root := newTestRoot(t, "", "")

	out, err := executeCommand(t, root, "", "unset")
	require.NoError(t, err)

	assert.Equal(t, envfmt.Unset(app.VarNames), out)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, len(app.VarNames))
	assert.Contains(t, lines, "unset PROJECT_ID")
	assert.Contains(t, lines, "unset GOOGLE_MAPS_API_KEY")
}
