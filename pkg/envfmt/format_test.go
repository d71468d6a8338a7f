package envfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVar(t *testing.T) {
	tests := []struct {
		name     string
		v        Var
		format   Format
		expected string
	}{
		{
			name:     "native simple value",
			v:        Var{Name: "PROJECT_ID", Value: "my-project"},
			format:   FormatNative,
			expected: "export PROJECT_ID=my-project\n",
		},
		{
			name:     "native value with space",
			v:        Var{Name: "MSG", Value: "hello world"},
			format:   FormatNative,
			expected: "export MSG='hello world'\n",
		},
		{
			name:     "native value with single quote",
			v:        Var{Name: "MSG", Value: "it's fine"},
			format:   FormatNative,
			expected: `export MSG='it'"'"'s fine'` + "\n",
		},
		{
			name:     "native empty value",
			v:        Var{Name: "EMPTY", Value: ""},
			format:   FormatNative,
			expected: "export EMPTY=''\n",
		},
		{
			name:     "env no quoting",
			v:        Var{Name: "MSG", Value: "hello world"},
			format:   FormatEnv,
			expected: "MSG=hello world\n",
		},
		{
			name:     "dotenv quoted",
			v:        Var{Name: "MSG", Value: "hello world"},
			format:   FormatDotenv,
			expected: "MSG='hello world'\n",
		},
		{
			name:     "github single line",
			v:        Var{Name: "PROJECT_ID", Value: "my-project"},
			format:   FormatGithub,
			expected: "PROJECT_ID=my-project\n",
		},
		{
			name:     "github multiline heredoc",
			v:        Var{Name: "CONFIG", Value: "line1\nline2"},
			format:   FormatGithub,
			expected: "CONFIG<<MKENV_EOF_CONFIG\nline1\nline2\nMKENV_EOF_CONFIG\n",
		},
		{
			name:     "github multiline with trailing newline",
			v:        Var{Name: "CONFIG", Value: "line1\nline2\n"},
			format:   FormatGithub,
			expected: "CONFIG<<MKENV_EOF_CONFIG\nline1\nline2\nMKENV_EOF_CONFIG\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FormatVar(tt.v, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFormatVarUnsupported(t *testing.T) {
	_, err := FormatVar(Var{Name: "A", Value: "b"}, Format("xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported env format")
}

func TestFormatVarsPreservesOrder(t *testing.T) {
	vars := []Var{
		{Name: "ZEBRA", Value: "1"},
		{Name: "ALPHA", Value: "2"},
		{Name: "MIKE", Value: "3"},
	}

	out, err := FormatVars(vars, FormatEnv)
	require.NoError(t, err)
	assert.Equal(t, "ZEBRA=1\nALPHA=2\nMIKE=3\n", out)
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"native", "env", "dotenv", "github"} {
		format, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), format)
	}

	_, err := ParseFormat("table")
	assert.Error(t, err)
}

func TestUnset(t *testing.T) {
	out := Unset([]string{"PROJECT_ID", "PROJECT_NUMBER"})
	assert.Equal(t, "unset PROJECT_ID\nunset PROJECT_NUMBER\n", out)
}
