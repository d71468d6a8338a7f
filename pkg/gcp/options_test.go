package gcp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientOptions(t *testing.T) {
	tests := []struct {
		name        string
		credentials string
		expected    int
	}{
		{
			name:        "no credentials falls back to ADC",
			credentials: "",
			expected:    0,
		},
		{
			name:        "JSON credentials",
			credentials: `{"type": "service_account", "project_id": "test"}`,
			expected:    1,
		},
		{
			name:        "JSON with surrounding whitespace",
			credentials: `  {"type": "service_account"}  `,
			expected:    1,
		},
		{
			name:        "file path credentials",
			credentials: "/path/to/service-account.json",
			expected:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := ClientOptions(tt.credentials)
			assert.Len(t, opts, tt.expected)
		})
	}
}

func TestCheckAuthNoCredentials(t *testing.T) {
	// Point ADC at a file that does not exist so lookup fails regardless
	// of the host's gcloud state.
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", filepath.Join(t.TempDir(), "missing.json"))

	_, err := CheckAuth(context.Background())
	assert.Error(t, err)
}
