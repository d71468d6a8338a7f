package gcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	compute "google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
)

func newComputeService(t *testing.T, handler http.HandlerFunc) *compute.Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := compute.NewService(context.Background(),
		option.WithEndpoint(srv.URL),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	return svc
}

func TestDefaultServiceAccount(t *testing.T) {
	svc := newComputeService(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(&compute.Project{
			Name:                  "my-project",
			DefaultServiceAccount: "123456789012-compute@developer.gserviceaccount.com",
		})
	})

	account, err := DefaultServiceAccount(context.Background(), svc, "my-project")
	require.NoError(t, err)
	assert.Equal(t, "123456789012-compute@developer.gserviceaccount.com", account)
}

func TestDefaultServiceAccountMissing(t *testing.T) {
	svc := newComputeService(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(&compute.Project{Name: "my-project"})
	})

	_, err := DefaultServiceAccount(context.Background(), svc, "my-project")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no default service account")
}

func TestDefaultServiceAccountLookupError(t *testing.T) {
	svc := newComputeService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 403, "message": "Compute Engine API has not been used"}}`, http.StatusForbidden)
	})

	_, err := DefaultServiceAccount(context.Background(), svc, "my-project")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get project info")
}
