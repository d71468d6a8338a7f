package gcp

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// CheckAuth verifies that Application Default Credentials are present and
// can mint an access token. It returns the project ID the credentials carry,
// which may be empty for user credentials.
func CheckAuth(ctx context.Context) (string, error) {
	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return "", fmt.Errorf("failed to find application default credentials: %w", err)
	}

	if _, err := creds.TokenSource.Token(); err != nil {
		return "", fmt.Errorf("failed to obtain access token: %w", err)
	}

	return creds.ProjectID, nil
}
