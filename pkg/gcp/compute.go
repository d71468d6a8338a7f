package gcp

import (
	"context"
	"fmt"

	compute "google.golang.org/api/compute/v1"
)

// DefaultServiceAccount returns the email of the project's default compute
// service account, the account the old shell flow read from
// `gcloud compute project-info describe`.
func DefaultServiceAccount(ctx context.Context, svc *compute.Service, projectID string) (string, error) {
	project, err := svc.Projects.Get(projectID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get project info for %s: %w", projectID, err)
	}

	if project.DefaultServiceAccount == "" {
		return "", fmt.Errorf("project %s has no default service account", projectID)
	}

	return project.DefaultServiceAccount, nil
}
