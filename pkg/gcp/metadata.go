package gcp

import (
	"context"

	"cloud.google.com/go/compute/metadata"
)

// MetadataProjectID returns the project ID from the metadata server when
// running on GCE, and an empty string otherwise.
func MetadataProjectID(ctx context.Context) (string, error) {
	if !metadata.OnGCE() {
		return "", nil
	}

	return metadata.ProjectIDWithContext(ctx)
}
