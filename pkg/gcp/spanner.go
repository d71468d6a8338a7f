package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InstanceAdminClient is the subset of the Spanner instance admin client
// this package uses.
type InstanceAdminClient interface {
	GetInstance(ctx context.Context, req *instancepb.GetInstanceRequest, opts ...gax.CallOption) (*instancepb.Instance, error)
}

// DatabaseAdminClient is the subset of the Spanner database admin client
// this package uses.
type DatabaseAdminClient interface {
	GetDatabase(ctx context.Context, req *databasepb.GetDatabaseRequest, opts ...gax.CallOption) (*databasepb.Database, error)
}

// SpannerInstanceName forms the instance resource name.
func SpannerInstanceName(projectID, instanceID string) string {
	return fmt.Sprintf("projects/%s/instances/%s", projectID, instanceID)
}

// SpannerDatabaseName forms the database resource name.
func SpannerDatabaseName(projectID, instanceID, databaseID string) string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s", projectID, instanceID, databaseID)
}

// SpannerInstanceExists reports whether the Spanner instance is reachable.
func SpannerInstanceExists(ctx context.Context, client InstanceAdminClient, projectID, instanceID string) (bool, error) {
	_, err := client.GetInstance(ctx, &instancepb.GetInstanceRequest{
		Name: SpannerInstanceName(projectID, instanceID),
	})
	if err == nil {
		return true, nil
	}

	if status.Code(err) == codes.NotFound {
		return false, nil
	}

	return false, fmt.Errorf("failed to get spanner instance %s: %w", instanceID, err)
}

// SpannerDatabaseExists reports whether the database exists on the instance.
func SpannerDatabaseExists(ctx context.Context, client DatabaseAdminClient, projectID, instanceID, databaseID string) (bool, error) {
	_, err := client.GetDatabase(ctx, &databasepb.GetDatabaseRequest{
		Name: SpannerDatabaseName(projectID, instanceID, databaseID),
	})
	if err == nil {
		return true, nil
	}

	if status.Code(err) == codes.NotFound {
		return false, nil
	}

	return false, fmt.Errorf("failed to get spanner database %s: %w", databaseID, err)
}
