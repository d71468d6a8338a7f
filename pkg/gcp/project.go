package gcp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Project ID sources, in resolution order.
const (
	ProjectSourceFlag     = "flag"
	ProjectSourceFile     = "file"
	ProjectSourceMetadata = "metadata server"
)

// projectIDRegexp is Google's project ID rule: 6 to 30 lowercase letters,
// digits and hyphens, starting with a letter and not ending with a hyphen.
var projectIDRegexp = regexp.MustCompile(`^[a-z][a-z0-9-]{4,28}[a-z0-9]$`)

// ProjectsClient is the subset of the Resource Manager projects client
// this package uses. The real *resourcemanager.ProjectsClient satisfies it.
type ProjectsClient interface {
	GetProject(ctx context.Context, req *resourcemanagerpb.GetProjectRequest, opts ...gax.CallOption) (*resourcemanagerpb.Project, error)
}

// ValidateProjectID checks a candidate against Google's project ID rule.
func ValidateProjectID(projectID string) error {
	if !projectIDRegexp.MatchString(projectID) {
		return fmt.Errorf("invalid project id %q: need 6-30 lowercase letters, digits or hyphens, starting with a letter", projectID)
	}

	return nil
}

// ReadProjectFile reads the stored project ID, trimming surrounding space.
func ReadProjectFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read project id file: %w", err)
	}

	projectID := strings.TrimSpace(string(data))
	if projectID == "" {
		return "", fmt.Errorf("project id file %s is empty", path)
	}

	return projectID, nil
}

// ResolveProjectID returns the project ID and the source it came from.
// Precedence: an explicit flag or env value, then the project ID file, then
// the metadata server when running on GCE. A missing file surfaces as an
// fs.ErrNotExist so callers can point the user at init.
func ResolveProjectID(ctx context.Context, explicit, file string) (string, string, error) {
	if explicit != "" {
		if err := ValidateProjectID(explicit); err != nil {
			return "", "", err
		}
		return explicit, ProjectSourceFlag, nil
	}

	projectID, err := ReadProjectFile(file)
	if err == nil {
		if err := ValidateProjectID(projectID); err != nil {
			return "", "", fmt.Errorf("project id file %s: %w", file, err)
		}
		return projectID, ProjectSourceFile, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", "", err
	}

	projectID, metaErr := MetadataProjectID(ctx)
	if metaErr == nil && projectID != "" {
		if err := ValidateProjectID(projectID); err != nil {
			return "", "", err
		}
		return projectID, ProjectSourceMetadata, nil
	}

	// Not on GCE and no file: report the missing file.
	return "", "", err
}

// ProjectNumber looks up the numeric identifier assigned to a project.
func ProjectNumber(ctx context.Context, client ProjectsClient, projectID string) (string, error) {
	project, err := client.GetProject(ctx, &resourcemanagerpb.GetProjectRequest{
		Name: "projects/" + projectID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get project %s: %w", projectID, err)
	}

	// The resource name carries the number: projects/123456789.
	parts := strings.Split(project.GetName(), "/")
	if len(parts) != 2 || parts[1] == "" {
		return "", fmt.Errorf("unexpected project resource name %q", project.GetName())
	}

	return parts[1], nil
}

// ProjectExists reports whether a project is visible to the caller.
// NotFound means no; so does PermissionDenied when the API hints the project
// may not exist, since Resource Manager hides unknown projects that way.
func ProjectExists(ctx context.Context, client ProjectsClient, projectID string) (bool, error) {
	_, err := client.GetProject(ctx, &resourcemanagerpb.GetProjectRequest{
		Name: "projects/" + projectID,
	})
	if err == nil {
		return true, nil
	}

	switch status.Code(err) {
	case codes.NotFound:
		return false, nil
	case codes.PermissionDenied:
		if strings.Contains(err.Error(), "or it may not exist") {
			return false, nil
		}
	}

	return false, fmt.Errorf("failed to get project %s: %w", projectID, err)
}
