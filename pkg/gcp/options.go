package gcp

import (
	"strings"

	"google.golang.org/api/option"
)

// ClientOptions builds Google Cloud client options from the credentials
// flag value, which may hold service account JSON content (starts with "{"),
// a path to a service account JSON file, or nothing at all. With no explicit
// credentials the client libraries fall back to Application Default
// Credentials: GOOGLE_APPLICATION_CREDENTIALS, gcloud user credentials, the
// metadata service on GCE, or Workload Identity.
func ClientOptions(credentials string) []option.ClientOption {
	var opts []option.ClientOption

	if credentials == "" {
		return opts
	}

	if strings.HasPrefix(strings.TrimSpace(credentials), "{") {
		return append(opts, option.WithCredentialsJSON([]byte(credentials)))
	}

	return append(opts, option.WithCredentialsFile(credentials))
}
