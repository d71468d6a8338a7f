package app

const (
	Name         = "mkenv"
	KeyManagedBy = "managed-by"
	KeyEncrypted = "encrypted"
	ValueTrue    = "true"

	// The GenAI SDKs read an uppercase boolean for the Vertex AI toggle.
	ValueVertexAITrue = "TRUE"
)

// Build info, set via ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
)

// Default local file conventions, resolved against the user home dir.
const (
	DefaultProjectFilename = "project_id.txt"
	DefaultMapsKeyFilename = "mapkey.txt"
)

const (
	DefaultSpannerInstanceID = "instavibe-graph-instance"
	DefaultSpannerDatabaseID = "graphdb"
	DefaultLocation          = "us-central1"
	DefaultMapsKeySecretID   = "google-maps-api-key"
)

// Exported environment variable names.
const (
	VarProjectID          = "PROJECT_ID"
	VarProjectNumber      = "PROJECT_NUMBER"
	VarServiceAccountName = "SERVICE_ACCOUNT_NAME"
	VarSpannerInstanceID  = "SPANNER_INSTANCE_ID"
	VarSpannerDatabaseID  = "SPANNER_DATABASE_ID"
	VarGoogleCloudProject = "GOOGLE_CLOUD_PROJECT"
	VarGenAIUseVertexAI   = "GOOGLE_GENAI_USE_VERTEXAI"
	VarLocation           = "GOOGLE_CLOUD_LOCATION"
	VarMapsAPIKey         = "GOOGLE_MAPS_API_KEY"
	VarMapsMapID          = "GOOGLE_MAPS_MAP_ID"
)

// VarNames lists every variable the env command can emit, in emission order.
// The order follows the shell setup flow this tool replaces, not the
// alphabet, so that eval'd output reads the same way the old script did.
var VarNames = []string{
	VarProjectID,
	VarProjectNumber,
	VarServiceAccountName,
	VarSpannerInstanceID,
	VarSpannerDatabaseID,
	VarGoogleCloudProject,
	VarGenAIUseVertexAI,
	VarLocation,
	VarMapsAPIKey,
	VarMapsMapID,
}
