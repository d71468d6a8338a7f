package flags

const (
	GoogleProjectID              = "google-project-id"              // Google project ID
	GoogleApplicationCredentials = "google-application-credentials" // Google service account credentials file
	OutputFormat                 = "output-format"                  // native, env, dotenv, github, json, yaml or table
	ProjectFile                  = "project-file"                   // file holding the chosen project ID
	Verbose                      = "verbose"                        // debug logging on stderr
)

const (
	Location          = "location"
	SpannerInstanceID = "spanner-instance-id"
	SpannerDatabaseID = "spanner-database-id"
	MapsKeyFile       = "maps-key-file"
	MapsMapID         = "maps-map-id"
	SkipAuthCheck     = "skip-auth-check"
	File              = "file"
	Verify            = "verify"
)

const (
	Name       = "name"
	Version    = "version"
	Force      = "force"
	Encrypt    = "encrypt"
	Passphrase = "passphrase"
	NoPrompt   = "no-prompt"
	Local      = "local"
)

const (
	OutputFormatNative = "native"
	OutputFormatEnv    = "env"
	OutputFormatDotenv = "dotenv"
	OutputFormatGithub = "github"
	OutputFormatJson   = "json"
	OutputFormatYaml   = "yaml"
	OutputFormatTable  = "table"
)
