package run

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/envfmt"
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/kubetrail/mkenv/pkg/gcp"
	"github.com/kubetrail/mkenv/pkg/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/api/compute/v1"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Env resolves the dev shell variables against Google Cloud and prints
// them in the requested output format. The default format produces
// shell export statements suitable for eval'ing in the caller's shell.
func Env(cmd *cobra.Command, args []string) error {
	persistentFlags := getPersistentFlags(cmd)

	_ = viper.BindPFlag(flags.File, cmd.Flag(flags.File))
	file := viper.GetString(flags.File)

	vars, err := resolveVars(cmd)
	if err != nil {
		return err
	}

	log := logger.New(persistentFlags.Verbose)

	outputFormat := strings.ToLower(persistentFlags.OutputFormat)

	switch outputFormat {
	case flags.OutputFormatNative,
		flags.OutputFormatEnv,
		flags.OutputFormatDotenv,
		flags.OutputFormatGithub:
		format, err := envfmt.ParseFormat(outputFormat)
		if err != nil {
			return err
		}

		out, err := envfmt.FormatVars(vars, format)
		if err != nil {
			return err
		}

		if len(file) > 0 {
			if err := envfmt.WriteToFile(file, out); err != nil {
				return fmt.Errorf("failed to write env vars to file: %w", err)
			}

			log.Info().Msgf("wrote %d env vars to %s", len(vars), file)
			return nil
		}

		if _, err := fmt.Fprint(cmd.OutOrStdout(), out); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	case flags.OutputFormatJson:
		values := make(map[string]string, len(vars))
		for _, v := range vars {
			values[v.Name] = v.Value
		}

		jb, err := json.Marshal(values)
		if err != nil {
			return fmt.Errorf("failed to serialize env vars to json: %w", err)
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(jb)); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	case flags.OutputFormatYaml:
		values := make(map[string]string, len(vars))
		for _, v := range vars {
			values[v.Name] = v.Value
		}

		jb, err := yaml.Marshal(values)
		if err != nil {
			return fmt.Errorf("failed to serialize env vars to yaml: %w", err)
		}

		if _, err := fmt.Fprint(cmd.OutOrStdout(), string(jb)); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	case flags.OutputFormatTable:
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Name", "Value"})
		table.SetBorder(false)
		table.SetColumnSeparator(" ")
		for _, v := range vars {
			table.Append([]string{v.Name, v.Value})
		}
		table.Render()
	default:
		return fmt.Errorf("output format %s is not supported for this command", persistentFlags.OutputFormat)
	}

	return nil
}

// resolveVars performs the Google Cloud lookups and assembles the env
// var list in a stable order. Optional vars such as the Maps API key
// are skipped when their inputs are absent.
func resolveVars(cmd *cobra.Command) ([]envfmt.Var, error) {
	ctx := cmd.Context()
	persistentFlags := getPersistentFlags(cmd)

	_ = viper.BindPFlag(flags.Location, cmd.Flag(flags.Location))
	_ = viper.BindEnv(flags.Location, "GOOGLE_CLOUD_LOCATION")
	_ = viper.BindPFlag(flags.SpannerInstanceID, cmd.Flag(flags.SpannerInstanceID))
	_ = viper.BindEnv(flags.SpannerInstanceID, "SPANNER_INSTANCE_ID")
	_ = viper.BindPFlag(flags.SpannerDatabaseID, cmd.Flag(flags.SpannerDatabaseID))
	_ = viper.BindEnv(flags.SpannerDatabaseID, "SPANNER_DATABASE_ID")
	_ = viper.BindPFlag(flags.MapsKeyFile, cmd.Flag(flags.MapsKeyFile))
	_ = viper.BindEnv(flags.MapsKeyFile, "MKENV_MAPS_KEY_FILE")
	_ = viper.BindPFlag(flags.MapsMapID, cmd.Flag(flags.MapsMapID))
	_ = viper.BindEnv(flags.MapsMapID, "GOOGLE_MAPS_MAP_ID")
	_ = viper.BindPFlag(flags.SkipAuthCheck, cmd.Flag(flags.SkipAuthCheck))

	location := viper.GetString(flags.Location)
	spannerInstanceID := viper.GetString(flags.SpannerInstanceID)
	spannerDatabaseID := viper.GetString(flags.SpannerDatabaseID)
	mapsKeyFile := viper.GetString(flags.MapsKeyFile)
	mapsMapID := viper.GetString(flags.MapsMapID)
	skipAuthCheck := viper.GetBool(flags.SkipAuthCheck)

	log := logger.New(persistentFlags.Verbose)

	if errs := validation.IsDNS1123Label(spannerInstanceID); len(errs) > 0 {
		return nil, fmt.Errorf("invalid spanner instance id %s: %s", spannerInstanceID, strings.Join(errs, ", "))
	}

	if errs := validation.IsDNS1123Label(spannerDatabaseID); len(errs) > 0 {
		return nil, fmt.Errorf("invalid spanner database id %s: %s", spannerDatabaseID, strings.Join(errs, ", "))
	}

	if err := setAppCredsEnvVar(persistentFlags.ApplicationCredentials); err != nil {
		return nil, err
	}

	if !skipAuthCheck {
		adcProject, err := gcp.CheckAuth(ctx)
		if err != nil {
			return nil, fmt.Errorf("not authenticated to Google Cloud, please run gcloud auth application-default login: %w", err)
		}

		log.Debug().Str("adcProject", adcProject).Msg("application default credentials are valid")
	}

	projectID, source, err := getProjectID(ctx, persistentFlags)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("source", source).Msgf("resolved project id %s", projectID)

	projectsClient, err := resourcemanager.NewProjectsClient(ctx, gcp.ClientOptions(persistentFlags.ApplicationCredentials)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create projects client: %w", err)
	}
	defer func(projectsClient *resourcemanager.ProjectsClient) {
		_ = projectsClient.Close()
	}(projectsClient)

	projectNumber, err := gcp.ProjectNumber(ctx, projectsClient, projectID)
	if err != nil {
		return nil, err
	}

	computeService, err := compute.NewService(ctx, gcp.ClientOptions(persistentFlags.ApplicationCredentials)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute service client: %w", err)
	}

	serviceAccount, err := gcp.DefaultServiceAccount(ctx, computeService, projectID)
	if err != nil {
		return nil, err
	}

	values := map[string]string{
		app.VarProjectID:          projectID,
		app.VarProjectNumber:      projectNumber,
		app.VarServiceAccountName: serviceAccount,
		app.VarSpannerInstanceID:  spannerInstanceID,
		app.VarSpannerDatabaseID:  spannerDatabaseID,
		app.VarGoogleCloudProject: projectID,
		app.VarGenAIUseVertexAI:   app.ValueVertexAITrue,
		app.VarLocation:           location,
	}

	mapsKey, err := readMapsKeyFile(mapsKeyFile)
	if err != nil {
		return nil, err
	}
	if len(mapsKey) > 0 {
		values[app.VarMapsAPIKey] = mapsKey
	} else {
		log.Debug().Msgf("maps key file %s not found, skipping %s", mapsKeyFile, app.VarMapsAPIKey)
	}

	if len(mapsMapID) > 0 {
		values[app.VarMapsMapID] = mapsMapID
	}

	vars := make([]envfmt.Var, 0, len(values))
	for _, name := range app.VarNames {
		value, ok := values[name]
		if !ok {
			continue
		}

		vars = append(vars, envfmt.Var{Name: name, Value: value})

		if name == app.VarMapsAPIKey {
			log.Info().Msgf("%s is set", name)
			continue
		}
		log.Info().Msgf("%s set to: %s", name, value)
	}

	return vars, nil
}

// readMapsKeyFile reads the Maps API key from its file. A missing file
// is not an error, it just means the key is not exported.
func readMapsKeyFile(filename string) (string, error) {
	if len(filename) == 0 {
		return "", nil
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read maps key file %s: %w", filename, err)
	}

	return strings.TrimSpace(string(b)), nil
}
