package run

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/kubetrail/mkenv/pkg/gcp"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/api/compute/v1"
	"gopkg.in/yaml.v3"
)

type checkResult struct {
	Check  string `json:"check" yaml:"check"`
	Status string `json:"status" yaml:"status"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

const (
	checkStatusOk   = "OK"
	checkStatusFail = "FAIL"
	checkStatusSkip = "SKIP"
)

// Check probes every input the env command depends on and renders a
// report. Unlike env it does not stop at the first failure, it runs all
// probes and returns an error at the end if any required one failed.
func Check(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	persistentFlags := getPersistentFlags(cmd)

	_ = viper.BindPFlag(flags.SpannerInstanceID, cmd.Flag(flags.SpannerInstanceID))
	_ = viper.BindEnv(flags.SpannerInstanceID, "SPANNER_INSTANCE_ID")
	_ = viper.BindPFlag(flags.SpannerDatabaseID, cmd.Flag(flags.SpannerDatabaseID))
	_ = viper.BindEnv(flags.SpannerDatabaseID, "SPANNER_DATABASE_ID")
	_ = viper.BindPFlag(flags.MapsKeyFile, cmd.Flag(flags.MapsKeyFile))
	_ = viper.BindEnv(flags.MapsKeyFile, "MKENV_MAPS_KEY_FILE")

	spannerInstanceID := viper.GetString(flags.SpannerInstanceID)
	spannerDatabaseID := viper.GetString(flags.SpannerDatabaseID)
	mapsKeyFile := viper.GetString(flags.MapsKeyFile)

	if err := setAppCredsEnvVar(persistentFlags.ApplicationCredentials); err != nil {
		return err
	}

	results := make([]checkResult, 0, 8)
	failed := 0

	appendResult := func(check, status, detail string) {
		results = append(results, checkResult{Check: check, Status: status, Detail: detail})
		if status == checkStatusFail {
			failed++
		}
	}

	authOk := false
	if adcProject, err := gcp.CheckAuth(ctx); err != nil {
		appendResult("authentication", checkStatusFail, err.Error())
	} else {
		authOk = true
		detail := "application default credentials found"
		if len(adcProject) > 0 {
			detail = fmt.Sprintf("%s, quota project %s", detail, adcProject)
		}
		appendResult("authentication", checkStatusOk, detail)
	}

	projectID, source, err := getProjectID(ctx, persistentFlags)
	projectOk := err == nil
	if projectOk {
		appendResult("project id", checkStatusOk, fmt.Sprintf("%s, from %s", projectID, source))
	} else {
		appendResult("project id", checkStatusFail, err.Error())
	}

	clientOptions := gcp.ClientOptions(persistentFlags.ApplicationCredentials)

	if authOk && projectOk {
		if projectsClient, err := resourcemanager.NewProjectsClient(ctx, clientOptions...); err != nil {
			appendResult("project", checkStatusFail, fmt.Sprintf("failed to create projects client: %s", err))
		} else {
			if projectNumber, err := gcp.ProjectNumber(ctx, projectsClient, projectID); err != nil {
				appendResult("project", checkStatusFail, err.Error())
			} else {
				appendResult("project", checkStatusOk, fmt.Sprintf("project number %s", projectNumber))
			}
			_ = projectsClient.Close()
		}

		if computeService, err := compute.NewService(ctx, clientOptions...); err != nil {
			appendResult("service account", checkStatusFail, fmt.Sprintf("failed to create compute service client: %s", err))
		} else {
			if serviceAccount, err := gcp.DefaultServiceAccount(ctx, computeService, projectID); err != nil {
				appendResult("service account", checkStatusFail, err.Error())
			} else {
				appendResult("service account", checkStatusOk, serviceAccount)
			}
		}
	} else {
		appendResult("project", checkStatusSkip, "needs authentication and a project id")
		appendResult("service account", checkStatusSkip, "needs authentication and a project id")
	}

	instanceOk := false
	if authOk && projectOk {
		if instanceAdminClient, err := instance.NewInstanceAdminClient(ctx, clientOptions...); err != nil {
			appendResult("spanner instance", checkStatusFail, fmt.Sprintf("failed to create instance admin client: %s", err))
		} else {
			if exists, err := gcp.SpannerInstanceExists(ctx, instanceAdminClient, projectID, spannerInstanceID); err != nil {
				appendResult("spanner instance", checkStatusFail, err.Error())
			} else if !exists {
				appendResult("spanner instance", checkStatusFail, fmt.Sprintf("instance %s not found", spannerInstanceID))
			} else {
				instanceOk = true
				appendResult("spanner instance", checkStatusOk, spannerInstanceID)
			}
			_ = instanceAdminClient.Close()
		}
	} else {
		appendResult("spanner instance", checkStatusSkip, "needs authentication and a project id")
	}

	if instanceOk {
		if databaseAdminClient, err := database.NewDatabaseAdminClient(ctx, clientOptions...); err != nil {
			appendResult("spanner database", checkStatusFail, fmt.Sprintf("failed to create database admin client: %s", err))
		} else {
			if exists, err := gcp.SpannerDatabaseExists(ctx, databaseAdminClient, projectID, spannerInstanceID, spannerDatabaseID); err != nil {
				appendResult("spanner database", checkStatusFail, err.Error())
			} else if !exists {
				appendResult("spanner database", checkStatusFail, fmt.Sprintf("database %s not found", spannerDatabaseID))
			} else {
				appendResult("spanner database", checkStatusOk, spannerDatabaseID)
			}
			_ = databaseAdminClient.Close()
		}
	} else {
		appendResult("spanner database", checkStatusSkip, "needs the spanner instance")
	}

	// The maps key is optional, its absence is not a failure.
	if _, err := os.Stat(mapsKeyFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			appendResult("maps api key", checkStatusSkip, fmt.Sprintf("optional, no maps key file at %s", mapsKeyFile))
		} else {
			appendResult("maps api key", checkStatusFail, fmt.Sprintf("failed to stat maps key file: %s", err))
		}
	} else {
		appendResult("maps api key", checkStatusOk, fmt.Sprintf("maps key file %s", mapsKeyFile))
	}

	switch strings.ToLower(persistentFlags.OutputFormat) {
	case flags.OutputFormatJson:
		jb, err := json.Marshal(results)
		if err != nil {
			return fmt.Errorf("failed to serialize output to json: %w", err)
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(jb)); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	case flags.OutputFormatYaml:
		jb, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("failed to serialize output to yaml: %w", err)
		}

		if _, err := fmt.Fprint(cmd.OutOrStdout(), string(jb)); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	case flags.OutputFormatTable:
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Status", "Check", "Detail"})
		table.SetBorder(false)
		table.SetColumnSeparator(" ")
		for _, result := range results {
			table.Append([]string{result.Status, result.Check, result.Detail})
		}
		table.Render()
	default:
		for _, result := range results {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-4s %-16s %s\n", result.Status, result.Check, result.Detail); err != nil {
				return fmt.Errorf("failed to write to output: %w", err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}

	return nil
}
