package run

import (
	"fmt"
	"os"

	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/kubetrail/mkenv/pkg/gcp"
	"github.com/kubetrail/mkenv/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Init records the Google Cloud project id in the project id file.
// The id is taken from the arg when given, otherwise read from stdin.
func Init(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	persistentFlags := getPersistentFlags(cmd)

	_ = viper.BindPFlag(flags.Verify, cmd.Flag(flags.Verify))
	verify := viper.GetBool(flags.Verify)

	log := logger.New(persistentFlags.Verbose)

	var projectID string
	var err error

	if len(args) > 0 {
		projectID = args[0]
	} else {
		if promptStatus() {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Please provide your Google Cloud project id: "); err != nil {
				return fmt.Errorf("failed to write to output: %w", err)
			}
		}

		projectID, err = readLine(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	if len(projectID) == 0 {
		return fmt.Errorf("please provide a project id")
	}

	if err := gcp.ValidateProjectID(projectID); err != nil {
		return err
	}

	if verify {
		if err := setAppCredsEnvVar(persistentFlags.ApplicationCredentials); err != nil {
			return err
		}

		projectsClient, err := resourcemanager.NewProjectsClient(ctx, gcp.ClientOptions(persistentFlags.ApplicationCredentials)...)
		if err != nil {
			return fmt.Errorf("failed to create projects client: %w", err)
		}
		defer func(projectsClient *resourcemanager.ProjectsClient) {
			_ = projectsClient.Close()
		}(projectsClient)

		exists, err := gcp.ProjectExists(ctx, projectsClient, projectID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("project %s does not exist or you do not have access to it", projectID)
		}

		log.Debug().Msgf("verified project %s is accessible", projectID)
	}

	if err := os.WriteFile(persistentFlags.ProjectFile, []byte(projectID+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write project id file %s: %w", persistentFlags.ProjectFile, err)
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "project id %s saved to %s\n", projectID, persistentFlags.ProjectFile); err != nil {
		return fmt.Errorf("failed to write to output: %w", err)
	}

	return nil
}
