package run

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/kubetrail/mkenv/pkg/gcp"
	"github.com/kubetrail/mkenv/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/apimachinery/pkg/util/validation"
)

// MapsKeyDelete removes the secret holding the Maps API key. The caller
// has to type the secret name back unless --force is given. With --local
// the local maps key file is removed as well.
func MapsKeyDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	persistentFlags := getPersistentFlags(cmd)

	_ = viper.BindPFlag(flags.Name, cmd.Flag(flags.Name))
	_ = viper.BindPFlag(flags.Force, cmd.Flag(flags.Force))
	_ = viper.BindPFlag(flags.Local, cmd.Flag(flags.Local))
	_ = viper.BindPFlag(flags.MapsKeyFile, cmd.Flag(flags.MapsKeyFile))
	_ = viper.BindEnv(flags.MapsKeyFile, "MKENV_MAPS_KEY_FILE")

	name := viper.GetString(flags.Name)
	force := viper.GetBool(flags.Force)
	local := viper.GetBool(flags.Local)
	mapsKeyFile := viper.GetString(flags.MapsKeyFile)

	log := logger.New(persistentFlags.Verbose)

	if err := setAppCredsEnvVar(persistentFlags.ApplicationCredentials); err != nil {
		return err
	}

	if len(name) == 0 {
		return fmt.Errorf("please input value for --name flag")
	}

	if errs := validation.IsDNS1123Label(name); len(errs) > 0 {
		return fmt.Errorf("invalid name, need DNS1123Label format: %v", errs)
	}

	if !force {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Type secret name to delete: "); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
		var input string
		if _, err := fmt.Fscanln(cmd.InOrStdin(), &input); err != nil {
			return fmt.Errorf("failed to read from input: %w", err)
		}

		if input != name {
			return fmt.Errorf("input does not match secret name")
		}
	}

	projectID, _, err := getProjectID(ctx, persistentFlags)
	if err != nil {
		return err
	}

	// Create the client.
	client, err := secretmanager.NewClient(ctx, gcp.ClientOptions(persistentFlags.ApplicationCredentials)...)
	if err != nil {
		return fmt.Errorf("failed to create secret manager client: %w", err)
	}
	defer client.Close()

	secret, err := client.GetSecret(
		ctx,
		&secretmanagerpb.GetSecretRequest{
			Name: fmt.Sprintf("projects/%s/secrets/%s", projectID, name),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to get secret: %w", err)
	}

	labels := secret.GetLabels()
	if value, ok := labels[app.KeyManagedBy]; !ok || value != app.Name {
		return fmt.Errorf("secret is not being managed by this app")
	}

	// Build the request.
	deleteRequest := &secretmanagerpb.DeleteSecretRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s", projectID, name),
	}

	// Call the API.
	if err := client.DeleteSecret(ctx, deleteRequest); err != nil {
		return fmt.Errorf("failed to delete secret: %w", err)
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted secret %s\n", name); err != nil {
		return fmt.Errorf("failed to write to output: %w", err)
	}

	if local {
		if err := os.Remove(mapsKeyFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to remove maps key file %s: %w", mapsKeyFile, err)
			}
			log.Debug().Msgf("no maps key file at %s", mapsKeyFile)
		} else {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "removed maps key file %s\n", mapsKeyFile); err != nil {
				return fmt.Errorf("failed to write to output: %w", err)
			}
		}
	}

	return nil
}
