package run

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"
	"syscall"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/crypto"
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/kubetrail/mkenv/pkg/gcp"
	"github.com/mr-tron/base58"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/validation"
)

// MapsKeyPull fetches the Maps API key from secret manager and writes it
// to the local maps key file, where the env command picks it up. Payloads
// pushed with --encrypt are decrypted with the passphrase first.
func MapsKeyPull(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	persistentFlags := getPersistentFlags(cmd)

	_ = viper.BindPFlag(flags.Name, cmd.Flag(flags.Name))
	_ = viper.BindPFlag(flags.Version, cmd.Flag(flags.Version))
	_ = viper.BindPFlag(flags.Passphrase, cmd.Flag(flags.Passphrase))
	_ = viper.BindPFlag(flags.NoPrompt, cmd.Flag(flags.NoPrompt))
	_ = viper.BindPFlag(flags.MapsKeyFile, cmd.Flag(flags.MapsKeyFile))
	_ = viper.BindEnv(flags.MapsKeyFile, "MKENV_MAPS_KEY_FILE")

	name := viper.GetString(flags.Name)
	version := viper.GetString(flags.Version)
	passphrase := viper.GetString(flags.Passphrase)
	noPrompt := viper.GetBool(flags.NoPrompt)
	mapsKeyFile := viper.GetString(flags.MapsKeyFile)
	encrypted := false

	prompt := promptStatus()
	if noPrompt {
		prompt = false
	}

	if err := setAppCredsEnvVar(persistentFlags.ApplicationCredentials); err != nil {
		return err
	}

	if len(name) == 0 {
		return fmt.Errorf("please input value for --name flag")
	}

	if errs := validation.IsDNS1123Label(name); len(errs) > 0 {
		return fmt.Errorf("invalid name, need DNS1123Label format: %v", errs)
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
	if value, ok := labels[app.KeyEncrypted]; ok && value == app.ValueTrue {
		encrypted = true
	}

	// Build the request.
	accessRequest := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/%s", projectID, name, version),
	}

	// Call the API.
	result, err := client.AccessSecretVersion(ctx, accessRequest)
	if err != nil {
		return fmt.Errorf("failed to access secret version: %w", err)
	}

	payload := result.Payload.GetData()

	if encrypted {
		if len(passphrase) == 0 {
			if !prompt {
				return fmt.Errorf("please provide a passphrase via --passphrase flag when prompts are disabled")
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Enter encryption passphrase: "); err != nil {
				return fmt.Errorf("failed to write to output: %w", err)
			}
			b, err := term.ReadPassword(syscall.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read encryption passphrase from input: %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to write to output: %w", err)
			}

			passphrase = string(b)
		}

		key, err := crypto.NewAesKeyFromPassphrase([]byte(passphrase))
		if err != nil {
			return fmt.Errorf("failed to generate new AES key: %w", err)
		}

		ciphertext, err := base58.Decode(string(payload))
		if err != nil {
			return fmt.Errorf("failed to base58 decode stored value: %w", err)
		}

		payload, err = crypto.DecryptWithAesKey(ciphertext, key)
		if err != nil {
			return fmt.Errorf("failed to decrypt data: %w", err)
		}
	}

	mapsKey := strings.TrimSpace(string(payload))
	if len(mapsKey) == 0 {
		return fmt.Errorf("secret %s version %s holds an empty maps api key", name, version)
	}

	if err := os.WriteFile(mapsKeyFile, []byte(mapsKey+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write maps key file %s: %w", mapsKeyFile, err)
	}

	versionID := path.Base(result.GetName())

	switch strings.ToLower(persistentFlags.OutputFormat) {
	case flags.OutputFormatJson:
		jb, err := json.Marshal(
			struct {
				Name    string `json:"name,omitempty"`
				Version string `json:"version,omitempty"`
				File    string `json:"file,omitempty"`
			}{
				Name:    name,
				Version: versionID,
				File:    mapsKeyFile,
			},
		)
		if err != nil {
			return fmt.Errorf("failed to serialize output json: %w", err)
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(jb)); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	case flags.OutputFormatYaml:
		jb, err := yaml.Marshal(
			struct {
				Name    string `yaml:"name,omitempty"`
				Version string `yaml:"version,omitempty"`
				File    string `yaml:"file,omitempty"`
			}{
				Name:    name,
				Version: versionID,
				File:    mapsKeyFile,
			},
		)
		if err != nil {
			return fmt.Errorf("failed to serialize output yaml: %w", err)
		}

		if _, err := fmt.Fprint(cmd.OutOrStdout(), string(jb)); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	case flags.OutputFormatTable:
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Name", "Version", "File"})
		table.Append([]string{name, versionID, mapsKeyFile})
		table.SetBorder(false)
		table.SetColumnSeparator(" ")
		table.Render() // Send output
	default:
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "pulled maps api key from secret %s, version %s, to %s\n", name, versionID, mapsKeyFile); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	}

	return nil
}
