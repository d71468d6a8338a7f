package run

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"syscall"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/crypto"
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/kubetrail/mkenv/pkg/gcp"
	"github.com/kubetrail/mkenv/pkg/logger"
	"github.com/mr-tron/base58"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/validation"
)

// MapsKeyPush stores the Maps API key as a secret manager secret so it
// can be shared across dev machines. The key is taken from the arg, the
// local maps key file, or a hidden prompt, in that order. With --encrypt
// the payload is encrypted with a passphrase before leaving the machine.
func MapsKeyPush(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	persistentFlags := getPersistentFlags(cmd)

	_ = viper.BindPFlag(flags.Name, cmd.Flag(flags.Name))
	_ = viper.BindPFlag(flags.Encrypt, cmd.Flag(flags.Encrypt))
	_ = viper.BindPFlag(flags.Passphrase, cmd.Flag(flags.Passphrase))
	_ = viper.BindPFlag(flags.NoPrompt, cmd.Flag(flags.NoPrompt))
	_ = viper.BindPFlag(flags.MapsKeyFile, cmd.Flag(flags.MapsKeyFile))
	_ = viper.BindEnv(flags.MapsKeyFile, "MKENV_MAPS_KEY_FILE")

	name := viper.GetString(flags.Name)
	encrypt := viper.GetBool(flags.Encrypt)
	passphrase := viper.GetString(flags.Passphrase)
	noPrompt := viper.GetBool(flags.NoPrompt)
	mapsKeyFile := viper.GetString(flags.MapsKeyFile)

	prompt := promptStatus()
	if noPrompt {
		prompt = false
	}

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

	var mapsKey string
	var err error

	if len(args) > 0 {
		mapsKey = strings.TrimSpace(args[0])
	} else {
		mapsKey, err = readMapsKeyFile(mapsKeyFile)
		if err != nil {
			return err
		}

		if len(mapsKey) > 0 {
			log.Debug().Msgf("read maps api key from %s", mapsKeyFile)
		} else {
			if prompt {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Enter Google Maps API key: "); err != nil {
					return fmt.Errorf("failed to write to output: %w", err)
				}

				b, err := term.ReadPassword(syscall.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read maps api key from input: %w", err)
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("failed to write to output: %w", err)
				}

				mapsKey = strings.TrimSpace(string(b))
			} else {
				mapsKey, err = readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}
		}
	}

	if len(mapsKey) == 0 {
		return fmt.Errorf("please provide a maps api key via the arg, the maps key file or stdin")
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

	labels := map[string]string{
		app.KeyManagedBy: app.Name,
	}
	if encrypt {
		labels[app.KeyEncrypted] = app.ValueTrue
	}

	// Create the request to create the secret.
	createSecretReq := &secretmanagerpb.CreateSecretRequest{
		Parent:   fmt.Sprintf("projects/%s", projectID),
		SecretId: name,
		Secret: &secretmanagerpb.Secret{
			Replication: &secretmanagerpb.Replication{
				Replication: &secretmanagerpb.Replication_Automatic_{
					Automatic: &secretmanagerpb.Replication_Automatic{},
				},
			},
			Labels: labels,
		},
	}

	secret, err := client.CreateSecret(ctx, createSecretReq)
	if err != nil {
		apiErr, ok := err.(*apierror.APIError)
		if ok {
			if apiErr.GRPCStatus().Code() == codes.AlreadyExists {
				secret, err = client.GetSecret(
					ctx,
					&secretmanagerpb.GetSecretRequest{
						Name: fmt.Sprintf("projects/%s/secrets/%s", projectID, name),
					},
				)
				if err != nil {
					return fmt.Errorf("failed to get secret: %w", err)
				}
			} else {
				return fmt.Errorf("failed to create secret: %w", err)
			}
		} else {
			return fmt.Errorf("failed to create a secret: %T, %w", err, err)
		}
	}

	labels = secret.GetLabels()
	if value, ok := labels[app.KeyManagedBy]; !ok || value != app.Name {
		return fmt.Errorf("secret is not being managed by this app")
	}
	if value, ok := labels[app.KeyEncrypted]; ok && value == app.ValueTrue {
		encrypt = true
	}
	if encrypt {
		if value, ok := labels[app.KeyEncrypted]; !ok || value != app.ValueTrue {
			return fmt.Errorf("secret was not previously encrypted and this property is immutable")
		}
	}

	var key []byte
	payload := mapsKey

	if encrypt {
		if len(passphrase) == 0 {
			if !prompt {
				return fmt.Errorf("please provide a passphrase via --passphrase flag when prompts are disabled")
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Enter encryption passphrase (min 8 char): "); err != nil {
				return fmt.Errorf("failed to write to output: %w", err)
			}
			encryptionKey, err := term.ReadPassword(syscall.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read encryption passphrase from input: %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to write to output: %w", err)
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Enter encryption passphrase again: "); err != nil {
				return fmt.Errorf("failed to write to output: %w", err)
			}
			encryptionKeyConfirm, err := term.ReadPassword(syscall.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read encryption passphrase from input: %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to write to output: %w", err)
			}

			if !bytes.Equal(encryptionKey, encryptionKeyConfirm) {
				return fmt.Errorf("passphrases do not match")
			}

			passphrase = string(encryptionKey)
		}

		key, err = crypto.NewAesKeyFromPassphrase([]byte(passphrase))
		if err != nil {
			return fmt.Errorf("failed to generate new AES key: %w", err)
		}

		ciphertext, err := crypto.EncryptWithAesKey([]byte(mapsKey), key)
		if err != nil {
			return fmt.Errorf("failed to encrypt input: %w", err)
		}

		payload = base58.Encode(ciphertext)
	}

	// Build the request.
	data := []byte(payload)
	dataCrc32C := int64(Crc32Sum(data))
	addSecretVersionReq := &secretmanagerpb.AddSecretVersionRequest{
		Parent: secret.Name,
		Payload: &secretmanagerpb.SecretPayload{
			Data:       data,
			DataCrc32C: &dataCrc32C,
		},
	}

	// Call the API.
	version, err := client.AddSecretVersion(ctx, addSecretVersionReq)
	if err != nil {
		return fmt.Errorf("failed to add secret version: %w", err)
	}

	// Read the version back to make sure the stored payload matches.
	accessRequest := &secretmanagerpb.AccessSecretVersionRequest{
		Name: version.Name,
	}

	result, err := client.AccessSecretVersion(ctx, accessRequest)
	if err != nil {
		return fmt.Errorf("failed to access secret version: %w", err)
	}

	stored := result.Payload.GetData()
	if encrypt {
		ciphertext, err := base58.Decode(string(stored))
		if err != nil {
			return fmt.Errorf("failed to base58 decode stored value: %w", err)
		}

		stored, err = crypto.DecryptWithAesKey(ciphertext, key)
		if err != nil {
			return fmt.Errorf("failed to decrypt data: %w", err)
		}
	}

	if string(stored) != mapsKey {
		return fmt.Errorf("stored payload does not match the input")
	}

	versionID := path.Base(version.GetName())

	switch strings.ToLower(persistentFlags.OutputFormat) {
	case flags.OutputFormatJson:
		jb, err := json.Marshal(
			struct {
				Name    string `json:"name,omitempty"`
				Version string `json:"version,omitempty"`
			}{
				Name:    name,
				Version: versionID,
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
			}{
				Name:    name,
				Version: versionID,
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
		table.SetHeader([]string{"Name", "Version"})
		table.Append([]string{name, versionID})
		table.SetBorder(false)
		table.SetColumnSeparator(" ")
		table.Render() // Send output
	default:
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "pushed maps api key to secret %s, version %s\n", name, versionID); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	}

	return nil
}
