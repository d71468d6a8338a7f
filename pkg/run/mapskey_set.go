package run

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// MapsKeySet writes the Maps API key to the local maps key file. The key
// is taken from the arg when given, otherwise read from a hidden prompt
// so it does not end up in shell history or scrollback.
func MapsKeySet(cmd *cobra.Command, args []string) error {
	_ = viper.BindPFlag(flags.MapsKeyFile, cmd.Flag(flags.MapsKeyFile))
	_ = viper.BindEnv(flags.MapsKeyFile, "MKENV_MAPS_KEY_FILE")
	_ = viper.BindPFlag(flags.NoPrompt, cmd.Flag(flags.NoPrompt))

	mapsKeyFile := viper.GetString(flags.MapsKeyFile)
	noPrompt := viper.GetBool(flags.NoPrompt)

	prompt := promptStatus()
	if noPrompt {
		prompt = false
	}

	var mapsKey string
	var err error

	if len(args) > 0 {
		mapsKey = strings.TrimSpace(args[0])
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

	if len(mapsKey) == 0 {
		return fmt.Errorf("please provide a maps api key")
	}

	if strings.ContainsAny(mapsKey, " \t") {
		return fmt.Errorf("maps api key must not contain whitespace")
	}

	if err := os.WriteFile(mapsKeyFile, []byte(mapsKey+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write maps key file %s: %w", mapsKeyFile, err)
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "maps api key saved to %s\n", mapsKeyFile); err != nil {
		return fmt.Errorf("failed to write to output: %w", err)
	}

	return nil
}
