package run

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/envfmt"
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// MapsKeyShow prints the Maps API key stored in the local maps key file.
func MapsKeyShow(cmd *cobra.Command, args []string) error {
	persistentFlags := getPersistentFlags(cmd)

	_ = viper.BindPFlag(flags.MapsKeyFile, cmd.Flag(flags.MapsKeyFile))
	_ = viper.BindEnv(flags.MapsKeyFile, "MKENV_MAPS_KEY_FILE")
	mapsKeyFile := viper.GetString(flags.MapsKeyFile)

	mapsKey, err := readMapsKeyFile(mapsKeyFile)
	if err != nil {
		return err
	}
	if len(mapsKey) == 0 {
		return fmt.Errorf("no maps api key at %s, please run %s maps-key set or %s maps-key pull first",
			mapsKeyFile, app.Name, app.Name)
	}

	switch strings.ToLower(persistentFlags.OutputFormat) {
	case flags.OutputFormatJson:
		jb, err := json.Marshal(envfmt.Var{Name: app.VarMapsAPIKey, Value: mapsKey})
		if err != nil {
			return fmt.Errorf("failed to serialize output to json: %w", err)
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(jb)); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	case flags.OutputFormatYaml:
		jb, err := yaml.Marshal(envfmt.Var{Name: app.VarMapsAPIKey, Value: mapsKey})
		if err != nil {
			return fmt.Errorf("failed to serialize output to yaml: %w", err)
		}

		if _, err := fmt.Fprint(cmd.OutOrStdout(), string(jb)); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	case flags.OutputFormatTable:
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Name", "Value"})
		table.SetBorder(false)
		table.SetColumnSeparator(" ")
		table.Append([]string{app.VarMapsAPIKey, mapsKey})
		table.Render()
	default:
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), mapsKey); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	}

	return nil
}
