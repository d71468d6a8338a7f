package run

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Version prints build info.
func Version(cmd *cobra.Command, args []string) error {
	persistentFlags := getPersistentFlags(cmd)

	output := struct {
		Name    string `json:"name" yaml:"name"`
		Version string `json:"version" yaml:"version"`
		Commit  string `json:"commit" yaml:"commit"`
	}{
		Name:    app.Name,
		Version: app.Version,
		Commit:  app.Commit,
	}

	switch strings.ToLower(persistentFlags.OutputFormat) {
	case flags.OutputFormatJson:
		jb, err := json.Marshal(output)
		if err != nil {
			return fmt.Errorf("failed to serialize output to json: %w", err)
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(jb)); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	case flags.OutputFormatYaml:
		jb, err := yaml.Marshal(output)
		if err != nil {
			return fmt.Errorf("failed to serialize output to yaml: %w", err)
		}

		if _, err := fmt.Fprint(cmd.OutOrStdout(), string(jb)); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	default:
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s version %s, commit %s\n",
			output.Name, output.Version, output.Commit); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	}

	return nil
}
