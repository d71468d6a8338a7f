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
	"gopkg.in/yaml.v3"
)

// Get resolves a single env var by name and prints its bare value,
// which makes it composable in shell, e.g. NUM=$(mkenv get PROJECT_NUMBER).
func Get(cmd *cobra.Command, args []string) error {
	persistentFlags := getPersistentFlags(cmd)

	if len(args) != 1 {
		return fmt.Errorf("please provide exactly one env var name, one of %s", strings.Join(app.VarNames, ", "))
	}

	name := strings.ToUpper(strings.TrimSpace(args[0]))

	known := false
	for _, varName := range app.VarNames {
		if name == varName {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown env var %s, valid names are %s", name, strings.Join(app.VarNames, ", "))
	}

	vars, err := resolveVars(cmd)
	if err != nil {
		return err
	}

	var value string
	found := false
	for _, v := range vars {
		if v.Name == name {
			value = v.Value
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%s is not set, its optional inputs are absent", name)
	}

	switch strings.ToLower(persistentFlags.OutputFormat) {
	case flags.OutputFormatJson:
		jb, err := json.Marshal(envfmt.Var{Name: name, Value: value})
		if err != nil {
			return fmt.Errorf("failed to serialize output to json: %w", err)
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(jb)); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	case flags.OutputFormatYaml:
		jb, err := yaml.Marshal(envfmt.Var{Name: name, Value: value})
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
		table.Append([]string{name, value})
		table.Render()
	default:
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), value); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	}

	return nil
}
