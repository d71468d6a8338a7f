package run

import (
	"fmt"

	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/envfmt"
	"github.com/spf13/cobra"
)

// Unset prints unset statements for every var the env command can emit.
// No cloud lookups are needed, the names are static.
func Unset(cmd *cobra.Command, args []string) error {
	out := envfmt.Unset(app.VarNames)

	if _, err := fmt.Fprint(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("failed to write to output: %w", err)
	}

	return nil
}
