package run

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/spf13/cobra"
)

// newTestRoot builds a command tree wired the same way the cmd package
// wires the real one, with file paths pointed at the test's temp dir.
// A fresh tree per test keeps flag state from leaking between tests.
func newTestRoot(t *testing.T, projectFile, mapsKeyFile string) *cobra.Command {
	t.Helper()

	// Keep host credentials and project settings out of the tests. The
	// credentials path points at a missing file so any code path that
	// reaches a cloud client fails fast instead of calling out.
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", filepath.Join(t.TempDir(), "missing-creds.json"))
	t.Setenv("GOOGLE_PROJECT_ID", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("MKENV_PROJECT_FILE", "")
	t.Setenv("GOOGLE_CLOUD_LOCATION", "")
	t.Setenv("SPANNER_INSTANCE_ID", "")
	t.Setenv("SPANNER_DATABASE_ID", "")
	t.Setenv("GOOGLE_MAPS_MAP_ID", "")
	t.Setenv("MKENV_MAPS_KEY_FILE", "")

	root := &cobra.Command{Use: app.Name, SilenceUsage: true, SilenceErrors: true}
	pf := root.PersistentFlags()
	pf.String(flags.GoogleProjectID, "", "")
	pf.String(flags.GoogleApplicationCredentials, "", "")
	pf.String(flags.OutputFormat, flags.OutputFormatNative, "")
	pf.String(flags.ProjectFile, projectFile, "")
	pf.Bool(flags.Verbose, false, "")

	initCmd := &cobra.Command{Use: "init", RunE: Init, Args: cobra.MaximumNArgs(1)}
	initCmd.Flags().Bool(flags.Verify, false, "")

	envCmd := &cobra.Command{Use: "env", RunE: Env, Args: cobra.ExactArgs(0)}
	addResolveFlags(envCmd, mapsKeyFile)
	envCmd.Flags().String(flags.File, "", "")

	getCmd := &cobra.Command{Use: "get", RunE: Get, Args: cobra.ExactArgs(1)}
	addResolveFlags(getCmd, mapsKeyFile)

	unsetCmd := &cobra.Command{Use: "unset", RunE: Unset, Args: cobra.ExactArgs(0)}

	checkCmd := &cobra.Command{Use: "check", RunE: Check, Args: cobra.ExactArgs(0)}
	checkCmd.Flags().String(flags.SpannerInstanceID, app.DefaultSpannerInstanceID, "")
	checkCmd.Flags().String(flags.SpannerDatabaseID, app.DefaultSpannerDatabaseID, "")
	checkCmd.Flags().String(flags.MapsKeyFile, mapsKeyFile, "")

	versionCmd := &cobra.Command{Use: "version", RunE: Version, Args: cobra.ExactArgs(0)}

	mapsKeyCmd := &cobra.Command{Use: "maps-key"}
	mapsKeyCmd.PersistentFlags().String(flags.MapsKeyFile, mapsKeyFile, "")

	mapsKeySetCmd := &cobra.Command{Use: "set", RunE: MapsKeySet, Args: cobra.MaximumNArgs(1)}
	mapsKeySetCmd.Flags().Bool(flags.NoPrompt, false, "")

	mapsKeyShowCmd := &cobra.Command{Use: "show", RunE: MapsKeyShow, Args: cobra.ExactArgs(0)}

	mapsKeyPushCmd := &cobra.Command{Use: "push", RunE: MapsKeyPush, Args: cobra.MaximumNArgs(1)}
	mapsKeyPushCmd.Flags().String(flags.Name, app.DefaultMapsKeySecretID, "")
	mapsKeyPushCmd.Flags().Bool(flags.Encrypt, false, "")
	mapsKeyPushCmd.Flags().String(flags.Passphrase, "", "")
	mapsKeyPushCmd.Flags().Bool(flags.NoPrompt, false, "")

	mapsKeyPullCmd := &cobra.Command{Use: "pull", RunE: MapsKeyPull, Args: cobra.ExactArgs(0)}
	mapsKeyPullCmd.Flags().String(flags.Name, app.DefaultMapsKeySecretID, "")
	mapsKeyPullCmd.Flags().String(flags.Version, "latest", "")
	mapsKeyPullCmd.Flags().String(flags.Passphrase, "", "")
	mapsKeyPullCmd.Flags().Bool(flags.NoPrompt, false, "")

	mapsKeyListCmd := &cobra.Command{Use: "list", RunE: MapsKeyList, Args: cobra.ExactArgs(0)}

	mapsKeyDeleteCmd := &cobra.Command{Use: "delete", RunE: MapsKeyDelete, Args: cobra.ExactArgs(0)}
	mapsKeyDeleteCmd.Flags().String(flags.Name, app.DefaultMapsKeySecretID, "")
	mapsKeyDeleteCmd.Flags().Bool(flags.Force, false, "")
	mapsKeyDeleteCmd.Flags().Bool(flags.Local, false, "")

	mapsKeyCmd.AddCommand(
		mapsKeySetCmd,
		mapsKeyShowCmd,
		mapsKeyPushCmd,
		mapsKeyPullCmd,
		mapsKeyListCmd,
		mapsKeyDeleteCmd,
	)
	root.AddCommand(initCmd, envCmd, getCmd, unsetCmd, checkCmd, versionCmd, mapsKeyCmd)

	return root
}

func addResolveFlags(cmd *cobra.Command, mapsKeyFile string) {
	f := cmd.Flags()

	f.String(flags.Location, app.DefaultLocation, "")
	f.String(flags.SpannerInstanceID, app.DefaultSpannerInstanceID, "")
	f.String(flags.SpannerDatabaseID, app.DefaultSpannerDatabaseID, "")
	f.String(flags.MapsKeyFile, mapsKeyFile, "")
	f.String(flags.MapsMapID, "", "")
	f.Bool(flags.SkipAuthCheck, false, "")
}

// executeCommand runs the tree with args and returns the combined output.
func executeCommand(t *testing.T, root *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}
