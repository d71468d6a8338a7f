/*
Copyright © 2022 kubetrail.io authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/kubetrail/mkenv/pkg/run"
	"github.com/spf13/cobra"
)

// envCmd represents the env command
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print dev shell env vars as shell exports",
	Long: `This command checks Google Cloud credentials, resolves the project
ID, number and default service account, and prints the dev shell
env vars. Progress goes to stderr, so stdout stays safe to eval.

The Maps API key var is only emitted when the maps key file exists`,
	RunE:    run.Env,
	Args:    cobra.ExactArgs(0),
	Example: fmt.Sprintf(`eval "$(%s env)"`, app.Name),
}

func init() {
	rootCmd.AddCommand(envCmd)
	f := envCmd.Flags()
	b := filepath.Base

	f.String(b(flags.Location), app.DefaultLocation, "Google Cloud location")
	f.String(b(flags.SpannerInstanceID), app.DefaultSpannerInstanceID, "Spanner instance ID")
	f.String(b(flags.SpannerDatabaseID), app.DefaultSpannerDatabaseID, "Spanner database ID")
	f.String(b(flags.MapsKeyFile), defaultFilePath(app.DefaultMapsKeyFilename), "File holding the Google Maps API key")
	f.String(b(flags.MapsMapID), "", "Google Maps map ID")
	f.Bool(b(flags.SkipAuthCheck), false, "Skip the application default credentials check")
	f.String(b(flags.File), "", "Append output to this file instead of stdout")
}
