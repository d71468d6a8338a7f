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

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check every input the env command depends on",
	Long: `This command probes credentials, the project, the default service
account, the Spanner instance and database, and the maps key file.
It runs all probes instead of stopping at the first failure and
exits non-zero if any required probe failed`,
	RunE:    run.Check,
	Args:    cobra.ExactArgs(0),
	Example: fmt.Sprintf("%s check --output-format=table", app.Name),
}

func init() {
	rootCmd.AddCommand(checkCmd)
	f := checkCmd.Flags()
	b := filepath.Base

	f.String(b(flags.SpannerInstanceID), app.DefaultSpannerInstanceID, "Spanner instance ID")
	f.String(b(flags.SpannerDatabaseID), app.DefaultSpannerDatabaseID, "Spanner database ID")
	f.String(b(flags.MapsKeyFile), defaultFilePath(app.DefaultMapsKeyFilename), "File holding the Google Maps API key")
}
