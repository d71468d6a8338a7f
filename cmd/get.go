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

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Print the value of a single env var",
	Long: `This command resolves the env vars the same way env does and prints
the bare value of the named one, which composes well in shell`,
	RunE:    run.Get,
	Args:    cobra.ExactArgs(1),
	Example: fmt.Sprintf("NUM=$(%s get PROJECT_NUMBER)", app.Name),
	ValidArgsFunction: func(
		cmd *cobra.Command,
		args []string,
		toComplete string,
	) (
		[]string,
		cobra.ShellCompDirective,
	) {
		return app.VarNames, cobra.ShellCompDirectiveNoFileComp
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	f := getCmd.Flags()
	b := filepath.Base

	f.String(b(flags.Location), app.DefaultLocation, "Google Cloud location")
	f.String(b(flags.SpannerInstanceID), app.DefaultSpannerInstanceID, "Spanner instance ID")
	f.String(b(flags.SpannerDatabaseID), app.DefaultSpannerDatabaseID, "Spanner database ID")
	f.String(b(flags.MapsKeyFile), defaultFilePath(app.DefaultMapsKeyFilename), "File holding the Google Maps API key")
	f.String(b(flags.MapsMapID), "", "Google Maps map ID")
	f.Bool(b(flags.SkipAuthCheck), false, "Skip the application default credentials check")
}
