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
	"os"
	"path/filepath"

	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   app.Name,
	Short: "Export Google Cloud dev shell env vars",
	Long: fmt.Sprintf(`This tool resolves the env vars a Google Cloud dev shell needs,
such as PROJECT_ID, PROJECT_NUMBER, SERVICE_ACCOUNT_NAME and the
Spanner identifiers, and prints them as shell export statements.

Load them into the current shell:
    eval "$(%s env)"
`, app.Name),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()

	f.String(flags.GoogleProjectID, "", "Google project ID")
	f.String(flags.GoogleApplicationCredentials, "", "Google application credentials file path")
	f.String(flags.OutputFormat, flags.OutputFormatNative, "Output format: native, env, dotenv, github, json, yaml or table")
	f.String(flags.ProjectFile, defaultFilePath(app.DefaultProjectFilename), "File holding the Google Cloud project ID")
	f.Bool(flags.Verbose, false, "Log debug details to stderr")

	_ = rootCmd.RegisterFlagCompletionFunc(
		flags.OutputFormat,
		func(
			cmd *cobra.Command,
			args []string,
			toComplete string,
		) (
			[]string,
			cobra.ShellCompDirective,
		) {
			return []string{
					flags.OutputFormatNative,
					flags.OutputFormatEnv,
					flags.OutputFormatDotenv,
					flags.OutputFormatGithub,
					flags.OutputFormatJson,
					flags.OutputFormatYaml,
					flags.OutputFormatTable,
				},
				cobra.ShellCompDirectiveDefault
		},
	)
}

// defaultFilePath resolves filename against the user home dir, falling
// back to the bare filename when the home dir is not known.
func defaultFilePath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filename
	}

	return filepath.Join(home, filename)
}
