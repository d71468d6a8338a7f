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
	"path/filepath"

	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/kubetrail/mkenv/pkg/run"
	"github.com/spf13/cobra"
)

// mapsKeyPushCmd represents the maps-key push command
var mapsKeyPushCmd = &cobra.Command{
	Use:   "push [key]",
	Short: "Push the Maps API key to Google secret manager",
	Long: `This command stores the Maps API key as a new secret version. The
key is taken from the arg, the local maps key file, or a hidden
prompt, in that order. Use --encrypt to encrypt the payload with
a passphrase before it leaves the machine`,
	RunE: run.MapsKeyPush,
	Args: cobra.MaximumNArgs(1),
}

func init() {
	mapsKeyCmd.AddCommand(mapsKeyPushCmd)
	f := mapsKeyPushCmd.Flags()
	b := filepath.Base

	f.String(b(flags.Name), app.DefaultMapsKeySecretID, "Name tag for the secret (DNS1123 label format)")
	f.Bool(b(flags.Encrypt), false, "Turn on encryption (true when passphrase is provided)")
	f.String(flags.Passphrase, "", "Encryption passphrase")
	f.Bool(flags.NoPrompt, false, "Hide all prompts")

	_ = mapsKeyPushCmd.RegisterFlagCompletionFunc(
		flags.Name,
		func(
			cmd *cobra.Command,
			args []string,
			toComplete string,
		) (
			[]string,
			cobra.ShellCompDirective,
		) {
			return []string{
					app.DefaultMapsKeySecretID,
					"maps-platform-key-dev",
					"maps-platform-key-prod",
				},
				cobra.ShellCompDirectiveDefault
		},
	)
}
