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

// mapsKeyPullCmd represents the maps-key pull command
var mapsKeyPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull the Maps API key from Google secret manager",
	Long: `This command fetches the Maps API key secret and writes it to the
local maps key file, where the env command picks it up. Payloads
pushed with --encrypt are decrypted with the passphrase first`,
	RunE: run.MapsKeyPull,
	Args: cobra.ExactArgs(0),
}

func init() {
	mapsKeyCmd.AddCommand(mapsKeyPullCmd)
	f := mapsKeyPullCmd.Flags()
	b := filepath.Base

	f.String(b(flags.Name), app.DefaultMapsKeySecretID, "Name tag for the secret (DNS1123 label format)")
	f.String(b(flags.Version), "latest", "Secret version to pull")
	f.String(flags.Passphrase, "", "Encryption passphrase")
	f.Bool(flags.NoPrompt, false, "Hide all prompts")
}
