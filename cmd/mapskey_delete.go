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

// mapsKeyDeleteCmd represents the maps-key delete command
var mapsKeyDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the Maps API key secret",
	Long: `This command deletes the secret holding the Maps API key. It asks
for the secret name to be typed back unless --force is given.
Use --local to remove the local maps key file as well`,
	RunE: run.MapsKeyDelete,
	Args: cobra.ExactArgs(0),
}

func init() {
	mapsKeyCmd.AddCommand(mapsKeyDeleteCmd)
	f := mapsKeyDeleteCmd.Flags()
	b := filepath.Base

	f.String(b(flags.Name), app.DefaultMapsKeySecretID, "Name tag for the secret (DNS1123 label format)")
	f.Bool(b(flags.Force), false, "Skip the delete confirmation")
	f.Bool(b(flags.Local), false, "Remove the local maps key file as well")
}
