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
	"github.com/spf13/cobra"
)

// mapsKeyCmd represents the maps-key command
var mapsKeyCmd = &cobra.Command{
	Use:   "maps-key",
	Short: "Manage the Google Maps API key",
	Long: `This command group manages the optional Google Maps API key. The
key lives in a local file that the env command reads, and can be
pushed to and pulled from Google secret manager to move it
between dev machines`,
}

func init() {
	rootCmd.AddCommand(mapsKeyCmd)
	f := mapsKeyCmd.PersistentFlags()
	b := filepath.Base

	f.String(b(flags.MapsKeyFile), defaultFilePath(app.DefaultMapsKeyFilename), "File holding the Google Maps API key")
}
