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
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/kubetrail/mkenv/pkg/run"
	"github.com/spf13/cobra"
)

// mapsKeySetCmd represents the maps-key set command
var mapsKeySetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Save the Maps API key to the local maps key file",
	Long: `This command writes the Maps API key to the local maps key file.
The key is taken from the arg when given, otherwise it is read
from a hidden prompt so it stays out of shell history`,
	RunE: run.MapsKeySet,
	Args: cobra.MaximumNArgs(1),
}

func init() {
	mapsKeyCmd.AddCommand(mapsKeySetCmd)
	f := mapsKeySetCmd.Flags()

	f.Bool(flags.NoPrompt, false, "Hide all prompts")
}
