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
	"github.com/kubetrail/mkenv/pkg/run"
	"github.com/spf13/cobra"
)

// mapsKeyShowCmd represents the maps-key show command
var mapsKeyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the Maps API key from the local maps key file",
	RunE:  run.MapsKeyShow,
	Args:  cobra.ExactArgs(0),
}

func init() {
	mapsKeyCmd.AddCommand(mapsKeyShowCmd)
}
