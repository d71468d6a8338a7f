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
	"strings"

	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/run"
	"github.com/spf13/cobra"
)

var mapsKeyListCmdLong = `List all secrets managed by this app
Internally it filters all secrets using label: labelKey=appName`

// mapsKeyListCmd represents the maps-key list command
var mapsKeyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List secrets managed by this app",
	Long: strings.ReplaceAll(
		strings.ReplaceAll(
			mapsKeyListCmdLong,
			"labelKey",
			app.KeyManagedBy,
		),
		"appName",
		app.Name,
	),
	RunE:    run.MapsKeyList,
	Args:    cobra.ExactArgs(0),
	Example: fmt.Sprintf("%s maps-key list", app.Name),
}

func init() {
	mapsKeyCmd.AddCommand(mapsKeyListCmd)
}
