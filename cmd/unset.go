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

	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/run"
	"github.com/spf13/cobra"
)

// unsetCmd represents the unset command
var unsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Print unset statements for the env vars",
	Long: `This command prints shell unset statements for every env var the
env command can emit, so a shell can be cleaned up the same way
it was populated`,
	RunE:    run.Unset,
	Args:    cobra.ExactArgs(0),
	Example: fmt.Sprintf(`eval "$(%s unset)"`, app.Name),
}

func init() {
	rootCmd.AddCommand(unsetCmd)
}
