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

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [project-id]",
	Short: "Save the Google Cloud project ID to the project file",
	Long: `This command records the Google Cloud project ID in the project
file that the other commands read. The ID is taken from the arg
when given, otherwise it is asked for on stdin`,
	RunE:    run.Init,
	Args:    cobra.MaximumNArgs(1),
	Example: fmt.Sprintf("%s init my-project-id", app.Name),
}

func init() {
	rootCmd.AddCommand(initCmd)
	f := initCmd.Flags()
	b := filepath.Base

	f.Bool(b(flags.Verify), false, "Verify the project exists and is accessible")
}
