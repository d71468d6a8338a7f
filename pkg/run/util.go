package run

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"io/fs"
	"os"
	"strings"
	"syscall"

	"github.com/kubetrail/mkenv/pkg/app"
	"github.com/kubetrail/mkenv/pkg/flags"
	"github.com/kubetrail/mkenv/pkg/gcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

type persistentFlagValues struct {
	ApplicationCredentials string `json:"applicationCredentials,omitempty"`
	Project                string `json:"project,omitempty"`
	OutputFormat           string `json:"outputFormat,omitempty"`
	ProjectFile            string `json:"projectFile,omitempty"`
	Verbose                bool   `json:"verbose,omitempty"`
}

func getPersistentFlags(cmd *cobra.Command) persistentFlagValues {
	rootCmd := cmd.Root().PersistentFlags()

	_ = viper.BindPFlag(flags.GoogleProjectID, rootCmd.Lookup(flags.GoogleProjectID))
	_ = viper.BindPFlag(flags.GoogleApplicationCredentials, rootCmd.Lookup(flags.GoogleApplicationCredentials))
	_ = viper.BindPFlag(flags.OutputFormat, rootCmd.Lookup(flags.OutputFormat))
	_ = viper.BindPFlag(flags.ProjectFile, rootCmd.Lookup(flags.ProjectFile))
	_ = viper.BindPFlag(flags.Verbose, rootCmd.Lookup(flags.Verbose))

	_ = viper.BindEnv(flags.GoogleProjectID, "GOOGLE_PROJECT_ID", "GOOGLE_CLOUD_PROJECT")
	_ = viper.BindEnv(flags.ProjectFile, "MKENV_PROJECT_FILE")

	applicationCredentials := viper.GetString(flags.GoogleApplicationCredentials)
	project := viper.GetString(flags.GoogleProjectID)
	outputFormat := viper.GetString(flags.OutputFormat)
	projectFile := viper.GetString(flags.ProjectFile)
	verbose := viper.GetBool(flags.Verbose)

	return persistentFlagValues{
		ApplicationCredentials: applicationCredentials,
		Project:                project,
		OutputFormat:           outputFormat,
		ProjectFile:            projectFile,
		Verbose:                verbose,
	}
}

// getProjectID resolves the project id from the google-project-id flag,
// its env var bindings, the project id file, or the GCE metadata server.
// A missing project id file turns into a hint to run init.
func getProjectID(ctx context.Context, persistentFlags persistentFlagValues) (string, string, error) {
	projectID, source, err := gcp.ResolveProjectID(ctx, persistentFlags.Project, persistentFlags.ProjectFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", fmt.Errorf("project id file %s not found, please run %s init first: %w",
				persistentFlags.ProjectFile, app.Name, err)
		}
		return "", "", err
	}

	return projectID, source, nil
}

func setAppCredsEnvVar(applicationCredentials string) error {
	if len(applicationCredentials) > 0 {
		if err := os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", applicationCredentials); err != nil {
			err := fmt.Errorf("could not set Google Application credentials env. var: %w", err)
			return err
		}
	}

	return nil
}

// promptStatus reports whether stdin is attached to a terminal, i.e.
// whether interactive prompts should be written before reading input.
func promptStatus() bool {
	return term.IsTerminal(syscall.Stdin)
}

// readLine reads one line of input, trimming surrounding space. Input
// that ends without a trailing newline is accepted so piped values work.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read from input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// Crc32Sum produces crc32 sum
func Crc32Sum(data []byte) uint32 {
	t := crc32.MakeTable(crc32.Castagnoli)
	return crc32.Checksum(data, t)
}
