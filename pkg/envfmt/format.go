// Package envfmt renders environment variables in the shell formats the env
// command emits. Values in the native and dotenv formats are quoted so the
// output is always safe to eval; the github format follows the syntax GitHub
// Actions expects in $GITHUB_ENV files, including heredocs for multiline
// values.
package envfmt

import (
	"fmt"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// Format selects how a variable is rendered.
type Format string

const (
	// FormatNative renders export KEY='value' statements.
	FormatNative Format = "native"
	// FormatEnv renders KEY=value pairs without quoting.
	FormatEnv Format = "env"
	// FormatDotenv renders KEY='value' pairs with shell-safe quoting.
	FormatDotenv Format = "dotenv"
	// FormatGithub renders KEY=value pairs, or heredoc syntax for
	// multiline values, for $GITHUB_ENV and $GITHUB_OUTPUT files.
	FormatGithub Format = "github"
)

// Var is a single named environment variable.
type Var struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// ParseFormat converts a format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatNative, FormatEnv, FormatDotenv, FormatGithub:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported env format: %s", s)
	}
}

// FormatVar renders a single variable, including the trailing newline.
func FormatVar(v Var, format Format) (string, error) {
	switch format {
	case FormatNative:
		return fmt.Sprintf("export %s=%s\n", v.Name, shellescape.Quote(v.Value)), nil
	case FormatEnv:
		return fmt.Sprintf("%s=%s\n", v.Name, v.Value), nil
	case FormatDotenv:
		return fmt.Sprintf("%s=%s\n", v.Name, shellescape.Quote(v.Value)), nil
	case FormatGithub:
		return formatGithubVar(v), nil
	default:
		return "", fmt.Errorf("unsupported env format: %s", format)
	}
}

// FormatVars renders variables in the order given.
func FormatVars(vars []Var, format Format) (string, error) {
	var sb strings.Builder
	for _, v := range vars {
		line, err := FormatVar(v, format)
		if err != nil {
			return "", err
		}
		sb.WriteString(line)
	}

	return sb.String(), nil
}

// Unset renders unset statements for the given variable names.
func Unset(names []string) string {
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("unset %s\n", name))
	}

	return sb.String()
}

// formatGithubVar uses the heredoc form for multiline values. The delimiter
// embeds the variable name so values holding a bare EOF line still parse.
func formatGithubVar(v Var) string {
	if !strings.Contains(v.Value, "\n") {
		return fmt.Sprintf("%s=%s\n", v.Name, v.Value)
	}

	delimiter := "MKENV_EOF_" + v.Name
	value := strings.TrimSuffix(v.Value, "\n")
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", v.Name, delimiter, value, delimiter)
}
