package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jikan/jikan-cli/internal/api"
)

// Exit codes follow the common convention: 0 success, 1 runtime failure,
// 2 usage or validation problems the caller can fix locally.
const (
	exitOK      = 0
	exitGeneric = 1
	exitUsage   = 2
)

// ExitCode maps an error from Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if api.IsValidationError(err) {
		return exitUsage
	}
	if isUsageError(err) {
		return exitUsage
	}
	return exitGeneric
}

// isUsageError recognizes cobra's own argument and flag errors.
func isUsageError(err error) bool {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "unknown command"),
		strings.HasPrefix(msg, "unknown flag"),
		strings.HasPrefix(msg, "unknown shorthand flag"),
		strings.HasPrefix(msg, "invalid argument"),
		strings.HasPrefix(msg, "required flag"),
		strings.Contains(msg, "arg(s)"),
		strings.Contains(msg, "accepts at"):
		return true
	}
	return false
}
