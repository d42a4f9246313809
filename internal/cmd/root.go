package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jikan/jikan-cli/internal/api"
	"github.com/jikan/jikan-cli/internal/config"
	"github.com/jikan/jikan-cli/internal/debug"
	"github.com/jikan/jikan-cli/internal/resolve"
)

// version is set at build time via -ldflags.
var version = "dev"

// rootFlags holds global CLI flags.
type rootFlags struct {
	APIURL     string
	APIVersion int
	Timeout    time.Duration
	JQ         string
	Debug      bool
	Compact    bool
}

// flags is package-level mutable state reset at the start of every
// Execute() call. Tests depend on this reset to get clean state.
var flags rootFlags

// Execute runs the root command.
func Execute(ctx context.Context, args []string) error {
	if err := config.LoadEnvFile(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Reset flags to env-derived defaults for each execution.
	flags = rootFlags{
		APIURL:     cfg.APIRoot,
		APIVersion: cfg.Version,
		Timeout:    cfg.Timeout,
		Debug:      cfg.Debug,
	}

	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jikan",
		Short:         "CLI for the Jikan anime and manga metadata API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			debug.SetupLogger(flags.Debug)
			cmd.SetContext(debug.WithDebug(cmd.Context(), flags.Debug))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.APIURL, "api-url", flags.APIURL, "API root URL (default "+api.DefaultAPIRoot+")")
	pf.IntVar(&flags.APIVersion, "api-version", flags.APIVersion, "API version to request")
	pf.DurationVar(&flags.Timeout, "timeout", flags.Timeout, "HTTP timeout")
	pf.StringVar(&flags.JQ, "jq", "", "apply a jq expression to the JSON output")
	pf.BoolVar(&flags.Debug, "debug", flags.Debug, "enable debug logging")
	pf.BoolVar(&flags.Compact, "compact", false, "print compact JSON")

	root.AddCommand(
		newAnimeCmd(),
		newMangaCmd(),
		newPersonCmd(),
		newCharacterCmd(),
		newSearchCmd(),
		newSeasonCmd(),
		newScheduleCmd(),
		newTopCmd(),
		newGenreCmd(),
		newProducerCmd(),
		newMagazineCmd(),
		newUserCmd(),
		newClubCmd(),
		newMetaCmd(),
		newVersionCmd(),
	)
	return root
}

// newClient builds an API client from the global flags.
func newClient() (*api.Client, error) {
	client := api.New(flags.APIURL)
	if flags.APIVersion > 0 {
		if err := client.SetVersion(flags.APIVersion); err != nil {
			return nil, err
		}
	}
	if flags.Timeout > 0 {
		client.HTTP.Timeout = flags.Timeout
	}
	client.UserAgent = fmt.Sprintf("jikan-cli/%s", version)
	return client, nil
}

// parseID parses a positional numeric ID. Non-numeric input is reported as
// a validation error so it maps to the usage exit code, same as id <= 0.
func parseID(arg, name string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, &api.ValidationError{Param: name, Reason: fmt.Sprintf("must be a number, got %q", arg)}
	}
	return id, nil
}

// resolveEnum normalizes value against one of the API's fixed vocabularies
// and fails with a did-you-mean hint when it isn't in it.
func resolveEnum(name, value string, candidates []string) (string, error) {
	if exact := resolve.Match(value, candidates); exact != "" {
		return exact, nil
	}
	if hint, ok := resolve.Suggest(value, candidates); ok {
		return "", &api.ValidationError{
			Param:  name,
			Reason: fmt.Sprintf("unknown value %q (did you mean %q?)", value, hint),
		}
	}
	return "", &api.ValidationError{
		Param:  name,
		Reason: fmt.Sprintf("unknown value %q (valid: %s)", value, strings.Join(candidates, ", ")),
	}
}
