package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/woozymasta/semver"

	apperrors "github.com/relsweep/relsweep/pkg/errors"
	"github.com/relsweep/relsweep/pkg/github"
	"github.com/relsweep/relsweep/pkg/sweep"
)

// tokenEnvVar is consulted when no token is given via flag or config file.
const tokenEnvVar = "GITHUB_TOKEN"

type sweepFlags struct {
	repo        string
	target      string
	keep        int
	prereleases bool
	stale       bool
	dryRun      bool
	token       string
	configPath  string
	pageSize    int
	maxRetries  int
	retryDelay  time.Duration
}

// sweepCommand creates the sweep subcommand.
func (c *CLI) sweepCommand() *cobra.Command {
	var flags sweepFlags

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Prune releases and tags against a retention policy",
		Long: `Prune a repository's published releases and their git tags.

Prereleases at or below the target version are deleted when --prereleases
is set. Stable releases beyond the --keep newest (at or below the target)
are deleted when --stale is set. With --dry-run, intended deletions are
logged but no remote state changes.

The exit status is 1 if any error was recorded during the run, 0 otherwise.

Examples:
  relsweep sweep --repo acme/widget --target 2.0.0 --keep 3 --prereleases --stale --dry-run
  relsweep sweep --repo acme/widget --target 1.5.0 --keep 2 --stale`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSweep(cmd.Context(), flags, cmd.Flags().Changed("config"))
		},
	}

	cmd.Flags().StringVar(&flags.repo, "repo", "", "repository in owner/name form (required)")
	cmd.Flags().StringVar(&flags.target, "target", "", "target version MAJOR.MINOR.PATCH (required)")
	cmd.Flags().IntVar(&flags.keep, "keep", 0, "number of newest stable releases to preserve")
	cmd.Flags().BoolVar(&flags.prereleases, "prereleases", false, "delete prerelease versions")
	cmd.Flags().BoolVar(&flags.stale, "stale", false, "delete stable releases beyond the keep window")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "log intended actions without deleting anything")
	cmd.Flags().StringVar(&flags.token, "token", "", "GitHub API token (or GITHUB_TOKEN, or config file)")
	cmd.Flags().StringVar(&flags.configPath, "config", defaultConfigPath(), "path to TOML config file")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "releases per page when listing")
	cmd.Flags().IntVar(&flags.maxRetries, "max-retries", 0, "attempts per API call")
	cmd.Flags().DurationVar(&flags.retryDelay, "retry-delay", 0, "base delay between retries")

	_ = cmd.MarkFlagRequired("repo")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func (c *CLI) runSweep(ctx context.Context, flags sweepFlags, configExplicit bool) error {
	cfg, client, err := c.buildRun(flags, configExplicit)
	if err != nil {
		return err
	}

	engine, err := sweep.New(cfg, client, c.Logger)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	report, runErr := engine.Run(ctx)
	fmt.Println(report.Render())

	if runErr != nil {
		return runErr
	}
	prog.done(fmt.Sprintf("Swept %s, deleted %d releases", cfg.Repo, report.Metrics.TotalDeleted()))

	if report.ExitCode() != 0 {
		return fmt.Errorf("completed with %d errors", report.Metrics.Errors)
	}
	return nil
}

// buildRun merges flags, config file, and environment into a validated
// engine config and API client. No API call happens here.
func (c *CLI) buildRun(flags sweepFlags, configExplicit bool) (sweep.Config, *github.Client, error) {
	fileCfg, err := loadConfig(flags.configPath, configExplicit)
	if err != nil {
		return sweep.Config{}, nil, err
	}

	repo, err := github.ParseRepo(flags.repo)
	if err != nil {
		return sweep.Config{}, nil, apperrors.Wrap(apperrors.ErrCodeInvalidRepo, err, "repository %q", flags.repo)
	}

	if err := validateTarget(flags.target); err != nil {
		return sweep.Config{}, nil, err
	}

	if flags.keep < 0 {
		return sweep.Config{}, nil, apperrors.New(apperrors.ErrCodeInvalidInput, "keep must be non-negative, got %d", flags.keep)
	}

	token := flags.token
	if token == "" {
		token = fileCfg.Token
	}
	if token == "" {
		token = os.Getenv(tokenEnvVar)
	}
	if token == "" {
		return sweep.Config{}, nil, apperrors.New(apperrors.ErrCodeInvalidInput,
			"no API token: set --token, %s, or token in the config file", tokenEnvVar)
	}

	delay := flags.retryDelay
	if delay == 0 {
		if delay, err = fileCfg.retryDelay(); err != nil {
			return sweep.Config{}, nil, err
		}
	}
	pageSize := flags.pageSize
	if pageSize == 0 {
		pageSize = fileCfg.PageSize
	}
	maxRetries := flags.maxRetries
	if maxRetries == 0 {
		maxRetries = fileCfg.MaxRetries
	}

	client := github.NewClient(github.Config{
		Token:      token,
		PageSize:   pageSize,
		MaxRetries: maxRetries,
		RetryDelay: delay,
	})

	mode := sweep.Live
	if flags.dryRun {
		mode = sweep.Simulate
	}

	return sweep.Config{
		Repo:        repo,
		Target:      flags.target,
		Keep:        flags.keep,
		Prereleases: flags.prereleases,
		Stale:       flags.stale,
		Mode:        mode,
		RunID:       uuid.NewString(),
	}, client, nil
}

// validateTarget requires a full MAJOR.MINOR.PATCH semantic version, with
// optional leading "v", prerelease, and build metadata. The engine's
// ordering rule is more permissive; strict validation here catches typos
// before any API call.
func validateTarget(target string) error {
	v, ok := semver.Parse(target)
	if !ok || !v.IsValid() {
		return apperrors.New(apperrors.ErrCodeInvalidVersion, "target %q is not a semantic version", target)
	}
	full := semver.FlagHasMajor | semver.FlagHasMinor | semver.FlagHasPatch
	if v.Flags&full != full {
		return apperrors.New(apperrors.ErrCodeInvalidVersion, "target %q must be MAJOR.MINOR.PATCH", target)
	}
	return nil
}
