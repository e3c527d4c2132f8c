package sweep

import (
	"context"

	"github.com/charmbracelet/log"

	apperrors "github.com/relsweep/relsweep/pkg/errors"
	"github.com/relsweep/relsweep/pkg/github"
)

// Config carries the validated inputs for one run.
type Config struct {
	Repo        github.Repo
	Target      string // target version, leading "v" optional
	Keep        int    // newest stable releases preserved unconditionally
	Prereleases bool   // delete prerelease versions at or below target
	Stale       bool   // delete stable versions beyond the keep window
	Mode        Mode
	RunID       string
}

// Engine runs the full sweep pipeline: fetch, classify, select, delete,
// report. Execution is fully sequential; each stage completes before the
// next begins.
type Engine struct {
	cfg     Config
	target  Version
	client  *github.Client
	logger  *log.Logger
	metrics Metrics
}

// New builds an engine and registers its metrics as the client's call
// observer, so every HTTP request of this run is counted.
func New(cfg Config, client *github.Client, logger *log.Logger) (*Engine, error) {
	target, ok := ParseVersion(cfg.Target)
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeInvalidVersion, "target %q is not a version", cfg.Target)
	}

	e := &Engine{
		cfg:    cfg,
		target: target,
		client: client,
		logger: logger,
	}
	client.SetObserver(&e.metrics)
	return e, nil
}

// Run executes the pipeline and always returns a report, even on fetch
// failure, so callers can surface the counters accumulated so far.
//
// A fetch error aborts before any deletion: partial release lists are never
// acted upon. Per-record deletion failures are isolated; the run continues
// to the next candidate and the error counter decides the exit status.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	e.logger.Info("Fetching releases", "repo", e.cfg.Repo.String())

	releases, err := e.client.ListReleases(ctx, e.cfg.Repo)
	if err != nil {
		e.metrics.Errors++
		e.logger.Error("Fetch failed", "repo", e.cfg.Repo.String(), "err", err)
		return e.report(), apperrors.Wrap(apperrors.ErrCodeNetwork, err, "fetching releases for %s", e.cfg.Repo)
	}
	e.logger.Debug("Fetched releases", "count", len(releases))

	cls := Classify(releases, e.target)
	stale := SelectStale(cls.Stable, e.cfg.Keep)
	e.logger.Debug("Classified releases",
		"prereleases", len(cls.Prereleases),
		"stable", len(cls.Stable),
		"stale", len(stale))

	orch := NewOrchestrator(e.client, e.cfg.Repo, e.cfg.Mode, e.logger, &e.metrics)

	if e.cfg.Prereleases {
		e.logger.Info("Cleaning prereleases", "count", len(cls.Prereleases))
		orch.ProcessBatch(ctx, sortReleasesDesc(cls.Prereleases), KindPrerelease)
	} else {
		e.logger.Debug("Prerelease cleanup disabled, skipping")
	}

	if e.cfg.Stale {
		e.logger.Info("Cleaning stale releases", "count", len(stale), "keep", e.cfg.Keep)
		orch.ProcessBatch(ctx, stale, KindStale)
	} else {
		e.logger.Debug("Stale release cleanup disabled, skipping")
	}

	return e.report(), nil
}

func (e *Engine) report() *Report {
	return &Report{
		Repo:        e.cfg.Repo.String(),
		Target:      e.cfg.Target,
		Keep:        e.cfg.Keep,
		Prereleases: e.cfg.Prereleases,
		Stale:       e.cfg.Stale,
		Mode:        e.cfg.Mode,
		RunID:       e.cfg.RunID,
		Metrics:     e.metrics,
	}
}
