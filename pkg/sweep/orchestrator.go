package sweep

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/relsweep/relsweep/pkg/github"
)

// Mode selects between live execution and simulation.
type Mode int

const (
	// Live performs real deletions against the API.
	Live Mode = iota
	// Simulate logs intended actions without any network calls.
	Simulate
)

func (m Mode) String() string {
	if m == Simulate {
		return "dry-run"
	}
	return "live"
}

// Kind labels which deletion batch a release belongs to.
type Kind int

const (
	KindPrerelease Kind = iota
	KindStale
)

func (k Kind) String() string {
	if k == KindPrerelease {
		return "prerelease"
	}
	return "stale release"
}

// Outcome records what happened to a single deletion candidate.
type Outcome struct {
	ReleaseDeleted bool
	TagDeleted     bool
	Err            error
}

// Orchestrator executes (or simulates) release and tag deletions one at a
// time, recording outcomes into the shared metrics. One candidate's failure
// never stops the rest of the batch.
type Orchestrator struct {
	client  *github.Client
	repo    github.Repo
	mode    Mode
	logger  *log.Logger
	metrics *Metrics
}

// NewOrchestrator wires an orchestrator to a client, repository and metrics.
func NewOrchestrator(client *github.Client, repo github.Repo, mode Mode, logger *log.Logger, metrics *Metrics) *Orchestrator {
	return &Orchestrator{
		client:  client,
		repo:    repo,
		mode:    mode,
		logger:  logger,
		metrics: metrics,
	}
}

// ProcessBatch runs Process over every release in order.
func (o *Orchestrator) ProcessBatch(ctx context.Context, releases []github.Release, kind Kind) {
	for _, rel := range releases {
		o.Process(ctx, rel, kind)
	}
}

// Process deletes a single release and its tag, or logs the intent in
// Simulate mode.
//
// A release-deletion failure is fatal for this record: the error counter
// grows and the tag is left alone. A tag-deletion failure after a
// successful release deletion is only a warning, since the tag may already
// be absent; the release still counts as deleted.
func (o *Orchestrator) Process(ctx context.Context, rel github.Release, kind Kind) Outcome {
	if o.mode == Simulate {
		o.logger.Info("Would delete "+kind.String(), "tag", rel.TagName, "id", rel.ID)
		o.countDeleted(kind)
		return Outcome{ReleaseDeleted: true}
	}

	if err := o.client.DeleteRelease(ctx, o.repo, rel.ID); err != nil {
		o.metrics.Errors++
		o.logger.Error("Failed to delete "+kind.String(), "tag", rel.TagName, "id", rel.ID, "err", err)
		return Outcome{Err: err}
	}
	o.countDeleted(kind)
	o.logger.Info("Deleted "+kind.String(), "tag", rel.TagName, "id", rel.ID)

	out := Outcome{ReleaseDeleted: true}
	if err := o.client.DeleteTag(ctx, o.repo, rel.TagName); err != nil {
		o.logger.Warn("Release deleted but tag removal failed", "tag", rel.TagName, "err", err)
		return out
	}
	o.metrics.TagsDeleted++
	o.logger.Debug("Deleted tag", "tag", rel.TagName)
	out.TagDeleted = true
	return out
}

func (o *Orchestrator) countDeleted(kind Kind) {
	if kind == KindPrerelease {
		o.metrics.PrereleasesDeleted++
	} else {
		o.metrics.StaleDeleted++
	}
}
