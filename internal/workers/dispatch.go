package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/khelan-mehta/cookie/internal/domain"
	"github.com/khelan-mehta/cookie/internal/livesync"
	"github.com/khelan-mehta/cookie/pkg/e"
)

// JobSource is the blocking end of the dispatch queue.
type JobSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.DispatchJob, error)
}

type CaseLoader interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.DistressCase, error)
	AttachAdvisory(ctx context.Context, caseID uuid.UUID, severity domain.Severity, guidance string) error
}

type ResponderFinder interface {
	FindEligibleResponders(ctx context.Context, c *domain.DistressCase) ([]domain.NearbyResponder, error)
}

type AdvisoryScorer interface {
	Score(ctx context.Context, petName, description string) (domain.Severity, string, error)
}

// Dispatcher drains the dispatch queue: for every new case it fans
// new-distress out to eligible responders' feeds and, when a scorer is
// configured, asks for the advisory annotation. Scorer failures are logged
// and dropped; they never touch the case.
type Dispatcher struct {
	queue    JobSource
	cases    CaseLoader
	matcher  ResponderFinder
	notifier livesync.Notifier
	scorer   AdvisoryScorer // nil when advisory is disabled
	logger   *slog.Logger
	poolSize int
}

func NewDispatcher(
	queue JobSource,
	cases CaseLoader,
	matcher ResponderFinder,
	notifier livesync.Notifier,
	scorer AdvisoryScorer,
	poolSize int,
	logger *slog.Logger,
) *Dispatcher {
	if poolSize <= 0 {
		poolSize = 4
	}
	return &Dispatcher{
		queue:    queue,
		cases:    cases,
		matcher:  matcher,
		notifier: notifier,
		scorer:   scorer,
		logger:   logger,
		poolSize: poolSize,
	}
}

// Run blocks until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < d.poolSize; i++ {
		g.Go(func() error {
			d.worker(ctx)
			return nil
		})
	}
	return g.Wait()
}

func (d *Dispatcher) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, err := d.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || errors.Is(err, context.Canceled) {
				continue
			}
			d.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		d.process(ctx, job)
	}
}

func (d *Dispatcher) process(ctx context.Context, job domain.DispatchJob) {
	c, err := d.cases.Get(ctx, job.CaseID)
	if err != nil {
		d.logger.Warn("dispatch job for unknown case",
			slog.String("case_id", job.CaseID.String()),
			slog.Any("error", err),
		)
		return
	}
	if !c.Status.Open() {
		// cancelled before we got to it
		return
	}

	d.fanOut(ctx, c)

	if d.scorer != nil {
		d.score(ctx, c)
	}
}

func (d *Dispatcher) fanOut(ctx context.Context, c *domain.DistressCase) {
	eligible, err := d.matcher.FindEligibleResponders(ctx, c)
	if err != nil {
		d.logger.Error("matching failed",
			slog.String("case_id", c.ID.String()),
			slog.Any("error", err),
		)
		return
	}
	if len(eligible) == 0 {
		// normal outcome: the case stays pending, responders find it by polling
		d.logger.Info("no eligible responders nearby", slog.String("case_id", c.ID.String()))
		return
	}

	ev := domain.NewSyncEvent(domain.EventNewDistress, c.ID)
	p := c.Location
	ev.Location = &p

	for _, r := range eligible {
		if err := d.notifier.NotifyTopic(ctx, r.ResponderID, ev); err != nil {
			d.logger.Warn("notify failed",
				slog.String("case_id", c.ID.String()),
				slog.String("responder_id", r.ResponderID.String()),
				slog.Any("error", err),
			)
		}
	}
	d.logger.Info("case dispatched",
		slog.String("case_id", c.ID.String()),
		slog.Int("responders", len(eligible)),
	)
}

func (d *Dispatcher) score(ctx context.Context, c *domain.DistressCase) {
	severity, guidance, err := d.scorer.Score(ctx, c.PetName, c.Description)
	if err != nil {
		// tolerated: the case is fully functional without advisory output
		d.logger.Warn("advisory scorer unavailable",
			slog.String("case_id", c.ID.String()),
			slog.Any("error", err),
		)
		return
	}
	if err := d.cases.AttachAdvisory(ctx, c.ID, severity, guidance); err != nil {
		d.logger.Warn("attach advisory failed",
			slog.String("case_id", c.ID.String()),
			slog.Any("error", err),
		)
	}
}
