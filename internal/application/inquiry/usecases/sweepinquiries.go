package usecases

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/infrastructure/metrics"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// SweepInquiriesUseCase pages through open inquiries and evaluates them in
// parallel. One failing inquiry does not stop the sweep.
type SweepInquiriesUseCase struct {
	inquiries inquiry.Repository
	evaluator *EvaluateInquiryUseCase
	policy    PolicyReader
	workers   int
	batchSize int
	logger    logger.Interface
}

func NewSweepInquiriesUseCase(
	inquiries inquiry.Repository,
	evaluator *EvaluateInquiryUseCase,
	policy PolicyReader,
	workers, batchSize int,
	logger logger.Interface,
) *SweepInquiriesUseCase {
	if workers < 1 {
		workers = 1
	}
	if batchSize < 1 {
		batchSize = 100
	}
	return &SweepInquiriesUseCase{
		inquiries: inquiries,
		evaluator: evaluator,
		policy:    policy,
		workers:   workers,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Execute runs one sweep cycle and returns the number of events emitted.
func (uc *SweepInquiriesUseCase) Execute(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() { metrics.SweepDuration.Observe(time.Since(start).Seconds()) }()

	p, err := uc.policy.Policy(ctx)
	if err != nil {
		return 0, err
	}

	var (
		emitted   atomic.Int64
		failed    atomic.Int64
		evaluated int
		afterID   uint
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)

	for {
		page, err := uc.inquiries.ListOpen(gctx, afterID, uc.batchSize)
		if err != nil {
			_ = g.Wait()
			return int(emitted.Load()), err
		}
		for _, i := range page {
			id := i.ID()
			g.Go(func() error {
				n, err := uc.evaluator.Evaluate(gctx, id, p.SLA)
				emitted.Add(int64(n))
				if err != nil {
					failed.Add(1)
					uc.logger.Warnw("inquiry evaluation failed", "inquiry_id", id, "error", err)
				}
				return nil
			})
		}
		evaluated += len(page)
		if len(page) < uc.batchSize {
			break
		}
		afterID = page[len(page)-1].ID()
	}

	if err := g.Wait(); err != nil {
		return int(emitted.Load()), err
	}
	if err := ctx.Err(); err != nil {
		return int(emitted.Load()), err
	}

	uc.logger.Infow("SLA sweep completed",
		"evaluated", evaluated,
		"emitted", emitted.Load(),
		"failed", failed.Load(),
		"duration", time.Since(start).String(),
	)
	return int(emitted.Load()), nil
}
