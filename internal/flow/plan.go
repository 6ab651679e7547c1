package flow

import (
	"context"
	"fmt"
	"time"
)

// Step is one named stage of a flow.
type Step struct {
	Name string
	Run  func(ctx context.Context, r *Runner) error
}

// Plan is an ordered flow. Steps run one after another and the first error
// ends the run.
type Plan []Step

func (p Plan) Run(ctx context.Context, r *Runner) error {
	start := time.Now()
	for i, step := range p {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("aborted before step %s: %w", step.Name, err)
		}
		log := r.logger.WithValues("step", step.Name, "index", i+1, "of", len(p))
		log.Info("step started")

		stepStart := time.Now()
		if err := step.Run(ctx, r); err != nil {
			log.Error(err, "step failed", "elapsed", time.Since(stepStart).Truncate(time.Millisecond).String())
			r.logWhere(ctx)
			return fmt.Errorf("step %s: %w", step.Name, err)
		}
		log.Info("step finished", "elapsed", time.Since(stepStart).Truncate(time.Millisecond).String())
	}
	r.logger.Info("flow finished", "steps", len(p), "elapsed", time.Since(start).Truncate(time.Millisecond).String())
	return nil
}

// logWhere records the page the browser was on when a step failed.
func (r *Runner) logWhere(ctx context.Context) {
	// the run ctx may already be dead; the snapshot still deserves a try
	snapCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	snap, err := r.driver.Snapshot(snapCtx)
	if err != nil {
		r.logger.V(1).Info("snapshot unavailable", "err", err.Error())
		return
	}
	r.logger.Info("browser location at failure", "page", snap.String())
}
