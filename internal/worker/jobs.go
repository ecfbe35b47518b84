package worker

import (
	"context"
	"errors"
	"time"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/progression"
)

// AccrualJob credits one live tick of passive income. Interval is the
// scheduling period, which is also the elapsed time to credit.
type AccrualJob struct {
	Engine   progression.Service
	Interval time.Duration
}

func (j *AccrualJob) Process(ctx context.Context) error {
	j.Engine.AccruePassive(ctx, j.Interval)
	return nil
}

// SweepJob fires auto-tap boosters and clears expired ones.
type SweepJob struct {
	Engine progression.Service
}

func (j *SweepJob) Process(ctx context.Context) error {
	j.Engine.SweepBoosters(ctx)
	return nil
}

// AutosaveJob flushes the full state to local storage.
type AutosaveJob struct {
	Engine progression.Service
}

func (j *AutosaveJob) Process(ctx context.Context) error {
	return j.Engine.Save(ctx)
}

// SyncJob pushes state to the remote store. Running without an identity
// is not an error; the push is simply skipped.
type SyncJob struct {
	Engine progression.Service
}

func (j *SyncJob) Process(ctx context.Context) error {
	if err := j.Engine.PushRemote(ctx); err != nil && !errors.Is(err, domain.ErrLocalOnly) {
		return err
	}
	return nil
}
