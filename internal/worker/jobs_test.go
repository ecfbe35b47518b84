package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/progression"
)

// fakeEngine records which engine operations the jobs invoked.
type fakeEngine struct {
	progression.Service

	accrued time.Duration
	swept   int
	saved   int
	pushed  int
	pushErr error
}

func (f *fakeEngine) AccruePassive(ctx context.Context, elapsed time.Duration) float64 {
	f.accrued += elapsed
	return 0
}

func (f *fakeEngine) SweepBoosters(ctx context.Context) int {
	f.swept++
	return 0
}

func (f *fakeEngine) Save(ctx context.Context) error {
	f.saved++
	return nil
}

func (f *fakeEngine) PushRemote(ctx context.Context) error {
	f.pushed++
	return f.pushErr
}

func TestAccrualJob_CreditsInterval(t *testing.T) {
	engine := &fakeEngine{}
	job := &AccrualJob{Engine: engine, Interval: domain.PassiveAccrualInterval}

	assert.NoError(t, job.Process(context.Background()))
	assert.Equal(t, domain.PassiveAccrualInterval, engine.accrued)
}

func TestSweepJob(t *testing.T) {
	engine := &fakeEngine{}
	job := &SweepJob{Engine: engine}

	assert.NoError(t, job.Process(context.Background()))
	assert.Equal(t, 1, engine.swept)
}

func TestAutosaveJob(t *testing.T) {
	engine := &fakeEngine{}
	job := &AutosaveJob{Engine: engine}

	assert.NoError(t, job.Process(context.Background()))
	assert.Equal(t, 1, engine.saved)
}

func TestSyncJob_LocalOnlyIsNotAnError(t *testing.T) {
	engine := &fakeEngine{pushErr: domain.ErrLocalOnly}
	job := &SyncJob{Engine: engine}

	assert.NoError(t, job.Process(context.Background()))
	assert.Equal(t, 1, engine.pushed)
}

func TestSyncJob_PropagatesFailures(t *testing.T) {
	engine := &fakeEngine{pushErr: errors.New("network down")}
	job := &SyncJob{Engine: engine}

	assert.Error(t, job.Process(context.Background()))
}
