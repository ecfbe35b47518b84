package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/hiperworks/HiperClicker_Go/internal/worker"
)

type tickJob struct {
	done chan struct{}
}

func (j *tickJob) Process(ctx context.Context) error {
	select {
	case j.done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler_RunsJobRepeatedly(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &tickJob{done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	for runs := 0; runs < 2; {
		select {
		case <-job.done:
			runs++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}
}
