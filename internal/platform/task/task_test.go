package task_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/mero_khata/internal/platform/task"
	"github.com/stretchr/testify/assert"
)

func TestGo_ReportsResult(t *testing.T) {
	release := make(chan struct{})
	tk := task.Go(func() error {
		<-release
		return assert.AnError
	})

	assert.NoError(t, tk.Err(), "running task has no error yet")
	close(release)

	assert.ErrorIs(t, tk.Wait(context.Background()), assert.AnError)
	assert.ErrorIs(t, tk.Err(), assert.AnError)
	select {
	case <-tk.Done():
	default:
		t.Fatal("Done should be closed after Wait returns")
	}
}

func TestWait_GivesUpWithContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	tk := task.Go(func() error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, tk.Wait(ctx), context.DeadlineExceeded)
}

func TestCompleted(t *testing.T) {
	assert.NoError(t, task.Completed(nil).Wait(context.Background()))
	assert.ErrorIs(t, task.Completed(assert.AnError).Err(), assert.AnError)
}

func TestNilTask_IsFinished(t *testing.T) {
	var tk *task.Task

	assert.NoError(t, tk.Wait(context.Background()))
	assert.NoError(t, tk.Err())
	select {
	case <-tk.Done():
	default:
		t.Fatal("nil task should report done")
	}
}
