package worker

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fullsco_api/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "stdout"})
	code := m.Run()
	logger.Close()
	os.Exit(code)
}

type fakeSweeper struct {
	calls   atomic.Int32
	removed int
	err     error
	panics  bool
	grace   time.Duration
}

func (f *fakeSweeper) SweepOrphans(ctx context.Context, grace time.Duration) (int, error) {
	f.calls.Add(1)
	f.grace = grace
	if f.panics {
		panic("boom")
	}
	return f.removed, f.err
}

func TestNewMediaCleanupWorkerDefaults(t *testing.T) {
	w := NewMediaCleanupWorker(&fakeSweeper{}, 0, time.Second)
	assert.Equal(t, time.Hour, w.interval)
	assert.Equal(t, time.Hour, w.grace)

	w = NewMediaCleanupWorker(&fakeSweeper{}, 5*time.Minute, 2*time.Hour)
	assert.Equal(t, 5*time.Minute, w.interval)
	assert.Equal(t, 2*time.Hour, w.grace)
}

func TestRunOnce(t *testing.T) {
	ctx := context.Background()

	s := &fakeSweeper{removed: 3}
	w := NewMediaCleanupWorker(s, time.Hour, 2*time.Hour)
	assert.Equal(t, 3, w.RunOnce(ctx))
	assert.Equal(t, 2*time.Hour, s.grace)

	s = &fakeSweeper{err: errors.New("disk gone")}
	assert.Equal(t, 0, NewMediaCleanupWorker(s, time.Hour, time.Hour).RunOnce(ctx))

	s = &fakeSweeper{panics: true}
	assert.NotPanics(t, func() { NewMediaCleanupWorker(s, time.Hour, time.Hour).RunOnce(ctx) })
	assert.Equal(t, int32(1), s.calls.Load())
}

func TestStartStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewMediaCleanupWorker(&fakeSweeper{}, time.Hour, time.Hour).Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
