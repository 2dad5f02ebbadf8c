package cron

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCleaner struct {
	calls atomic.Int32
	days  atomic.Int32
	err   error
}

func (f *fakeCleaner) CleanupOldLogs(days int) (int64, error) {
	f.calls.Add(1)
	f.days.Store(int32(days))
	return 3, f.err
}

func TestStartCleanupTaskRunsImmediately(t *testing.T) {
	cleaner := &fakeCleaner{}
	c, err := StartCleanupTask(cleaner, "@daily", 30, zap.NewNop())
	require.NoError(t, err)
	defer c.Stop()

	assert.Eventually(t, func() bool { return cleaner.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(30), cleaner.days.Load())
}

func TestStartCleanupTaskRejectsBadInput(t *testing.T) {
	_, err := StartCleanupTask(&fakeCleaner{}, "not a schedule", 30, zap.NewNop())
	assert.Error(t, err)

	_, err = StartCleanupTask(&fakeCleaner{}, "@daily", 0, zap.NewNop())
	assert.Error(t, err)
}

func TestRunCleanupSwallowsErrors(t *testing.T) {
	cleaner := &fakeCleaner{err: errors.New("db down")}
	runCleanup(cleaner, 7, zap.NewNop())
	assert.Equal(t, int32(1), cleaner.calls.Load())
}
