package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/estatehub/internal/shared/logger"
)

type countingJob struct {
	calls atomic.Int32
	err   error
}

func (j *countingJob) Execute(ctx context.Context) (int, error) {
	j.calls.Add(1)
	if j.err != nil {
		return 0, j.err
	}
	return 1, nil
}

func TestSchedulerManager_RunsSweepImmediately(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewDiscardLogger())
	require.NoError(t, err)

	job := &countingJob{}
	require.NoError(t, m.RegisterSLASweepJob(job, time.Hour))
	require.Len(t, m.Jobs(), 1)
	assert.Equal(t, "sla-sweep", m.Jobs()[0].Name())

	_, ok := m.LastSweep()
	assert.False(t, ok)

	m.Start()
	m.Start()
	assert.True(t, m.IsStarted())

	assert.Eventually(t, func() bool {
		_, ok := m.LastSweep()
		return ok
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), job.calls.Load())

	run, _ := m.LastSweep()
	assert.Equal(t, 1, run.Notified)
	assert.NoError(t, run.Err)

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
	require.NoError(t, m.Stop())
}

func TestSchedulerManager_RecordsFailedSweep(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewDiscardLogger())
	require.NoError(t, err)

	job := &countingJob{err: errors.New("database is down")}
	require.NoError(t, m.RegisterSLASweepJob(job, time.Hour))
	m.Start()
	t.Cleanup(func() { _ = m.Stop() })

	assert.Eventually(t, func() bool {
		_, ok := m.LastSweep()
		return ok
	}, 2*time.Second, 10*time.Millisecond)

	run, _ := m.LastSweep()
	assert.ErrorContains(t, run.Err, "database is down")
	assert.Zero(t, run.Notified)
}

func TestSchedulerManager_RejectsNilJob(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewDiscardLogger())
	require.NoError(t, err)

	assert.Error(t, m.RegisterSLASweepJob(nil, time.Minute))
	assert.Empty(t, m.Jobs())
}
