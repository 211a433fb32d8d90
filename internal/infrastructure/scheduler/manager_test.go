package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/photobooth/internal/shared/logger"
)

type countingJob struct {
	calls atomic.Int32
}

func (j *countingJob) Execute(ctx context.Context) (int, error) {
	j.calls.Add(1)
	return 2, nil
}

func TestSchedulerManager_RegisterRetentionJob(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	job := &countingJob{}
	require.NoError(t, m.RegisterRetentionJob(job, time.Hour))
	require.Len(t, m.Jobs(), 1)
	assert.Equal(t, "media-retention", m.Jobs()[0].Name())

	m.Start()
	assert.True(t, m.IsStarted())

	assert.Eventually(t, func() bool { return job.calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
}

func TestSchedulerManager_RejectsNonPositiveInterval(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Error(t, m.RegisterRetentionJob(&countingJob{}, 0))
	assert.Empty(t, m.Jobs())
}
