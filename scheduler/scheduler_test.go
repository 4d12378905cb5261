package scheduler

import (
	"context"
	"leaguehub/pkg/config"
	"leaguehub/pkg/models/champion"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWarmer struct {
	calls atomic.Int32
}

func (w *countingWarmer) Warm(ctx context.Context) (*champion.Listing, error) {
	w.calls.Add(1)
	return &champion.Listing{Version: "14.1.1"}, nil
}

type countingUploader struct {
	keys chan string
}

func (u *countingUploader) UploadToS3Bucket(ctx context.Context, objectKey string) error {
	u.keys <- objectKey
	return nil
}

func TestSchedulerRunsJobs(t *testing.T) {
	warmer := &countingWarmer{}
	uploader := &countingUploader{keys: make(chan string, 10)}

	s, err := New(context.Background(), &SchedulerDeps{
		Config:   &config.SchedulerConfiguration{WarmInterval: time.Hour, ShipInterval: 20 * time.Millisecond},
		Warmer:   warmer,
		Uploader: uploader,
	})
	require.NoError(t, err)

	s.Start()
	defer s.Shutdown()

	// The warmup starts immediately.
	assert.Eventually(t, func() bool { return warmer.calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	select {
	case key := <-uploader.keys:
		assert.Regexp(t, `^api/\d{4}-\d{2}-\d{2}/\d{6}\.log$`, key)
	case <-time.After(2 * time.Second):
		t.Fatal("logs were not shipped")
	}
}

func TestSchedulerDisabledJobs(t *testing.T) {
	s, err := New(context.Background(), &SchedulerDeps{
		Config: &config.SchedulerConfiguration{},
		Warmer: &countingWarmer{},
	})
	require.NoError(t, err)

	assert.Empty(t, s.scheduler.Jobs())

	s.Start()
	assert.NoError(t, s.Shutdown())
}
