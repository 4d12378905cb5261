package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedDelayWaits(t *testing.T) {
	th := NewFixedDelay(30 * time.Millisecond)

	start := time.Now()
	err := th.Wait(context.Background())

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestFixedDelayDefault(t *testing.T) {
	assert.Equal(t, DefaultDelay, NewFixedDelay(0).Delay())
}

func TestFixedDelayCanceled(t *testing.T) {
	th := NewFixedDelay(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, th.Wait(ctx), context.Canceled)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Wait(context.Background()))
}
