package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)

	req.Equal(time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(2*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(4*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(4*time.Millisecond, b.NextDuration)
	req.Equal(4*time.Millisecond, b.LastDuration)

	b.Reset()
	req.Equal(time.Millisecond, b.NextDuration)
}

func TestBackoffCancelled(t *testing.T) {
	b := NewExponential(time.Hour, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, b.Backoff(ctx), context.Canceled)
}
