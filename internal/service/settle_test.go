package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle_IsolatesFailures(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e"}

	out := settle(context.Background(), 0, keys, func(_ context.Context, k string) (string, error) {
		switch k {
		case "b":
			return "", errBoom
		case "d":
			panic("bad payload")
		}
		return k + "!", nil
	})

	require.Len(t, out, len(keys))
	assert.Equal(t, "a!", out[0].val)
	assert.ErrorIs(t, out[1].err, errBoom)
	assert.Equal(t, "c!", out[2].val)
	assert.True(t, errors.Is(out[3].err, errTaskPanicked))
	assert.Equal(t, "e!", out[4].val)
}

func TestSettle_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	keys := []string{"1", "2", "3", "4", "5", "6"}

	settle(context.Background(), 2, keys, func(_ context.Context, _ string) (int, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return 0, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestSettle_Empty(t *testing.T) {
	out := settle(context.Background(), 4, nil, func(_ context.Context, _ string) (int, error) {
		t.Fatal("fetch must not be called")
		return 0, nil
	})
	assert.Empty(t, out)
}
