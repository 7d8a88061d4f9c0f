package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchKeys(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "search:2026-03-01:10:00-12:00", SearchKey(day, "10:00", "12:00"))
	assert.Equal(t, "search:2026-03-01:*", SearchDatePattern(day))
}

func TestNop_AlwaysMisses(t *testing.T) {
	var c Nop
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1, time.Minute))

	var v int
	assert.False(t, c.Get(ctx, "k", &v))
	assert.NoError(t, c.DelPattern(ctx, "*"))
}

func TestRedis_RoundTripAndInvalidate(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set; skipping integration test")
	}

	ctx := context.Background()
	c, err := NewRedis(ctx, url, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	key := SearchKey(day, "10:00", "12:00")

	require.NoError(t, c.Set(ctx, key, []string{"a", "b"}, time.Minute))

	var got []string
	require.True(t, c.Get(ctx, key, &got))
	assert.Equal(t, []string{"a", "b"}, got)

	require.NoError(t, c.DelPattern(ctx, SearchDatePattern(day)))
	assert.False(t, c.Get(ctx, key, &got))
}
