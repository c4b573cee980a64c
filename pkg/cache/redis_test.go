package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// A nil cache is the disabled configuration; every operation must be a
// safe no-op.
func TestNilCacheIsNoop(t *testing.T) {
	var c *Cache

	val, ok := c.Get(context.Background(), "movie:detail:42")
	assert.False(t, ok)
	assert.Nil(t, val)

	c.Set(context.Background(), "movie:detail:42", []byte("{}"), time.Minute)

	assert.NoError(t, c.Close())
}
