package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiterAllow(t *testing.T) {
	rl := NewIPRateLimiter(2, 10*time.Second)

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)

	ok, retryAfter := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 10*time.Second, retryAfter)

	// Other clients are tracked independently.
	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok)
}
