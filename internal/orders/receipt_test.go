package orders

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptGeneratorFormat(t *testing.T) {
	g := NewReceiptGenerator("receipt")

	r := g.Generate()
	parts := strings.Split(r, "_")
	require.Len(t, parts, 3)
	assert.Equal(t, "receipt", parts[0])

	millis, err := strconv.ParseInt(parts[1], 10, 64)
	require.NoError(t, err)
	assert.Greater(t, millis, int64(0))

	assert.Len(t, parts[2], 8)
}

func TestReceiptGeneratorBestEffortUniqueness(t *testing.T) {
	g := NewReceiptGenerator("receipt")

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		r := g.Generate()
		assert.False(t, seen[r], "duplicate receipt %s", r)
		seen[r] = true
	}
}
