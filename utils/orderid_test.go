package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderIDFormat(t *testing.T) {
	id := GenerateOrderID()

	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "ORD", parts[0])
	assert.NotEmpty(t, parts[1])
	assert.Len(t, parts[2], 8)
}

func TestGenerateOrderIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateOrderID()
		assert.False(t, seen[id], "duplicate order id %s", id)
		seen[id] = true
	}
}
