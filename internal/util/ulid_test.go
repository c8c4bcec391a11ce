package util

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID_ParsesAndIncreases(t *testing.T) {
	prev := NewULID()
	_, err := ulid.ParseStrict(prev)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		next := NewULID()
		assert.Len(t, next, 26)
		assert.Greater(t, next, prev)
		prev = next
	}
}
