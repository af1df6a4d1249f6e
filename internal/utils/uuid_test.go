package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
	assert.Less(t, first, second, "v7 identifiers sort by creation time")
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("0190b6c4-7c7a-7cc0-8000-000000000001"))
	assert.False(t, IsUUID(""))
	assert.False(t, IsUUID("not-a-uuid"))
	assert.False(t, IsUUID("{0190b6c4-7c7a-7cc0-8000-000000000001}"))
	assert.False(t, IsUUID("0190b6c47c7a7cc08000000000000001"))
}
