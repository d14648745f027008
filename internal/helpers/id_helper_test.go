package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateToteID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateToteID()
		assert.Len(t, id, ToteIDLength)
		assert.True(t, ToteIDPattern.MatchString(id))
		seen[id] = true
	}
	// 100 draws from 62^6 colliding would point at a broken RNG
	assert.Greater(t, len(seen), 95)
}

func TestToteIDPattern(t *testing.T) {
	assert.True(t, ToteIDPattern.MatchString("Abc123"))
	assert.True(t, ToteIDPattern.MatchString("ZZZZZZ"))
	assert.False(t, ToteIDPattern.MatchString("abc12"))
	assert.False(t, ToteIDPattern.MatchString("abc1234"))
	assert.False(t, ToteIDPattern.MatchString("abc 12"))
	assert.False(t, ToteIDPattern.MatchString("abc-12"))
	assert.False(t, ToteIDPattern.MatchString(""))
}

func TestExtensionForMime(t *testing.T) {
	assert.Equal(t, ".jpg", ExtensionForMime("image/jpeg"))
	assert.Equal(t, ".png", ExtensionForMime("image/png"))
	assert.Equal(t, ".webp", ExtensionForMime("image/webp"))
	assert.Equal(t, "", ExtensionForMime("image/gif"))
	assert.Equal(t, "", ExtensionForMime("text/plain"))
}
