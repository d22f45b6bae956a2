package uuid_test

import (
	"testing"

	"github.com/KirkDiggler/paranoidworld/internal/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	a, b := gen.New(), gen.New()

	assert.True(t, uuid.IsValid(a))
	assert.NotEqual(t, a, b)
}

func TestSequenceGenerator(t *testing.T) {
	gen := uuid.NewSequenceGenerator("item")

	assert.Equal(t, "item-1", gen.New())
	assert.Equal(t, "item-2", gen.New())
	assert.False(t, uuid.IsValid("item-3"))
}
