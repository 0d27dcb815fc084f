package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	assert.Equal(t, Vec2{60, 45}, *r.Center())
	assert.True(t, r.Contains(NewVec2(10, 20)))
	assert.True(t, r.Contains(NewVec2(109.9, 69.9)))
	assert.False(t, r.Contains(NewVec2(110, 30)))
	assert.False(t, r.Contains(NewVec2(50, 19)))
}
