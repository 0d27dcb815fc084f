package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1.0, 0.0, 1.0))
	assert.Equal(t, 1.0, Clamp(2.0, 0.0, 1.0))
	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
	assert.Equal(t, 3, Clamp(7, 0, 3))
}

func TestDegRadConversion(t *testing.T) {
	assert.InDelta(t, K_HALF_PI, DegToRad(90), testDelta)
	assert.InDelta(t, 180.0, RadToDeg(K_PI), testDelta)
	assert.InDelta(t, 42.0, RadToDeg(DegToRad(42)), testDelta)
}

func TestRandomIsDeterministic(t *testing.T) {
	a := RandomVec3(NewRandom(7), -1, 1)
	b := RandomVec3(NewRandom(7), -1, 1)
	assert.Equal(t, *a, *b)
}

func TestRandomUnitValues(t *testing.T) {
	r := NewRandom(1)
	for i := 0; i < 100; i++ {
		assert.InDelta(t, 1.0, RandomUnitVec3(r).Length(), testDelta)
		assert.InDelta(t, 1.0, RandomUnitQuaternion(r).Length(), testDelta)

		x := RandomInRange(r, -3, 5)
		assert.GreaterOrEqual(t, x, -3.0)
		assert.Less(t, x, 5.0)
	}
}
