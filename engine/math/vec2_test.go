package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Basics(t *testing.T) {
	v := NewVec2(3, 4)
	assert.InDelta(t, 5.0, v.Length(), testDelta)
	assert.InDelta(t, 25.0, v.LengthSquared(), testDelta)
	assert.InDelta(t, 11.0, v.Dot(NewVec2(1, 2)), testDelta)
	assert.Equal(t, Vec2{1, 1}, *v.Clone().Identity())
	assert.Equal(t, Vec2{}, *v.Clone().Zero())
	assert.Equal(t, Vec2{-3, -4}, *v.Clone().Negate())
	assert.Equal(t, Vec2{4, 6}, *v.Clone().Add(NewVec2(1, 2)))
	assert.Equal(t, Vec2{2, 2}, *v.Clone().Sub(NewVec2(1, 2)))
	assert.Equal(t, Vec2{6, 8}, *v.Clone().Scale(2))
	assert.Equal(t, Vec2{1.5, 2}, *v.Clone().Divide(2))
	assert.Equal(t, Vec2{7, 8}, *NewVec2(0, 0).Set(NewVec2(7, 8)))

	n := v.Clone().Normalize()
	assert.InDelta(t, 0.6, n.X, testDelta)
	assert.InDelta(t, 0.8, n.Y, testDelta)
}

func TestVec2NormalizeZero(t *testing.T) {
	v := NewVec2(0, 0).Normalize()
	assert.True(t, m.IsNaN(v.X))
	assert.True(t, m.IsNaN(v.Y))
}

func TestVec2EqualsAndDistance(t *testing.T) {
	a := NewVec2(1, 1)
	b := NewVec2(4, 5)
	assert.True(t, a.Equals(a.Clone()))
	assert.False(t, a.Equals(b))
	assert.True(t, a.Compare(NewVec2(1.01, 0.99), 0.02))
	assert.InDelta(t, 5.0, a.Distance(b), testDelta)
	assert.InDelta(t, 25.0, a.DistanceSquared(b), testDelta)
}

func TestVec2Transform(t *testing.T) {
	mt := NewMat3().MoveTo(5, 6)
	mt.M11, mt.M12 = 0, 1
	mt.M21, mt.M22 = -1, 0

	assert.True(t, NewVec2(0, 0).Transform(mt, NewVec2(1, 0)).Equals(NewVec2(5, 7)))
	assert.True(t, NewVec2(0, 0).TransformLinear(mt, NewVec2(1, 0)).Equals(NewVec2(0, 1)))

	// in place
	v := NewVec2(0, 1)
	v.Transform(mt, v)
	assert.True(t, v.Equals(NewVec2(4, 6)), v.String())
}

func TestVec2String(t *testing.T) {
	assert.Equal(t, "vec2: (0.5,-1)", NewVec2(0.5, -1).String())
}
