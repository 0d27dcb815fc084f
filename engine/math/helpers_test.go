package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

const testDelta = 1e-9

func assertVec3(t *testing.T, want, got *Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, testDelta, "x")
	assert.InDelta(t, want.Y, got.Y, testDelta, "y")
	assert.InDelta(t, want.Z, got.Z, testDelta, "z")
}

func assertElements(t *testing.T, want, got []float64) {
	t.Helper()
	assert.InDeltaSlice(t, want, got, 1e-7)
}

// randomAffine returns a rotation, scale and translation whose linear block is well conditioned.
func randomAffine(r *rand.Rand) *Mat4 {
	m := NewMat4().FromQuaternion(RandomUnitQuaternion(r))
	m.Scale(RandomInRange(r, 0.5, 2.0), RandomInRange(r, 0.5, 2.0), RandomInRange(r, 0.5, 2.0))
	return m.MoveToVector(RandomVec3(r, -10.0, 10.0))
}

func randomMat3(r *rand.Rand) *Mat3 {
	for {
		var el [9]float64
		for i := range el {
			el[i] = RandomInRange(r, -2.0, 2.0)
		}
		m := NewMat3().FromArray(el)
		if kabs(m.Determinant()) > 0.1 {
			return m
		}
	}
}

func toMgl3(m *Mat3) mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{m.M11, m.M12, m.M13},
		mgl64.Vec3{m.M21, m.M22, m.M23},
		mgl64.Vec3{m.M31, m.M32, m.M33},
	)
}

func toMgl4(m *Mat4) mgl64.Mat4 {
	return mgl64.Mat4FromRows(
		mgl64.Vec4{m.M11, m.M12, m.M13, m.M14},
		mgl64.Vec4{m.M21, m.M22, m.M23, m.M24},
		mgl64.Vec4{m.M31, m.M32, m.M33, m.M34},
		mgl64.Vec4{m.M41, m.M42, m.M43, m.M44},
	)
}

func mglRows3(m mgl64.Mat3) []float64 {
	out := make([]float64, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out = append(out, m.At(row, col))
		}
	}
	return out
}

func mglRows4(m mgl64.Mat4) []float64 {
	out := make([]float64, 0, 16)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out = append(out, m.At(row, col))
		}
	}
	return out
}

func s4(a [4]float64) []float64   { return a[:] }
func s9(a [9]float64) []float64   { return a[:] }
func s16(a [16]float64) []float64 { return a[:] }
