package math

import (
	m "math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float64 = m.Pi
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float64 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float64 = 0.5 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float64 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float64 = 180.0 / K_PI
	/** @brief Default tolerance used by the Equals helpers. */
	K_FLOAT_EPSILON float64 = 1e-9
	/**
	 * @brief Determinants with a magnitude below this value are treated as singular.
	 * Inversion leaves the receiver untouched and returns nil.
	 */
	K_SINGULAR_THRESHOLD float64 = 0.0001
)

/**
 * Every type in this package goes through these helpers so that all of them
 * share the exact same scalar primitives.
 */
func ksin[T constraints.Float](x T) T {
	return T(m.Sin(float64(x)))
}

func kcos[T constraints.Float](x T) T {
	return T(m.Cos(float64(x)))
}

func ktan[T constraints.Float](x T) T {
	return T(m.Tan(float64(x)))
}

func ksqrt[T constraints.Float](x T) T {
	return T(m.Sqrt(float64(x)))
}

func kabs[T constraints.Float](x T) T {
	return T(m.Abs(float64(x)))
}

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

/**
 * @brief Converts provided degrees to radians.
 */
func DegToRad(degrees float64) float64 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 */
func RadToDeg(radians float64) float64 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// NewRandom returns a deterministic generator for the Random* helpers.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

/**
 * @brief Returns a random value in [min, max).
 */
func RandomInRange(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

/**
 * @brief Returns a vector whose components are each in [min, max).
 */
func RandomVec3(r *rand.Rand, min, max float64) *Vec3 {
	return NewVec3(RandomInRange(r, min, max), RandomInRange(r, min, max), RandomInRange(r, min, max))
}

/**
 * @brief Returns a random unit-length vector.
 * Rejects samples that are too short to normalise reliably.
 */
func RandomUnitVec3(r *rand.Rand) *Vec3 {
	for {
		v := RandomVec3(r, -1.0, 1.0)
		l2 := v.LengthSquared()
		if l2 > 1e-6 && l2 <= 1.0 {
			return v.Normalize()
		}
	}
}

/**
 * @brief Returns a random rotation as a unit quaternion.
 */
func RandomUnitQuaternion(r *rand.Rand) *Quaternion {
	return NewQuaternion().FromRotationAxis(RandomUnitVec3(r), RandomInRange(r, -K_PI, K_PI))
}
