package math

import "fmt"

/**
 * @brief A quaternion, used to represent rotational orientation.
 * Only FromRotationAxis and Normalize guarantee unit length; Zero and the
 * multiplications leave the value as computed.
 */
type Quaternion struct {
	X, Y, Z, W float64
}

/**
 * @brief Creates an identity quaternion.
 */
func NewQuaternion() *Quaternion {
	return &Quaternion{W: 1.0}
}

/**
 * @brief Sets q to the identity rotation (0, 0, 0, 1).
 */
func (q *Quaternion) Identity() *Quaternion {
	q.X, q.Y, q.Z, q.W = 0.0, 0.0, 0.0, 1.0
	return q
}

func (q *Quaternion) Zero() *Quaternion {
	q.X, q.Y, q.Z, q.W = 0.0, 0.0, 0.0, 0.0
	return q
}

func (q *Quaternion) Clone() *Quaternion {
	return &Quaternion{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

func (q *Quaternion) Set(other *Quaternion) *Quaternion {
	q.X, q.Y, q.Z, q.W = other.X, other.Y, other.Z, other.W
	return q
}

/**
 * @brief Builds a rotation of angle radians about axis, then normalizes q.
 *
 * @param axis The axis to rotate about. Expected to be unit length; this is not checked.
 * @param angle The angle in radians.
 */
func (q *Quaternion) FromRotationAxis(axis *Vec3, angle float64) *Quaternion {
	halfAngle := angle * 0.5
	s, c := ksin(halfAngle), kcos(halfAngle)

	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = c
	return q.Normalize()
}

func (q *Quaternion) LengthSquared() float64 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

/**
 * @brief Returns the normal (magnitude) of q.
 */
func (q *Quaternion) Length() float64 {
	return ksqrt(q.LengthSquared())
}

/**
 * @brief Scales q to unit length. A zero quaternion becomes NaN.
 */
func (q *Quaternion) Normalize() *Quaternion {
	l := 1.0 / q.Length()
	q.X *= l
	q.Y *= l
	q.Z *= l
	q.W *= l
	return q
}

/**
 * @brief Writes the Hamilton product q1 * q2 into q.
 * q may be q1 or q2: all eight source components are read first.
 */
func (q *Quaternion) MultiplyInto(q1, q2 *Quaternion) *Quaternion {
	x1, y1, z1, w1 := q1.X, q1.Y, q1.Z, q1.W
	x2, y2, z2, w2 := q2.X, q2.Y, q2.Z, q2.W

	q.X = w1*x2 + x1*w2 + y1*z2 - z1*y2
	q.Y = w1*y2 + y1*w2 + z1*x2 - x1*z2
	q.Z = w1*z2 + z1*w2 + x1*y2 - y1*x2
	q.W = w1*w2 - x1*x2 - y1*y2 - z1*z2
	return q
}

/**
 * @brief Right-multiplies q by other in place (q = q * other).
 */
func (q *Quaternion) Multiply(other *Quaternion) *Quaternion {
	return q.MultiplyInto(q, other)
}

/**
 * @brief Returns a new rotation matrix built from q.
 */
func (q *Quaternion) ToMat4() *Mat4 {
	return NewMat4().FromQuaternion(q)
}

// String is slow and meant for debugging only.
func (q *Quaternion) String() string {
	return fmt.Sprintf("quat: (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
}
