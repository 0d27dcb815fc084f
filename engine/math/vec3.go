package math

import "fmt"

// Vec3 represents a point or direction in 3D space.
// Every mutating method works in place and returns the receiver so calls can be chained.
type Vec3 struct {
	X, Y, Z float64
}

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float64) *Vec3 {
	return &Vec3{X: x, Y: y, Z: z}
}

// The shared axes are handed out as fresh copies, so no caller can alter them for another.

/** @brief Creates and returns a 3-component vector with all components set to 0.0. */
func NewVec3Zero() *Vec3 { return &Vec3{} }

/** @brief Unit vector along +X. */
func AxisX() *Vec3 { return &Vec3{1.0, 0.0, 0.0} }

/** @brief Unit vector along +Y. */
func AxisY() *Vec3 { return &Vec3{0.0, 1.0, 0.0} }

/** @brief Unit vector along +Z. */
func AxisZ() *Vec3 { return &Vec3{0.0, 0.0, 1.0} }

/** @brief Unit vector along -X. */
func AxisNegX() *Vec3 { return &Vec3{-1.0, 0.0, 0.0} }

/** @brief Unit vector along -Y. */
func AxisNegY() *Vec3 { return &Vec3{0.0, -1.0, 0.0} }

/** @brief Unit vector along -Z. */
func AxisNegZ() *Vec3 { return &Vec3{0.0, 0.0, -1.0} }

/**
 * @brief Sets all components to 1.0.
 */
func (v *Vec3) Identity() *Vec3 {
	v.X, v.Y, v.Z = 1.0, 1.0, 1.0
	return v
}

/**
 * @brief Sets all components to 0.0.
 */
func (v *Vec3) Zero() *Vec3 {
	v.X, v.Y, v.Z = 0.0, 0.0, 0.0
	return v
}

func (v *Vec3) Clone() *Vec3 {
	return &Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

func (v *Vec3) Set(other *Vec3) *Vec3 {
	v.X, v.Y, v.Z = other.X, other.Y, other.Z
	return v
}

/**
 * @brief Multiplies every component by s.
 */
func (v *Vec3) Scale(s float64) *Vec3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

/**
 * @brief Multiplies every component by 1/s. A zero s yields Inf/NaN components.
 */
func (v *Vec3) Divide(s float64) *Vec3 {
	return v.Scale(1.0 / s)
}

func (v *Vec3) Negate() *Vec3 {
	v.X, v.Y, v.Z = -v.X, -v.Y, -v.Z
	return v
}

/**
 * @brief Adds other to v.
 */
func (v *Vec3) Add(other *Vec3) *Vec3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

/**
 * @brief Subtracts other from v.
 */
func (v *Vec3) Sub(other *Vec3) *Vec3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

/**
 * @brief Returns the dot product between v and other.
 * Typically used to calculate the difference in direction.
 */
func (v *Vec3) Dot(other *Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Overwrites v with the cross product v × other.
 * All input components are read before any of them is written,
 * so other may be v itself.
 */
func (v *Vec3) Cross(other *Vec3) *Vec3 {
	x1, y1, z1 := v.X, v.Y, v.Z
	x2, y2, z2 := other.X, other.Y, other.Z
	v.X = y1*z2 - z1*y2
	v.Y = z1*x2 - x1*z2
	v.Z = x1*y2 - y1*x2
	return v
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v *Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v *Vec3) Length() float64 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Normalizes v to unit length. A zero vector becomes NaN.
 */
func (v *Vec3) Normalize() *Vec3 {
	return v.Divide(v.Length())
}

/**
 * @brief Compares all elements of v and other and ensures the difference is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v *Vec3) Compare(other *Vec3, tolerance float64) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Compare with the default K_FLOAT_EPSILON tolerance.
 */
func (v *Vec3) Equals(other *Vec3) bool {
	return v.Compare(other, K_FLOAT_EPSILON)
}

/**
 * @brief Returns the distance between v and other.
 */
func (v *Vec3) Distance(other *Vec3) float64 {
	return ksqrt(v.DistanceSquared(other))
}

func (v *Vec3) DistanceSquared(other *Vec3) float64 {
	dx, dy, dz := other.X-v.X, other.Y-v.Y, other.Z-v.Z
	return dx*dx + dy*dy + dz*dz
}

/**
 * @brief Returns the distance between v and other on the XY plane, ignoring Z.
 */
func (v *Vec3) Distance2D(other *Vec3) float64 {
	return ksqrt(v.Distance2DSquared(other))
}

func (v *Vec3) Distance2DSquared(other *Vec3) float64 {
	dx, dy := other.X-v.X, other.Y-v.Y
	return dx*dx + dy*dy
}

/**
 * @brief Writes the affine transform of src by mt into v, ignoring the last matrix row.
 * src is read completely before v is written, so both may be the same vector.
 */
func (v *Vec3) Transform(mt *Mat4, src *Vec3) *Vec3 {
	x, y, z := src.X, src.Y, src.Z
	v.X = mt.M11*x + mt.M12*y + mt.M13*z + mt.M14
	v.Y = mt.M21*x + mt.M22*y + mt.M23*z + mt.M24
	v.Z = mt.M31*x + mt.M32*y + mt.M33*z + mt.M34
	return v
}

/**
 * @brief Applies the full 4x4 matrix to src (w = 1) and divides by the resulting w.
 * Used for points run through a perspective matrix. A zero w yields Inf/NaN.
 */
func (v *Vec3) Project(mt *Mat4, src *Vec3) *Vec3 {
	x, y, z := src.X, src.Y, src.Z
	w := mt.M41*x + mt.M42*y + mt.M43*z + mt.M44
	v.X = mt.M11*x + mt.M12*y + mt.M13*z + mt.M14
	v.Y = mt.M21*x + mt.M22*y + mt.M23*z + mt.M24
	v.Z = mt.M31*x + mt.M32*y + mt.M33*z + mt.M34
	return v.Divide(w)
}

// String is slow and meant for debugging only.
func (v *Vec3) String() string {
	return fmt.Sprintf("vec3: (%v,%v,%v)", v.X, v.Y, v.Z)
}
