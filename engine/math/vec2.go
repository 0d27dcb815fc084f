package math

import "fmt"

// Vec2 represents a point or direction in 2D space.
// Every mutating method works in place and returns the receiver so calls can be chained.
type Vec2 struct {
	X, Y float64
}

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float64) *Vec2 {
	return &Vec2{X: x, Y: y}
}

/**
 * @brief Sets all components to 1.0.
 */
func (v *Vec2) Identity() *Vec2 {
	v.X, v.Y = 1.0, 1.0
	return v
}

/**
 * @brief Sets all components to 0.0.
 */
func (v *Vec2) Zero() *Vec2 {
	v.X, v.Y = 0.0, 0.0
	return v
}

/**
 * @brief Returns a new, independent copy of v.
 */
func (v *Vec2) Clone() *Vec2 {
	return &Vec2{X: v.X, Y: v.Y}
}

/**
 * @brief Copies the components of other into v.
 */
func (v *Vec2) Set(other *Vec2) *Vec2 {
	v.X, v.Y = other.X, other.Y
	return v
}

/**
 * @brief Multiplies every component by s.
 */
func (v *Vec2) Scale(s float64) *Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

/**
 * @brief Multiplies every component by 1/s. A zero s yields Inf/NaN components.
 */
func (v *Vec2) Divide(s float64) *Vec2 {
	return v.Scale(1.0 / s)
}

func (v *Vec2) Negate() *Vec2 {
	v.X, v.Y = -v.X, -v.Y
	return v
}

/**
 *  Adds other to v.
 */
func (v *Vec2) Add(other *Vec2) *Vec2 {
	v.X += other.X
	v.Y += other.Y
	return v
}

/**
 * Subtracts other from v.
 */
func (v *Vec2) Sub(other *Vec2) *Vec2 {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v *Vec2) Dot(other *Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

/**
 * Returns the squared length of the provided vector.
 */
func (v *Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v *Vec2) Length() float64 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Normalizes v to unit length. A zero vector becomes NaN.
 */
func (v *Vec2) Normalize() *Vec2 {
	return v.Divide(v.Length())
}

/**
 * @brief Compares all elements of v and other and ensures the difference is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v *Vec2) Compare(other *Vec2, tolerance float64) bool {
	return kabs(v.X-other.X) <= tolerance && kabs(v.Y-other.Y) <= tolerance
}

/**
 * @brief Compare with the default K_FLOAT_EPSILON tolerance.
 */
func (v *Vec2) Equals(other *Vec2) bool {
	return v.Compare(other, K_FLOAT_EPSILON)
}

/**
 * @brief Returns the distance between v and other.
 */
func (v *Vec2) Distance(other *Vec2) float64 {
	return ksqrt(v.DistanceSquared(other))
}

func (v *Vec2) DistanceSquared(other *Vec2) float64 {
	dx, dy := other.X-v.X, other.Y-v.Y
	return dx*dx + dy*dy
}

/**
 * @brief Writes the affine transform of src by m into v.
 * Follows the CSS matrix(a, b, c, d, e, f) convention: x' = a*x + c*y + e.
 * v and src may be the same vector.
 */
func (v *Vec2) Transform(mt *Mat3, src *Vec2) *Vec2 {
	x, y := src.X, src.Y
	v.X = mt.M11*x + mt.M21*y + mt.M13
	v.Y = mt.M12*x + mt.M22*y + mt.M23
	return v
}

/**
 * @brief Like Transform but ignores the translation column.
 */
func (v *Vec2) TransformLinear(mt *Mat3, src *Vec2) *Vec2 {
	x, y := src.X, src.Y
	v.X = mt.M11*x + mt.M21*y
	v.Y = mt.M12*x + mt.M22*y
	return v
}

// String is slow and meant for debugging only.
func (v *Vec2) String() string {
	return fmt.Sprintf("vec2: (%v,%v)", v.X, v.Y)
}
