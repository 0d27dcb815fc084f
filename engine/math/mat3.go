package math

/**
 * @brief A 3x3 matrix, stored row-major. Used as a 2D affine transform:
 * the upper-left 2x2 block is the linear part and M13/M23 hold the translation.
 */
type Mat3 struct {
	M11, M12, M13 float64
	M21, M22, M23 float64
	M31, M32, M33 float64
}

/**
 * @brief Creates and returns an identity matrix.
 */
func NewMat3() *Mat3 {
	return (&Mat3{}).Identity()
}

// Mat3Identity returns a fresh identity matrix.
func Mat3Identity() *Mat3 {
	return NewMat3()
}

func (mt *Mat3) Identity() *Mat3 {
	mt.M11, mt.M12, mt.M13 = 1.0, 0.0, 0.0
	mt.M21, mt.M22, mt.M23 = 0.0, 1.0, 0.0
	mt.M31, mt.M32, mt.M33 = 0.0, 0.0, 1.0
	return mt
}

func (mt *Mat3) Zero() *Mat3 {
	*mt = Mat3{}
	return mt
}

/**
 * @brief Populates mt from row-major values.
 */
func (mt *Mat3) FromArray(el [9]float64) *Mat3 {
	mt.M11, mt.M12, mt.M13 = el[0], el[1], el[2]
	mt.M21, mt.M22, mt.M23 = el[3], el[4], el[5]
	mt.M31, mt.M32, mt.M33 = el[6], el[7], el[8]
	return mt
}

/**
 * @brief Returns the entries of mt in row-major order, as they are now.
 */
func (mt *Mat3) Elements() [9]float64 {
	return [9]float64{
		mt.M11, mt.M12, mt.M13,
		mt.M21, mt.M22, mt.M23,
		mt.M31, mt.M32, mt.M33,
	}
}

/**
 * @brief Uses the three vectors as the rows of mt.
 */
func (mt *Mat3) FromVec3Rows(v1, v2, v3 *Vec3) *Mat3 {
	mt.M11, mt.M12, mt.M13 = v1.X, v1.Y, v1.Z
	mt.M21, mt.M22, mt.M23 = v2.X, v2.Y, v2.Z
	mt.M31, mt.M32, mt.M33 = v3.X, v3.Y, v3.Z
	return mt
}

/**
 * @brief Uses the three vectors as the columns of mt.
 */
func (mt *Mat3) FromVec3Cols(v1, v2, v3 *Vec3) *Mat3 {
	mt.M11, mt.M12, mt.M13 = v1.X, v2.X, v3.X
	mt.M21, mt.M22, mt.M23 = v1.Y, v2.Y, v3.Y
	mt.M31, mt.M32, mt.M33 = v1.Z, v2.Z, v3.Z
	return mt
}

func (mt *Mat3) Determinant() float64 {
	return mt.M11*(mt.M22*mt.M33-mt.M23*mt.M32) +
		mt.M12*(mt.M23*mt.M31-mt.M21*mt.M33) +
		mt.M13*(mt.M21*mt.M32-mt.M22*mt.M31)
}

/**
 * @brief Writes the inverse of m into mt using the adjugate divided by the determinant.
 * @return mt, or nil when m is singular, in which case mt is left untouched.
 */
func (mt *Mat3) InvertFrom(m *Mat3) *Mat3 {
	d := m.Determinant()
	if kabs(d) < K_SINGULAR_THRESHOLD {
		return nil
	}
	d = 1.0 / d

	m11, m12, m13 := m.M11, m.M12, m.M13
	m21, m22, m23 := m.M21, m.M22, m.M23
	m31, m32, m33 := m.M31, m.M32, m.M33

	mt.M11 = d * (m22*m33 - m23*m32)
	mt.M12 = d * (m32*m13 - m12*m33)
	mt.M13 = d * (m12*m23 - m22*m13)
	mt.M21 = d * (m23*m31 - m21*m33)
	mt.M22 = d * (m11*m33 - m31*m13)
	mt.M23 = d * (m21*m13 - m11*m23)
	mt.M31 = d * (m21*m32 - m22*m31)
	mt.M32 = d * (m31*m12 - m11*m32)
	mt.M33 = d * (m11*m22 - m21*m12)
	return mt
}

/**
 * @brief Inverts mt in place. Returns nil and leaves mt untouched when singular.
 */
func (mt *Mat3) Invert() *Mat3 {
	return mt.InvertFrom(mt)
}

/**
 * @brief Writes the product of the 2x2 linear blocks of m1 and m2 into mt.
 * The translation column is copied from m1; the last row of mt is not touched.
 */
func (mt *Mat3) Multiply2x2Into(m1, m2 *Mat3) *Mat3 {
	a11, a12, a13 := m1.M11, m1.M12, m1.M13
	a21, a22, a23 := m1.M21, m1.M22, m1.M23
	b11, b12 := m2.M11, m2.M12
	b21, b22 := m2.M21, m2.M22

	mt.M11 = a11*b11 + a12*b21
	mt.M12 = a11*b12 + a12*b22
	mt.M13 = a13
	mt.M21 = a21*b11 + a22*b21
	mt.M22 = a21*b12 + a22*b22
	mt.M23 = a23
	return mt
}

/**
 * @brief Multiplies the 2x2 linear block of mt by that of other, keeping mt's translation.
 */
func (mt *Mat3) Multiply2x2(other *Mat3) *Mat3 {
	return mt.Multiply2x2Into(mt, other)
}

/**
 * @brief Writes the full product m1 * m2 into mt. mt may alias either operand.
 */
func (mt *Mat3) MultiplyInto(m1, m2 *Mat3) *Mat3 {
	a11, a12, a13 := m1.M11, m1.M12, m1.M13
	a21, a22, a23 := m1.M21, m1.M22, m1.M23
	a31, a32, a33 := m1.M31, m1.M32, m1.M33

	b11, b12, b13 := m2.M11, m2.M12, m2.M13
	b21, b22, b23 := m2.M21, m2.M22, m2.M23
	b31, b32, b33 := m2.M31, m2.M32, m2.M33

	mt.M11 = a11*b11 + a12*b21 + a13*b31
	mt.M12 = a11*b12 + a12*b22 + a13*b32
	mt.M13 = a11*b13 + a12*b23 + a13*b33

	mt.M21 = a21*b11 + a22*b21 + a23*b31
	mt.M22 = a21*b12 + a22*b22 + a23*b32
	mt.M23 = a21*b13 + a22*b23 + a23*b33

	mt.M31 = a31*b11 + a32*b21 + a33*b31
	mt.M32 = a31*b12 + a32*b22 + a33*b32
	mt.M33 = a31*b13 + a32*b23 + a33*b33
	return mt
}

/**
 * @brief mt = mt * other.
 */
func (mt *Mat3) Multiply(other *Mat3) *Mat3 {
	return mt.MultiplyInto(mt, other)
}

/**
 * @brief Uniformly scales the linear block.
 */
func (mt *Mat3) Scale(s float64) *Mat3 {
	return mt.ScaleXY(s, s)
}

/**
 * @brief Scales the first row of the linear block by sx and the second by sy.
 */
func (mt *Mat3) ScaleXY(sx, sy float64) *Mat3 {
	mt.M11 *= sx
	mt.M12 *= sx
	mt.M21 *= sy
	mt.M22 *= sy
	return mt
}

func (mt *Mat3) ScaleByVector(v *Vec2) *Mat3 {
	return mt.ScaleXY(v.X, v.Y)
}

/**
 * @brief Sets the translation.
 */
func (mt *Mat3) MoveTo(x, y float64) *Mat3 {
	mt.M13, mt.M23 = x, y
	return mt
}

/**
 * @brief Offsets the translation.
 */
func (mt *Mat3) MoveBy(x, y float64) *Mat3 {
	mt.M13 += x
	mt.M23 += y
	return mt
}

func (mt *Mat3) MoveToVector(v *Vec2) *Mat3 {
	return mt.MoveTo(v.X, v.Y)
}

func (mt *Mat3) MoveByVector(v *Vec2) *Mat3 {
	return mt.MoveBy(v.X, v.Y)
}

func (mt *Mat3) Clone() *Mat3 {
	c := *mt
	return &c
}

// Affine returns the 2D affine part of mt: the linear block and the translation column.
func (mt *Mat3) Affine() Affine2D {
	return Affine2D{M11: mt.M11, M12: mt.M12, M21: mt.M21, M22: mt.M22, Dx: mt.M13, Dy: mt.M23}
}

// CSSString formats mt as a fixed-point CSS matrix() value.
func (mt *Mat3) CSSString() string {
	return mt.Affine().CSSString()
}

// String is slow and meant for debugging only.
func (mt *Mat3) String() string {
	return "mat3: [" +
		"[" + joinDebug(mt.M11, mt.M12, mt.M13) + "]," +
		"[" + joinDebug(mt.M21, mt.M22, mt.M23) + "]," +
		"[" + joinDebug(mt.M31, mt.M32, mt.M33) + "]]"
}
