package math

/**
 * @brief A 2x2 matrix holding a 2D linear transform, stored row-major.
 */
type Mat2 struct {
	M11, M12 float64
	M21, M22 float64
}

/**
 * @brief Creates and returns an identity matrix.
 */
func NewMat2() *Mat2 {
	return (&Mat2{}).Identity()
}

// Mat2Identity returns a fresh identity matrix.
func Mat2Identity() *Mat2 {
	return NewMat2()
}

func (mt *Mat2) Identity() *Mat2 {
	mt.M11, mt.M12 = 1.0, 0.0
	mt.M21, mt.M22 = 0.0, 1.0
	return mt
}

func (mt *Mat2) Zero() *Mat2 {
	*mt = Mat2{}
	return mt
}

/**
 * @brief Populates mt from row-major values.
 */
func (mt *Mat2) FromArray(el [4]float64) *Mat2 {
	mt.M11, mt.M12 = el[0], el[1]
	mt.M21, mt.M22 = el[2], el[3]
	return mt
}

/**
 * @brief Returns the entries of mt in row-major order, as they are now.
 */
func (mt *Mat2) Elements() [4]float64 {
	return [4]float64{mt.M11, mt.M12, mt.M21, mt.M22}
}

/**
 * @brief Builds a rotation of angle radians in the CSS matrix() order,
 * that is (cos, sin, -sin, cos).
 */
func (mt *Mat2) FromRotation(angle float64) *Mat2 {
	c, s := kcos(angle), ksin(angle)
	mt.M11, mt.M12 = c, s
	mt.M21, mt.M22 = -s, c
	return mt
}

func (mt *Mat2) Determinant() float64 {
	return mt.M11*mt.M22 - mt.M12*mt.M21
}

/**
 * @brief Writes the inverse of m into mt.
 * @return mt, or nil when m is singular, in which case mt is left untouched.
 */
func (mt *Mat2) InvertFrom(m *Mat2) *Mat2 {
	d := m.Determinant()
	if kabs(d) < K_SINGULAR_THRESHOLD {
		return nil
	}
	d = 1.0 / d

	m11, m12, m21, m22 := m.M11, m.M12, m.M21, m.M22
	mt.M11, mt.M12 = d*m22, -d*m12
	mt.M21, mt.M22 = -d*m21, d*m11
	return mt
}

/**
 * @brief Inverts mt in place. Returns nil and leaves mt untouched when singular.
 */
func (mt *Mat2) Invert() *Mat2 {
	return mt.InvertFrom(mt)
}

/**
 * @brief Writes m1 * m2 into mt. mt may alias either operand.
 */
func (mt *Mat2) MultiplyInto(m1, m2 *Mat2) *Mat2 {
	a11, a12, a21, a22 := m1.M11, m1.M12, m1.M21, m1.M22
	b11, b12, b21, b22 := m2.M11, m2.M12, m2.M21, m2.M22

	mt.M11 = a11*b11 + a12*b21
	mt.M12 = a11*b12 + a12*b22
	mt.M21 = a21*b11 + a22*b21
	mt.M22 = a21*b12 + a22*b22
	return mt
}

/**
 * @brief mt = mt * other.
 */
func (mt *Mat2) Multiply(other *Mat2) *Mat2 {
	return mt.MultiplyInto(mt, other)
}

func (mt *Mat2) Scale(s float64) *Mat2 {
	return mt.ScaleXY(s, s)
}

/**
 * @brief Scales the first row by sx and the second by sy.
 */
func (mt *Mat2) ScaleXY(sx, sy float64) *Mat2 {
	mt.M11 *= sx
	mt.M12 *= sx
	mt.M21 *= sy
	mt.M22 *= sy
	return mt
}

func (mt *Mat2) Clone() *Mat2 {
	c := *mt
	return &c
}

// Affine returns the coefficients of mt as a 2D affine transform with no translation.
func (mt *Mat2) Affine() Affine2D {
	return Affine2D{M11: mt.M11, M12: mt.M12, M21: mt.M21, M22: mt.M22}
}

// CSSString formats mt as a fixed-point CSS matrix() value.
func (mt *Mat2) CSSString() string {
	return mt.Affine().CSSString()
}

// String is slow and meant for debugging only.
func (mt *Mat2) String() string {
	return "mat2: [" +
		"[" + joinDebug(mt.M11, mt.M12) + "]," +
		"[" + joinDebug(mt.M21, mt.M22) + "]]"
}
