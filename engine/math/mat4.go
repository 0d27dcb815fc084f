package math

/**
 * @brief A 4x4 matrix, stored row-major, typically used to represent object
 * transformations. The upper-left 3x3 block is the linear part and
 * M14/M24/M34 hold the translation. The last row is only used by Perspective
 * and the full MultiplyInto.
 */
type Mat4 struct {
	M11, M12, M13, M14 float64
	M21, M22, M23, M24 float64
	M31, M32, M33, M34 float64
	M41, M42, M43, M44 float64
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 */
func NewMat4() *Mat4 {
	return (&Mat4{}).Identity()
}

// Mat4Identity returns a fresh identity matrix.
func Mat4Identity() *Mat4 {
	return NewMat4()
}

func (mt *Mat4) Identity() *Mat4 {
	*mt = Mat4{
		M11: 1.0,
		M22: 1.0,
		M33: 1.0,
		M44: 1.0,
	}
	return mt
}

func (mt *Mat4) Zero() *Mat4 {
	*mt = Mat4{}
	return mt
}

/**
 * @brief Populates mt from row-major values.
 */
func (mt *Mat4) FromArray(el [16]float64) *Mat4 {
	mt.M11, mt.M12, mt.M13, mt.M14 = el[0], el[1], el[2], el[3]
	mt.M21, mt.M22, mt.M23, mt.M24 = el[4], el[5], el[6], el[7]
	mt.M31, mt.M32, mt.M33, mt.M34 = el[8], el[9], el[10], el[11]
	mt.M41, mt.M42, mt.M43, mt.M44 = el[12], el[13], el[14], el[15]
	return mt
}

/**
 * @brief Returns the entries of mt in row-major order, as they are now.
 */
func (mt *Mat4) Elements() [16]float64 {
	return [16]float64{
		mt.M11, mt.M12, mt.M13, mt.M14,
		mt.M21, mt.M22, mt.M23, mt.M24,
		mt.M31, mt.M32, mt.M33, mt.M34,
		mt.M41, mt.M42, mt.M43, mt.M44,
	}
}

/**
 * @brief Returns the determinant of the upper-left 3x3 block.
 */
func (mt *Mat4) Determinant3() float64 {
	m11, m12, m13 := mt.M11, mt.M12, mt.M13
	m21, m22, m23 := mt.M21, mt.M22, mt.M23
	m31, m32, m33 := mt.M31, mt.M32, mt.M33

	return (m11*m22-m21*m12)*m33 -
		(m11*m32-m31*m12)*m23 +
		(m21*m32-m31*m22)*m13
}

/**
 * @brief Returns the determinant of the full matrix, expanded over the 2x2
 * minors of the first two columns.
 */
func (mt *Mat4) Determinant4() float64 {
	m11, m12, m13, m14 := mt.M11, mt.M12, mt.M13, mt.M14
	m21, m22, m23, m24 := mt.M21, mt.M22, mt.M23, mt.M24
	m31, m32, m33, m34 := mt.M31, mt.M32, mt.M33, mt.M34
	m41, m42, m43, m44 := mt.M41, mt.M42, mt.M43, mt.M44

	return (m11*m22-m21*m12)*(m33*m44-m43*m34) -
		(m11*m32-m31*m12)*(m23*m44-m43*m24) +
		(m11*m42-m41*m12)*(m23*m34-m33*m24) +
		(m21*m32-m31*m22)*(m13*m44-m43*m14) -
		(m21*m42-m41*m22)*(m13*m34-m33*m14) +
		(m31*m42-m41*m32)*(m13*m24-m23*m14)
}

/**
 * @brief Writes the affine inverse of m into mt: the inverse of the linear
 * block and the translation run back through it. The last row of mt is not touched.
 * @return mt, or nil when the linear block of m is singular, in which case mt is left untouched.
 */
func (mt *Mat4) InvertFrom(m *Mat4) *Mat4 {
	d := m.Determinant3()
	if kabs(d) < K_SINGULAR_THRESHOLD {
		return nil
	}
	d = 1.0 / d

	m11, m12, m13, m14 := m.M11, m.M12, m.M13, m.M14
	m21, m22, m23, m24 := m.M21, m.M22, m.M23, m.M24
	m31, m32, m33, m34 := m.M31, m.M32, m.M33, m.M34

	i11 := d * (m22*m33 - m32*m23)
	i12 := -d * (m12*m33 - m32*m13)
	i13 := d * (m12*m23 - m22*m13)
	i21 := -d * (m21*m33 - m31*m23)
	i22 := d * (m11*m33 - m31*m13)
	i23 := -d * (m11*m23 - m21*m13)
	i31 := d * (m21*m32 - m31*m22)
	i32 := -d * (m11*m32 - m31*m12)
	i33 := d * (m11*m22 - m21*m12)

	mt.M11, mt.M12, mt.M13 = i11, i12, i13
	mt.M21, mt.M22, mt.M23 = i21, i22, i23
	mt.M31, mt.M32, mt.M33 = i31, i32, i33
	mt.M14 = -(i11*m14 + i12*m24 + i13*m34)
	mt.M24 = -(i21*m14 + i22*m24 + i23*m34)
	mt.M34 = -(i31*m14 + i32*m24 + i33*m34)
	return mt
}

/**
 * @brief Inverts mt in place. Returns nil and leaves mt untouched when singular.
 */
func (mt *Mat4) Invert() *Mat4 {
	return mt.InvertFrom(mt)
}

/**
 * @brief Writes the product of the linear blocks of m1 and m2 into mt.
 * The translation column is copied from m1 and the last row of mt is not touched.
 */
func (mt *Mat4) Multiply3x3Into(m1, m2 *Mat4) *Mat4 {
	a11, a12, a13, a14 := m1.M11, m1.M12, m1.M13, m1.M14
	a21, a22, a23, a24 := m1.M21, m1.M22, m1.M23, m1.M24
	a31, a32, a33, a34 := m1.M31, m1.M32, m1.M33, m1.M34

	b11, b12, b13 := m2.M11, m2.M12, m2.M13
	b21, b22, b23 := m2.M21, m2.M22, m2.M23
	b31, b32, b33 := m2.M31, m2.M32, m2.M33

	mt.M11 = a11*b11 + a12*b21 + a13*b31
	mt.M12 = a11*b12 + a12*b22 + a13*b32
	mt.M13 = a11*b13 + a12*b23 + a13*b33
	mt.M14 = a14

	mt.M21 = a21*b11 + a22*b21 + a23*b31
	mt.M22 = a21*b12 + a22*b22 + a23*b32
	mt.M23 = a21*b13 + a22*b23 + a23*b33
	mt.M24 = a24

	mt.M31 = a31*b11 + a32*b21 + a33*b31
	mt.M32 = a31*b12 + a32*b22 + a33*b32
	mt.M33 = a31*b13 + a32*b23 + a33*b33
	mt.M34 = a34
	return mt
}

/**
 * @brief Multiplies the linear block of mt by that of other, keeping mt's translation.
 */
func (mt *Mat4) Multiply3x3(other *Mat4) *Mat4 {
	return mt.Multiply3x3Into(mt, other)
}

/**
 * @brief Writes the affine product m1 * m2 into mt: the linear blocks are
 * multiplied and m2's translation is carried through m1's linear block
 * before m1's translation is added. The last row of mt is not touched.
 */
func (mt *Mat4) MultiplyAffineInto(m1, m2 *Mat4) *Mat4 {
	a11, a12, a13, a14 := m1.M11, m1.M12, m1.M13, m1.M14
	a21, a22, a23, a24 := m1.M21, m1.M22, m1.M23, m1.M24
	a31, a32, a33, a34 := m1.M31, m1.M32, m1.M33, m1.M34

	b11, b12, b13, b14 := m2.M11, m2.M12, m2.M13, m2.M14
	b21, b22, b23, b24 := m2.M21, m2.M22, m2.M23, m2.M24
	b31, b32, b33, b34 := m2.M31, m2.M32, m2.M33, m2.M34

	mt.M11 = a11*b11 + a12*b21 + a13*b31
	mt.M12 = a11*b12 + a12*b22 + a13*b32
	mt.M13 = a11*b13 + a12*b23 + a13*b33
	mt.M14 = a11*b14 + a12*b24 + a13*b34 + a14

	mt.M21 = a21*b11 + a22*b21 + a23*b31
	mt.M22 = a21*b12 + a22*b22 + a23*b32
	mt.M23 = a21*b13 + a22*b23 + a23*b33
	mt.M24 = a21*b14 + a22*b24 + a23*b34 + a24

	mt.M31 = a31*b11 + a32*b21 + a33*b31
	mt.M32 = a31*b12 + a32*b22 + a33*b32
	mt.M33 = a31*b13 + a32*b23 + a33*b33
	mt.M34 = a31*b14 + a32*b24 + a33*b34 + a34
	return mt
}

/**
 * @brief mt = mt * other, as an affine product.
 */
func (mt *Mat4) MultiplyAffine(other *Mat4) *Mat4 {
	return mt.MultiplyAffineInto(mt, other)
}

/**
 * @brief Writes the full 4x4 product m1 * m2 into mt, last row included.
 * Needed when one of the operands is a projection.
 */
func (mt *Mat4) MultiplyInto(m1, m2 *Mat4) *Mat4 {
	a := m1.Elements()
	b := m2.Elements()
	var r [16]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[row*4+k] * b[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return mt.FromArray(r)
}

/**
 * @brief mt = mt * other, as a full 4x4 product.
 */
func (mt *Mat4) Multiply(other *Mat4) *Mat4 {
	return mt.MultiplyInto(mt, other)
}

/**
 * @brief Scales the rows of the linear block by sx, sy and sz respectively.
 */
func (mt *Mat4) Scale(sx, sy, sz float64) *Mat4 {
	mt.M11 *= sx
	mt.M12 *= sx
	mt.M13 *= sx
	mt.M21 *= sy
	mt.M22 *= sy
	mt.M23 *= sy
	mt.M31 *= sz
	mt.M32 *= sz
	mt.M33 *= sz
	return mt
}

func (mt *Mat4) ScaleByVector(v *Vec3) *Mat4 {
	return mt.Scale(v.X, v.Y, v.Z)
}

// NOTE: ScaleX, ScaleY and ScaleZ take a square root each. Avoid them in hot paths.

/**
 * @brief Returns the magnitude of the first row of the linear block.
 */
func (mt *Mat4) ScaleX() float64 {
	return ksqrt(mt.M11*mt.M11 + mt.M12*mt.M12 + mt.M13*mt.M13)
}

/**
 * @brief Returns the magnitude of the second row of the linear block.
 */
func (mt *Mat4) ScaleY() float64 {
	return ksqrt(mt.M21*mt.M21 + mt.M22*mt.M22 + mt.M23*mt.M23)
}

/**
 * @brief Returns the magnitude of the third row of the linear block.
 */
func (mt *Mat4) ScaleZ() float64 {
	return ksqrt(mt.M31*mt.M31 + mt.M32*mt.M32 + mt.M33*mt.M33)
}

func (mt *Mat4) MoveTo(x, y, z float64) *Mat4 {
	mt.M14, mt.M24, mt.M34 = x, y, z
	return mt
}

func (mt *Mat4) MoveBy(x, y, z float64) *Mat4 {
	mt.M14 += x
	mt.M24 += y
	mt.M34 += z
	return mt
}

func (mt *Mat4) MoveToVector(v *Vec3) *Mat4 {
	return mt.MoveTo(v.X, v.Y, v.Z)
}

func (mt *Mat4) MoveByVector(v *Vec3) *Mat4 {
	return mt.MoveBy(v.X, v.Y, v.Z)
}

/**
 * @brief Builds a perspective projection. Every entry of mt is written.
 *
 * @param aspectRatio The aspect ratio (width / height).
 * @param fov The vertical field of view in degrees.
 * @param nearZ The near clipping plane distance.
 * @param farZ The far clipping plane distance.
 */
func (mt *Mat4) Perspective(aspectRatio, fov, nearZ, farZ float64) *Mat4 {
	halfFov := DegToRad(fov * 0.5)
	invTan := 1.0 / ktan(halfFov)

	zSum := nearZ + farZ
	invZDiff := 1.0 / (nearZ - farZ)

	mt.Zero()
	mt.M11 = invTan / aspectRatio
	mt.M22 = invTan
	mt.M33 = -zSum * invZDiff
	mt.M34 = 2.0 * farZ * nearZ * invZDiff
	mt.M43 = 1.0
	return mt
}

/**
 * @brief Writes a rotation of angle radians about axis into the linear block
 * (Rodrigues' rotation formula). The translation and last row are not touched.
 *
 * @param axis The axis to rotate about. Expected to be unit length.
 * @param angle The angle in radians.
 */
func (mt *Mat4) FromRotationAxis(axis *Vec3, angle float64) *Mat4 {
	vx, vy, vz := axis.X, axis.Y, axis.Z
	c, s := kcos(angle), ksin(angle)
	ic := 1.0 - c

	rxy := vx * vy * ic
	ryz := vy * vz * ic
	rxz := vx * vz * ic

	rx := s * vx
	ry := s * vy
	rz := s * vz

	mt.M11 = c + vx*vx*ic
	mt.M12 = rxy - rz
	mt.M13 = rxz + ry

	mt.M21 = rxy + rz
	mt.M22 = c + vy*vy*ic
	mt.M23 = ryz - rx

	mt.M31 = rxz - ry
	mt.M32 = ryz + rx
	mt.M33 = c + vz*vz*ic
	return mt
}

/**
 * @brief Writes the rotation described by q into the linear block.
 * The translation and last row are not touched.
 */
func (mt *Mat4) FromQuaternion(q *Quaternion) *Mat4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W

	xx, xy, xz, xw := x*x, x*y, x*z, x*w
	yy, yz, yw := y*y, y*z, y*w
	zz, zw := z*z, z*w

	mt.M11 = 1.0 - (yy+zz)*2.0
	mt.M12 = (xy - zw) * 2.0
	mt.M13 = (xz + yw) * 2.0

	mt.M21 = (xy + zw) * 2.0
	mt.M22 = 1.0 - (xx+zz)*2.0
	mt.M23 = (yz - xw) * 2.0

	mt.M31 = (xz - yw) * 2.0
	mt.M32 = (yz + xw) * 2.0
	mt.M33 = 1.0 - (xx+yy)*2.0
	return mt
}

/**
 * @brief Returns a new vector holding the translation of mt.
 */
func (mt *Mat4) Position() *Vec3 {
	return NewVec3(mt.M14, mt.M24, mt.M34)
}

func (mt *Mat4) Clone() *Mat4 {
	c := *mt
	return &c
}

// CSSString formats mt as a fixed-point CSS matrix3d() value, which is column-major.
func (mt *Mat4) CSSString() string {
	return "matrix3d(" + joinFixed(
		mt.M11, mt.M21, mt.M31, mt.M41,
		mt.M12, mt.M22, mt.M32, mt.M42,
		mt.M13, mt.M23, mt.M33, mt.M43,
		mt.M14, mt.M24, mt.M34, mt.M44,
	) + ")"
}

// String is slow and meant for debugging only.
func (mt *Mat4) String() string {
	return "mat4: [" +
		"[" + joinDebug(mt.M11, mt.M12, mt.M13, mt.M14) + "]," +
		"[" + joinDebug(mt.M21, mt.M22, mt.M23, mt.M24) + "]," +
		"[" + joinDebug(mt.M31, mt.M32, mt.M33, mt.M34) + "]," +
		"[" + joinDebug(mt.M41, mt.M42, mt.M43, mt.M44) + "]]"
}
