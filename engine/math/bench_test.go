package math

import "testing"

func BenchmarkMat4MultiplyAffineInto(b *testing.B) {
	r := NewRandom(1)
	m1, m2 := randomAffine(r), randomAffine(r)
	dst := NewMat4()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst.MultiplyAffineInto(m1, m2)
	}
}

func BenchmarkMat4MultiplyInto(b *testing.B) {
	r := NewRandom(1)
	m1, m2 := randomAffine(r), randomAffine(r)
	dst := NewMat4()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst.MultiplyInto(m1, m2)
	}
}

func BenchmarkVec3Transform(b *testing.B) {
	mt := randomAffine(NewRandom(1))
	v := NewVec3(1, 2, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Transform(mt, v)
	}
}

func BenchmarkMat3CSSString(b *testing.B) {
	mt := NewMat3().Scale(1.5).MoveTo(10, 20)
	for i := 0; i < b.N; i++ {
		_ = mt.CSSString()
	}
}
