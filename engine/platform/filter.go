package platform

import (
	"fmt"

	"github.com/spaghettifunk/c3d/engine/core"
	"github.com/spaghettifunk/c3d/engine/math"
)

const (
	// MatrixFilterName is the key the legacy backend registers its matrix filter under.
	MatrixFilterName = "DXImageTransform.Microsoft.Matrix"
	matrixFilterDecl = `progid:DXImageTransform.Microsoft.Matrix(SizingMethod="auto expand")`
)

// MatrixFilter is the backend object that receives the affine coefficients.
type MatrixFilter interface {
	SetCoefficients(m11, m12, m21, m22, dx, dy float64)
}

// FilterHost is a node of the legacy rendering backend that can carry filters.
type FilterHost interface {
	Filter(name string) (MatrixFilter, bool)
	// SetStyleFilter installs a filter from its style declaration.
	SetStyleFilter(decl string)
}

// AffineSource is implemented by *math.Mat2 and *math.Mat3.
type AffineSource interface {
	Affine() math.Affine2D
}

// ApplyLegacyFilter pushes the affine coefficients of src into the matrix filter of host,
// installing the filter first when host does not carry one yet.
// The backend expects the linear block transposed relative to the CSS order.
func ApplyLegacyFilter(host FilterHost, src AffineSource) error {
	f, ok := host.Filter(MatrixFilterName)
	if !ok {
		core.LogDebug("installing %s filter", MatrixFilterName)
		host.SetStyleFilter(matrixFilterDecl)
		f, ok = host.Filter(MatrixFilterName)
	}
	if !ok || f == nil {
		return fmt.Errorf("%s: %w", MatrixFilterName, core.ErrFilterUnavailable)
	}

	a := src.Affine()
	f.SetCoefficients(a.M11, a.M21, a.M12, a.M22, a.Dx, a.Dy)
	return nil
}
