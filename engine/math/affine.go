package math

import (
	"strconv"
	"strings"
)

/**
 * @brief The six coefficients of a 2D affine transform, named after the
 * row-major entries they come from: x' = M11*x + M21*y + Dx, y' = M12*x + M22*y + Dy.
 */
type Affine2D struct {
	M11, M12, M21, M22, Dx, Dy float64
}

// CSSString formats a as a CSS matrix() value.
// Scientific notation is not understood by CSS, so every coefficient is fixed point.
func (a Affine2D) CSSString() string {
	return "matrix(" + joinFixed(a.M11, a.M12, a.M21, a.M22, a.Dx, a.Dy) + ")"
}

func joinFixed(values ...float64) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(formatFixed(v))
	}
	return sb.String()
}

func formatFixed(v float64) string {
	// -0 prints as "-0.000000000000" otherwise.
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 12, 64)
}

func joinDebug(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
