package sampling

import (
	"math"
	"strconv"
	"strings"
)

// IsNaN reports whether x is a floating-point NaN. Values of any other type
// are never NaN.
func IsNaN(x any) bool {
	switch v := x.(type) {
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	default:
		return false
	}
}

// ShapeString renders array dimensions as "3x4". An empty shape gives "".
func ShapeString(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}
