package spin

// MaxWeight bounds the spin markers and the generated product/quotient table.
const MaxWeight = 4

// Spin is a compile-time spin weight. The set of implementations is closed:
// the markers N4 through P4 in weights_gen.go.
type Spin interface {
	Weight() int
	isSpin()
}

// WeightOf returns the weight carried by the marker S.
func WeightOf[S Spin]() int {
	var s S
	return s.Weight()
}

// InRange reports whether a marker exists for weight w.
func InRange(w int) bool {
	return w >= -MaxWeight && w <= MaxWeight
}

// AddRule returns the spin of s1+s2 or s1-s2. The sum is only defined for
// equal spins.
func AddRule(s1, s2 int) (int, bool) {
	if s1 != s2 {
		return 0, false
	}
	return s1, true
}

// MulRule returns the spin of a product.
func MulRule(s1, s2 int) int { return s1 + s2 }

// DivRule returns the spin of a quotient.
func DivRule(s1, s2 int) int { return s1 - s2 }
