package geom

import "math"

// Polynomial root solving used for curve extrema.
// Based on the numerically stable formulation used by kurbo.

// SolveQuadratic finds real roots of the quadratic equation ax^2 + bx + c = 0.
// Returns roots sorted in ascending order.
//
// When a is zero or nearly zero the equation is solved as linear. When all
// coefficients are zero a single 0.0 is returned.
func SolveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		// Discriminant overflow: one root from sc1*x + x^2 = 0.
		return sortedPair(-sc1, sc0/-sc1)
	}
	if arg < 0.0 {
		return nil
	}
	if arg == 0.0 {
		return []float64{-0.5 * sc1}
	}

	// Avoid cancellation between -b and sqrt(disc).
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return sortedPair(root1, sc0/root1)
}

func sortedPair(root1, root2 float64) []float64 {
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if c == 0.0 && b == 0.0 {
		return []float64{0.0}
	}
	return nil
}

// SolveQuadraticInUnitInterval returns roots of ax^2 + bx + c = 0 that lie in [0, 1].
// Roots within 1e-12 of the interval are clamped onto it.
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12

	var result []float64
	for _, r := range SolveQuadratic(a, b, c) {
		if r < -eps || r > 1.0+eps {
			continue
		}
		result = append(result, math.Min(math.Max(r, 0), 1))
	}
	return result
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
