package thiemwork

import "math"

// SpeculativeQ returns the pumping rate [m³/s] that would, at steady state,
// hold drawdown dh at a well of radius rw in an aquifer of undisturbed
// saturated thickness h0, taking the well face (radius rw, head h0−dh) and
// the Sichardt radius of influence (head h0) as the two Thiem observation
// points. Inputs are not validated; the solver checks them once up front.
func SpeculativeQ(dh, h0, rw, kf float64) float64 {
	r := sichardtFactor * dh * math.Sqrt(kf)
	return math.Pi * kf * (h0*h0 - (h0-dh)*(h0-dh)) / math.Log(r/rw)
}

// residual is the objective minimized by the drawdown search.
func residual(Q, dh, h0, rw, kf float64) float64 {
	return math.Abs(Q - SpeculativeQ(dh, h0, rw, kf))
}
