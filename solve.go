package thiemwork

import (
	"fmt"
	"math"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
)

// SolveDh inverts the Dupuit-Thiem relation for the steady-state drawdown
// dh [m] at a well of radius rw pumped at rate Q, searching [dhmin, dhmax]
// with a bounded derivative-free minimization of the pumping-rate residual.
func SolveDh(Q, h0, rw, kf, dhmin, dhmax float64) (float64, error) {
	// domain before interval: h0 ≤ 0 would otherwise degenerate the
	// default interval [dhmin, h0] and misreport the failure
	if kf < 0. {
		return math.NaN(), fmt.Errorf("%w: SolveDh kf = %v", ErrDomain, kf)
	}
	if rw <= 0. || h0 <= 0. {
		return math.NaN(), fmt.Errorf("%w: SolveDh rw = %v, h0 = %v", ErrDomain, rw, h0)
	}
	if dhmax <= dhmin {
		return math.NaN(), fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, dhmin, dhmax)
	}

	smpl := func(u float64) float64 {
		return mmaths.LinearTransform(dhmin, dhmax, u)
	}
	opt := func(u float64) float64 {
		return residual(Q, smpl(u), h0, rw, kf)
	}
	u, y := glbopt.Fibonacci(opt)

	if y > convtol*(math.Abs(Q)+qeps) {
		return math.NaN(), fmt.Errorf("%w: residual %v at dh = %v", ErrNoConvergence, y, smpl(u))
	}
	return smpl(u), nil
}

// SolveH returns the steady-state water column height h = h0 − dh [m]
// remaining in the pumped well. See SolveDh.
func SolveH(Q, h0, rw, kf, dhmin, dhmax float64) (float64, error) {
	dh, err := SolveDh(Q, h0, rw, kf, dhmin, dhmax)
	if err != nil {
		return math.NaN(), err
	}
	return h0 - dh, nil
}

// SolveDhDefault searches the default drawdown interval [0.001, h0]: the
// full undisturbed column is the worst physically meaningful drawdown.
func SolveDhDefault(Q, h0, rw, kf float64) (float64, error) {
	return SolveDh(Q, h0, rw, kf, DhMinDefault, h0)
}

// SolveHDefault searches the default drawdown interval [0.001, h0].
func SolveHDefault(Q, h0, rw, kf float64) (float64, error) {
	return SolveH(Q, h0, rw, kf, DhMinDefault, h0)
}
