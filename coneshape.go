package thiemwork

import (
	"fmt"
	"math"
)

// Cone holds the solved steady-state configuration of a pumped well.
type Cone struct {
	Q, H0, Rw, Kf float64 // pumping rate, undisturbed thickness, well radius, conductivity
	H, Dh, R      float64 // water column at the well, drawdown, radius of influence
}

// NewCone solves the steady-state drawdown for a well pumped at rate Q and
// derives its radius of influence, searching drawdowns on [dhmin, dhmax].
func NewCone(Q, h0, rw, kf, dhmin, dhmax float64) (*Cone, error) {
	dh, err := SolveDh(Q, h0, rw, kf, dhmin, dhmax)
	if err != nil {
		return nil, err
	}
	r, err := Sichardt(dh, kf)
	if err != nil {
		return nil, err
	}
	return &Cone{Q: Q, H0: h0, Rw: rw, Kf: kf, H: h0 - dh, Dh: dh, R: r}, nil
}

// NewConeDefault solves over the default drawdown interval [0.001, h0].
func NewConeDefault(Q, h0, rw, kf float64) (*Cone, error) {
	return NewCone(Q, h0, rw, kf, DhMinDefault, h0)
}

// HeadAt returns the hydraulic head [m above the aquitard] at radial
// distance x [m] from the well axis. At and beyond the radius of influence
// the head is the undisturbed h0; inside, the Dupuit radial profile anchored
// at the well face applies. x ≤ 0, or an x small enough relative to Q to
// drive the radicand negative, returns ErrDomain.
func (c *Cone) HeadAt(x float64) (float64, error) {
	if x <= 0. {
		return math.NaN(), fmt.Errorf("%w: HeadAt x = %v", ErrDomain, x)
	}
	if x >= c.R {
		return c.H0, nil
	}
	hh := c.Q*log10conv*(math.Log10(x)-math.Log10(c.Rw))/(math.Pi*c.Kf) + c.H*c.H
	if hh < 0. {
		return math.NaN(), fmt.Errorf("%w: HeadAt x = %v lies too far within the well radius %v at Q = %v", ErrDomain, x, c.Rw, c.Q)
	}
	return math.Sqrt(hh), nil
}

// Profile evaluates the head at a sequence of radial distances, solving the
// well configuration only once.
func (c *Cone) Profile(xs []float64) ([]float64, error) {
	hs := make([]float64, len(xs))
	for i, x := range xs {
		h, err := c.HeadAt(x)
		if err != nil {
			return nil, err
		}
		hs[i] = h
	}
	return hs, nil
}

// ConeShape evaluates the steady-state head at distance x from a well pumped
// at rate Q, solving the drawdown on [dhmin, dhmax].
func ConeShape(x, Q, h0, rw, kf, dhmin, dhmax float64) (float64, error) {
	c, err := NewCone(Q, h0, rw, kf, dhmin, dhmax)
	if err != nil {
		return math.NaN(), err
	}
	return c.HeadAt(x)
}

// ConeShapeDefault evaluates over the default drawdown interval [0.001, h0].
func ConeShapeDefault(x, Q, h0, rw, kf float64) (float64, error) {
	return ConeShape(x, Q, h0, rw, kf, DhMinDefault, h0)
}
