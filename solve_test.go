package thiemwork

import (
	"errors"
	"math"
	"testing"
)

func TestSolveDh_RoundTrip(t *testing.T) {
	const (
		Q  = 0.001731
		h0 = 12.
		rw = 0.05
		kf = 3e-4
	)
	dh, err := SolveDhDefault(Q, h0, rw, kf)
	if err != nil {
		t.Fatalf("SolveDhDefault() error = %v", err)
	}
	if dh <= 0. || dh >= h0 {
		t.Fatalf("SolveDhDefault() = %f, want within (0, %f)", dh, h0)
	}
	q := SpeculativeQ(dh, h0, rw, kf)
	if math.Abs(q-Q)/Q > 0.01 {
		t.Errorf("SpeculativeQ(SolveDh(Q)) = %f, want %f within 1%%", q, Q)
	}
}

func TestSolveH_ConsistentWithSolveDh(t *testing.T) {
	const (
		Q  = 0.001731
		h0 = 12.
		rw = 0.05
		kf = 3e-4
	)
	h, err := SolveHDefault(Q, h0, rw, kf)
	if err != nil {
		t.Fatalf("SolveHDefault() error = %v", err)
	}
	dh, err := SolveDhDefault(Q, h0, rw, kf)
	if err != nil {
		t.Fatalf("SolveDhDefault() error = %v", err)
	}
	if math.Abs(h0-dh-h) > 1e-6 {
		t.Errorf("SolveH = %f, SolveDh = %f: h0 - dh - h = %g, want 0", h, dh, h0-dh-h)
	}
}

func TestSolveDh_InvalidInterval(t *testing.T) {
	if _, err := SolveDh(0.001, 12., 0.05, 3e-4, 1., 1.); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("SolveDh(dhmin == dhmax) error = %v, want ErrInvalidInterval", err)
	}
	if _, err := SolveDh(0.001, 12., 0.05, 3e-4, 2., 1.); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("SolveDh(dhmax < dhmin) error = %v, want ErrInvalidInterval", err)
	}
}

func TestSolveDh_Domain(t *testing.T) {
	if _, err := SolveDhDefault(0.001, 12., 0.05, -3e-4); !errors.Is(err, ErrDomain) {
		t.Errorf("SolveDh(kf < 0) error = %v, want ErrDomain", err)
	}
	if _, err := SolveDhDefault(0.001, 12., 0., 3e-4); !errors.Is(err, ErrDomain) {
		t.Errorf("SolveDh(rw == 0) error = %v, want ErrDomain", err)
	}
	// h0 ≤ 0 also degenerates the default interval [0.001, h0]; the domain
	// failure must win over ErrInvalidInterval
	if _, err := SolveDhDefault(0.001, -12., 0.05, 3e-4); !errors.Is(err, ErrDomain) {
		t.Errorf("SolveDh(h0 < 0) error = %v, want ErrDomain", err)
	}
	if _, err := SolveDhDefault(0.001, 0., 0.05, 3e-4); !errors.Is(err, ErrDomain) {
		t.Errorf("SolveDh(h0 == 0) error = %v, want ErrDomain", err)
	}
}

func TestSolveDh_UnattainableRate(t *testing.T) {
	// even full drawdown to the aquitard cannot sustain 1 m³/s here
	if _, err := SolveDhDefault(1., 12., 0.05, 3e-4); !errors.Is(err, ErrNoConvergence) {
		t.Errorf("SolveDh(unattainable Q) error = %v, want ErrNoConvergence", err)
	}
}
