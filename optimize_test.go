package thiemwork

import (
	"math"
	"testing"
)

func TestEstimateKf_RecoversSyntheticConductivity(t *testing.T) {
	const (
		Q      = 0.001731
		h0     = 12.
		rw     = 0.05
		kfTrue = 3e-4
	)
	c, err := NewConeDefault(Q, h0, rw, kfTrue)
	if err != nil {
		t.Fatalf("NewConeDefault() error = %v", err)
	}
	var obs []HeadObs
	for _, x := range []float64{0.5, 1., 2., 5., 10., 20.} {
		h, err := c.HeadAt(x)
		if err != nil {
			t.Fatalf("HeadAt(%f) error = %v", x, err)
		}
		obs = append(obs, HeadObs{X: x, H: h})
	}

	kf, nse, err := EstimateKf(obs, Q, h0, rw, 1e-5, 1e-2)
	if err != nil {
		t.Fatalf("EstimateKf() error = %v", err)
	}
	if math.Abs(kf-kfTrue)/kfTrue > 0.25 {
		t.Errorf("EstimateKf() = %e, want %e within 25%%", kf, kfTrue)
	}
	if nse < 0.9 {
		t.Errorf("EstimateKf() NSE = %f, want > 0.9", nse)
	}
}

func TestEstimateKf_NoObservations(t *testing.T) {
	if _, _, err := EstimateKf(nil, 0.001731, 12., 0.05, 1e-5, 1e-2); err == nil {
		t.Error("EstimateKf(nil) error = nil, want error")
	}
}
