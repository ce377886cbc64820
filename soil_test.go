package thiemwork

import (
	"math"
	"testing"

	"github.com/maseology/goHydro/porousmedia"
)

func TestConeFromSoil(t *testing.T) {
	// guelph loam
	pm := porousmedia.PorousMedium{Ts: 0.43, Tr: 0.05, Ks: 3e-4, He: -2.08, B: 4.74}

	c, err := ConeFromSoil(pm, tstQ, tstH0, tstRw)
	if err != nil {
		t.Fatalf("ConeFromSoil: %v", err)
	}
	ref, err := NewConeDefault(tstQ, tstH0, tstRw, pm.Ks)
	if err != nil {
		t.Fatalf("NewConeDefault: %v", err)
	}
	if math.Abs(c.Dh-ref.Dh) > 1e-12 || math.Abs(c.R-ref.R) > 1e-12 {
		t.Errorf("soil cone (dh=%v, R=%v) differs from Ks cone (dh=%v, R=%v)", c.Dh, c.R, ref.Dh, ref.R)
	}
	if c.Kf != pm.Ks {
		t.Errorf("cone kf = %v, expected saturated conductivity %v", c.Kf, pm.Ks)
	}
}
