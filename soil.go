package thiemwork

import "github.com/maseology/goHydro/porousmedia"

// ConeFromSoil solves the steady-state cone of depression for a well screened
// in a Campbell-parameterized soil, taking the soil's saturated hydraulic
// conductivity as kf.
func ConeFromSoil(pm porousmedia.PorousMedium, Q, h0, rw float64) (*Cone, error) {
	return NewConeDefault(Q, h0, rw, pm.GetK(pm.Ts))
}
