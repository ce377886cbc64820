// Package thiemwork computes the steady-state hydraulics of a single pumping
// well in an unconfined aquifer from closed-form empirical and semi-empirical
// relations (Sichardt, Kussakin, Dupuit-Thiem). All quantities are SI:
// lengths in m, rates in m³/s, conductivities in m/s. Heads are measured
// above the aquitard.
package thiemwork

import (
	"fmt"
	"math"
)

// Sichardt estimates the radius of influence R [m] of a pumped well from
// drawdown dh [m] and hydraulic conductivity kf [m/s]: R = 3000·dh·√kf.
// kf < 0 returns ErrDomain alongside NaN.
func Sichardt(dh, kf float64) (float64, error) {
	if kf < 0. {
		return math.NaN(), fmt.Errorf("%w: Sichardt kf = %v", ErrDomain, kf)
	}
	return sichardtFactor * dh * math.Sqrt(kf), nil
}

// Kussakin estimates the radius of influence R [m] accounting for aquifer
// thickness hm [m]: R = 575·dh·√(kf·hm). kf·hm < 0 returns ErrDomain.
func Kussakin(dh, kf, hm float64) (float64, error) {
	if kf*hm < 0. {
		return math.NaN(), fmt.Errorf("%w: Kussakin kf·hm = %v", ErrDomain, kf*hm)
	}
	return kussakinFactor * dh * math.Sqrt(kf*hm), nil
}

// ThiemQ computes the steady-state pumping rate Q [m³/s] of an unconfined
// aquifer under the Dupuit approximation from two head observations h1, h2
// [m] at radial distances r1, r2 [m]: Q = π·kf·(h2²−h1²)/ln(r2/r1).
// Non-positive radii or r1 == r2 return ErrDomain.
func ThiemQ(h1, h2, r1, r2, kf float64) (float64, error) {
	if r1 <= 0. || r2 <= 0. {
		return math.NaN(), fmt.Errorf("%w: ThiemQ radii must be positive (r1 = %v, r2 = %v)", ErrDomain, r1, r2)
	}
	if r1 == r2 {
		return math.NaN(), fmt.Errorf("%w: ThiemQ r1 == r2 = %v", ErrDomain, r1)
	}
	return math.Pi * kf * (h2*h2 - h1*h1) / math.Log(r2/r1), nil
}
