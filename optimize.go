package thiemwork

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/maseology/glbopt"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
	"github.com/maseology/mmaths"
	"github.com/maseology/objfunc"
)

// HeadObs is one pumping-test observation: hydraulic head H [m] measured at
// radial distance X [m] from the pumped well.
type HeadObs struct {
	X, H float64
}

// EstimateKf fits hydraulic conductivity to steady-state pumping-test
// observations of the cone of depression by maximizing the Nash-Sutcliffe
// efficiency of the simulated heads. kf is searched log-linearly on
// [kfmin, kfmax]; conductivities that cannot sustain Q are scored out.
// Returns the fitted conductivity [m/s] and its NSE.
func EstimateKf(obs []HeadObs, Q, h0, rw, kfmin, kfmax float64) (float64, float64, error) {
	if len(obs) == 0 {
		return math.NaN(), math.NaN(), fmt.Errorf("EstimateKf: no observations given")
	}

	o := make([]float64, len(obs))
	for i, v := range obs {
		o[i] = v.H
	}

	gen := func(kf float64) ([]float64, error) {
		c, err := NewConeDefault(Q, h0, rw, kf)
		if err != nil {
			return nil, err
		}
		return c.Profile(xsOf(obs))
	}

	eval := func(u []float64) float64 {
		kf := mmaths.LogLinearTransform(kfmin, kfmax, u[0])
		sim, err := gen(kf)
		if err != nil {
			return -9999. // infeasible realization
		}
		return objfunc.NSE(o, sim)
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	uFinal, _ := glbopt.SCE(8, 1, rng, eval, false)

	kf := mmaths.LogLinearTransform(kfmin, kfmax, uFinal[0])
	sim, err := gen(kf)
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("EstimateKf: fitted kf = %v infeasible: %v", kf, err)
	}
	return kf, objfunc.NSE(o, sim), nil
}

func xsOf(obs []HeadObs) []float64 {
	xs := make([]float64, len(obs))
	for i, v := range obs {
		xs[i] = v.X
	}
	return xs
}
