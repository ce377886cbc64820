package main

import (
	"fmt"
	"log"

	"github.com/Ignimbrit/thiemwork"
	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
)

func main() {

	const (
		// test well in a sandy unconfined aquifer
		kf = 3e-4     // hydraulic conductivity [m/s]
		h0 = 12.      // undisturbed saturated thickness [m]
		rw = 0.05     // well radius [m]
		Q  = 0.001731 // pumping rate [m³/s]

		obsfp = "obs/pumptest.csv" // optional steady-state pumping-test observations
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nRun complete.")

	cone, err := thiemwork.NewConeDefault(Q, h0, rw, kf)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf(" water column at well: %.3f m (drawdown %.3f m)\n", cone.H, cone.Dh)
	fmt.Printf(" radius of influence:  %.1f m\n", cone.R)

	// cone-of-depression profile out to beyond the radius of influence
	const n = 200
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rw + float64(i)*(1.2*cone.R-rw)/float64(n-1)
	}
	hs, err := cone.Profile(xs)
	if err != nil {
		log.Fatalf("%v", err)
	}
	ixs, ihs := make([]interface{}, n), make([]interface{}, n)
	for i := range xs {
		ixs[i], ihs[i] = xs[i], hs[i]
	}
	mmio.WriteCSV("coneshape.csv", "x,h", ixs, ihs)
	tt.Print("cone profile written\n")

	// drawdown uncertainty given ranges of conductivity and pumping rate
	dhs, err := thiemwork.GenerateSamples(thiemwork.SampleSpace{
		KfMin: 1e-4, KfMax: 1e-3,
		QMin: .75 * Q, QMax: 1.25 * Q,
	}, 500, h0, rw, "mc.")
	if err != nil {
		log.Fatalf("%v", err)
	}
	mean, dlo, dhi := 0., dhs[0], dhs[0]
	for _, v := range dhs {
		mean += v
		if v < dlo {
			dlo = v
		}
		if v > dhi {
			dhi = v
		}
	}
	mean /= float64(len(dhs))
	fmt.Printf(" drawdown realizations: mean %.3f m, range [%.3f, %.3f] m\n", mean, dlo, dhi)

	// calibrate conductivity to pumping-test observations when provided
	if _, ok := mmio.FileExists(obsfp); ok {
		obs, err := thiemwork.ReadHeadObs(obsfp)
		if err != nil {
			log.Fatalf("%v", err)
		}
		kfit, nse, err := thiemwork.EstimateKf(obs, Q, h0, rw, 1e-6, 1e-2)
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf(" fitted kf: %.3e m/s  NSE: %.3f\n", kfit, nse)

		fit, err := thiemwork.NewConeDefault(Q, h0, rw, kfit)
		if err != nil {
			log.Fatalf("%v", err)
		}
		io, is, ix := make([]interface{}, len(obs)), make([]interface{}, len(obs)), make([]interface{}, len(obs))
		o, s := make([]float64, len(obs)), make([]float64, len(obs))
		for i, v := range obs {
			h, err := fit.HeadAt(v.X)
			if err != nil {
				log.Fatalf("%v", err)
			}
			ix[i], io[i], is[i] = v.X, v.H, h
			o[i], s[i] = v.H, h
		}
		mmio.WriteCSV("pumptest.fit.csv", "x,obs,sim", ix, io, is)
		fmt.Println(" fitted-profile bias: ", objfunc.Bias(o, s))
	}
}
