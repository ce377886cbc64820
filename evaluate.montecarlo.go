package thiemwork

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gosuri/uiprogress"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
)

// SampleSpace bounds the uncertain inputs of a Monte Carlo drawdown run:
// hydraulic conductivity is sampled log-uniformly on [KfMin, KfMax], the
// pumping rate uniformly on [QMin, QMax].
type SampleSpace struct {
	KfMin, KfMax float64
	QMin, QMax   float64
}

// GenerateSamples draws n Latin-hypercube realizations of (kf, Q), solves
// the steady-state drawdown for each, writes the sample space and the
// realizations to outdirprfx-prefixed csv files, and returns the drawdowns
// [m]. Any realization whose pumping rate is unattainable within [0.001, h0]
// fails the whole run.
func GenerateSamples(ss SampleSpace, n int, h0, rw float64, outdirprfx string) ([]float64, error) {
	const p = 2 // sampling dimensions: kf, Q

	// build sampling plan
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, p, false)

	func() { // save sample space
		lns := make([]string, n)
		for k := 0; k < n; k++ {
			lns[k] = fmt.Sprint(k)
			for j := 0; j < p; j++ {
				lns[k] += fmt.Sprintf(",%f", sp.U[j][k])
			}
		}
		mmio.WriteLines(outdirprfx+"samplespace.csv", lns)
	}()

	uiprogress.Start()
	bar := uiprogress.AddBar(n).AppendCompleted().PrependElapsed()

	dhs := make([]float64, n)
	ks, kfs, qs, idhs := make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n)
	for k := 0; k < n; k++ {
		kf := mmaths.LogLinearTransform(ss.KfMin, ss.KfMax, sp.U[0][k])
		q := mmaths.LinearTransform(ss.QMin, ss.QMax, sp.U[1][k])
		dh, err := SolveDhDefault(q, h0, rw, kf)
		if err != nil {
			uiprogress.Stop()
			return nil, fmt.Errorf("GenerateSamples realization %d (kf = %v, Q = %v): %v", k, kf, q, err)
		}
		dhs[k] = dh
		ks[k], kfs[k], qs[k], idhs[k] = k, kf, q, dh
		bar.Incr()
	}
	uiprogress.Stop()

	mmio.WriteCSV(outdirprfx+"drawdown.csv", "k,kf,Q,dh", ks, kfs, qs, idhs)
	return dhs, nil
}
