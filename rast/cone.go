// Package rast evaluates the closed-form cone of depression of a pumped well
// over the cells of a uniform model grid and writes the resulting head
// rasters. It is postprocessing only; no discretized flow is solved.
package rast

import (
	"fmt"
	"math"

	"github.com/Ignimbrit/thiemwork"
	"github.com/im7mortal/UTM"
	"github.com/maseology/mmio"
)

// Definition is a uniform, row-major grid: Eorig, Norig locate the
// upper-left corner, Cs is the cell size [m], cell id = i*Nc + j.
type Definition struct {
	Eorig, Norig, Cs float64
	Nr, Nc           int
}

// Ncells returns the total cell count.
func (gd Definition) Ncells() int { return gd.Nr * gd.Nc }

// CellCentroid returns the easting and northing of cell cid's centroid.
func (gd Definition) CellCentroid(cid int) (float64, float64) {
	i, j := cid/gd.Nc, cid%gd.Nc
	return gd.Eorig + (float64(j)+.5)*gd.Cs, gd.Norig - (float64(i)+.5)*gd.Cs
}

// Well locates a pumped well on a model grid and carries its steady-state
// pumping parameters.
type Well struct {
	E, N          float64 // easting, northing [m], grid projection
	Q, H0, Rw, Kf float64
}

// FromLatLon positions a well from geographic coordinates.
func FromLatLon(lat, lon, q, h0, rw, kf float64) (Well, error) {
	e, n, _, _, err := UTM.FromLatLon(lat, lon, lat >= 0.)
	if err != nil {
		return Well{}, fmt.Errorf("rast.FromLatLon: %v", err)
	}
	return Well{E: e, N: n, Q: q, H0: h0, Rw: rw, Kf: kf}, nil
}

// Heads evaluates the steady-state head at every cell centroid. Cells
// intersecting the borehole take the well-face head.
func Heads(gd Definition, w Well) (map[int]float64, error) {
	if gd.Ncells() <= 0 || gd.Cs <= 0. {
		return nil, fmt.Errorf("rast.Heads: degenerate grid definition")
	}
	c, err := thiemwork.NewConeDefault(w.Q, w.H0, w.Rw, w.Kf)
	if err != nil {
		return nil, fmt.Errorf("rast.Heads: %v", err)
	}
	hm := make(map[int]float64, gd.Ncells())
	for cid := 0; cid < gd.Ncells(); cid++ {
		cx, cy := gd.CellCentroid(cid)
		x := math.Hypot(cx-w.E, cy-w.N)
		if x < w.Rw {
			x = w.Rw
		}
		h, err := c.HeadAt(x)
		if err != nil {
			return nil, fmt.Errorf("rast.Heads: cell %d: %v", cid, err)
		}
		hm[cid] = h
	}
	return hm, nil
}

// WriteCone evaluates the steady-state head and drawdown at every cell of
// the grid definition and writes outdirprfx-prefixed rasters.
func WriteCone(gd Definition, outdirprfx string, w Well) error {
	hm, err := Heads(gd, w)
	if err != nil {
		return fmt.Errorf("rast.WriteCone: %v", err)
	}
	dm := make(map[int]float64, len(hm))
	for cid, h := range hm {
		dm[cid] = w.H0 - h
	}
	if err := mmio.WriteRMAP(outdirprfx+"head.rmap", hm, false); err != nil {
		return fmt.Errorf("rast.WriteCone: %v", err)
	}
	if err := mmio.WriteRMAP(outdirprfx+"drawdown.rmap", dm, false); err != nil {
		return fmt.Errorf("rast.WriteCone: %v", err)
	}
	return nil
}
