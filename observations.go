package thiemwork

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/maseology/mmio"
)

// ReadHeadObs loads steady-state pumping-test observations from a headed csv
// file of "x,h" records: radial distance from the pumped well [m] and the
// measured hydraulic head [m above the aquitard].
func ReadHeadObs(fp string) ([]HeadObs, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("ReadHeadObs: %v", err)
	}
	defer f.Close()

	var obs []HeadObs
	for rec := range mmio.LoadCSV(io.Reader(f), 1) {
		x, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("ReadHeadObs: %v", err)
		}
		h, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("ReadHeadObs: %v", err)
		}
		obs = append(obs, HeadObs{X: x, H: h})
	}
	if len(obs) == 0 {
		return nil, fmt.Errorf("ReadHeadObs: no records in %s", fp)
	}
	return obs, nil
}
