package thiemwork

import "errors"

var (
	// ErrDomain is returned when an input lies outside the mathematically
	// valid domain of a formula (e.g. kf < 0 under a square root, r1 == r2
	// under a logarithm, x ≤ 0 under log10).
	ErrDomain = errors.New("thiemwork: input outside formula domain")

	// ErrInvalidInterval is returned when the drawdown search bounds are
	// degenerate or inverted (dhmax ≤ dhmin).
	ErrInvalidInterval = errors.New("thiemwork: degenerate drawdown search interval")

	// ErrNoConvergence is returned when the bounded drawdown search cannot
	// bring the pumping-rate residual near zero, i.e. the target rate is not
	// attainable within the searched drawdown interval.
	ErrNoConvergence = errors.New("thiemwork: drawdown search failed to converge")
)
