package thiemwork

const (
	// empirical radius-of-influence factors
	sichardtFactor = 3000.
	kussakinFactor = 575.

	// base-10 conversion of the Thiem logarithm, as conventionally tabulated
	log10conv = 2.3

	// DhMinDefault is the smallest searchable drawdown [m]
	DhMinDefault = 0.001

	// relative residual accepted from the bounded drawdown search; a coarse
	// screen against unattainable pumping rates, not a precision guarantee
	convtol = 0.01

	qeps = 1e-12
)
