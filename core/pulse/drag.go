package pulse

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs"
)

// Drag is a Gaussian with a derivative correction on the imaginary part,
// used to suppress leakage into higher transmon levels.
type Drag struct {
	Dur   int64
	Amp   complex128
	Sigma float64
	Beta  float64
}

func (p Drag) Name() string    { return "drag" }
func (p Drag) Duration() int64 { return p.Dur }

func (p Drag) Validate() error {
	if err := validateCommon(p.Name(), p.Dur, p.Amp); err != nil {
		return err
	}
	if p.Sigma <= 0 {
		return fmt.Errorf("%s: %w", p.Name(), ErrSigma)
	}
	return nil
}

func (p Drag) Samples() []complex128 {
	base := liftedGaussian(p.Dur, p.Amp, p.Sigma)
	centre := float64(p.Dur-1) / 2
	corr := make([]complex128, p.Dur)
	for i := range corr {
		// d/dx gauss = -(x-c)/sigma^2 * gauss
		d := -(float64(i) - centre) / (p.Sigma * p.Sigma)
		corr[i] = complex(0, p.Beta*d)
	}
	cmplxs.Mul(corr, base)
	cmplxs.Add(base, corr)
	return base
}
