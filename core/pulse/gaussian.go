package pulse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Gaussian is a truncated Gaussian envelope centred on the pulse midpoint.
// The envelope is lifted so the first and last samples sit at zero, then
// rescaled to peak at Amp.
type Gaussian struct {
	Dur   int64
	Amp   complex128
	Sigma float64
}

func (p Gaussian) Name() string    { return "gaussian" }
func (p Gaussian) Duration() int64 { return p.Dur }

func (p Gaussian) Validate() error {
	if err := validateCommon(p.Name(), p.Dur, p.Amp); err != nil {
		return err
	}
	if p.Sigma <= 0 {
		return fmt.Errorf("%s: %w", p.Name(), ErrSigma)
	}
	return nil
}

func (p Gaussian) Samples() []complex128 {
	return liftedGaussian(p.Dur, p.Amp, p.Sigma)
}

// liftedGaussian evaluates a Gaussian over [0, dur), subtracts the boundary
// value and renormalises so the midpoint still reaches amp.
func liftedGaussian(dur int64, amp complex128, sigma float64) []complex128 {
	centre := float64(dur-1) / 2
	edge := gauss(-1-centre, sigma)
	peak := 1 - edge
	out := make([]complex128, dur)
	for i := range out {
		v := (gauss(float64(i)-centre, sigma) - edge) / peak
		if scalar.EqualWithinAbs(v, 0, 1e-12) {
			v = 0
		}
		out[i] = amp * complex(v, 0)
	}
	return out
}

func gauss(x, sigma float64) float64 {
	return math.Exp(-x * x / (2 * sigma * sigma))
}

// GaussianSquare ramps up with a Gaussian edge, holds Amp for Width samples
// and ramps down symmetrically.
type GaussianSquare struct {
	Dur   int64
	Amp   complex128
	Sigma float64
	Width int64
}

func (p GaussianSquare) Name() string    { return "gaussian_square" }
func (p GaussianSquare) Duration() int64 { return p.Dur }

func (p GaussianSquare) Validate() error {
	if err := validateCommon(p.Name(), p.Dur, p.Amp); err != nil {
		return err
	}
	if p.Sigma <= 0 {
		return fmt.Errorf("%s: %w", p.Name(), ErrSigma)
	}
	if p.Width < 0 || p.Width > p.Dur {
		return fmt.Errorf("%s: width %d outside [0, %d]", p.Name(), p.Width, p.Dur)
	}
	return nil
}

func (p GaussianSquare) Samples() []complex128 {
	ramp := (p.Dur - p.Width) / 2
	riseCentre := float64(ramp)
	fallCentre := float64(ramp + p.Width)
	out := make([]complex128, p.Dur)
	for i := range out {
		x := float64(i)
		switch {
		case x < riseCentre:
			out[i] = p.Amp * complex(gauss(x-riseCentre, p.Sigma), 0)
		case x >= fallCentre:
			out[i] = p.Amp * complex(gauss(x-fallCentre, p.Sigma), 0)
		default:
			out[i] = p.Amp
		}
	}
	return out
}
