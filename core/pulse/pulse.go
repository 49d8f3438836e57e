package pulse

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Pulse is a parametric complex envelope played on a channel. Samples are
// emitted at the hardware sample rate, one value per dt tick.
type Pulse interface {
	Name() string
	Duration() int64
	Samples() []complex128
	Validate() error
}

var (
	ErrDuration  = errors.New("pulse duration must be positive")
	ErrAmplitude = errors.New("pulse amplitude magnitude must not exceed 1")
	ErrSigma     = errors.New("pulse sigma must be positive")
)

func validateCommon(name string, duration int64, amp complex128) error {
	if duration <= 0 {
		return fmt.Errorf("%s: %w", name, ErrDuration)
	}
	if cmplx.Abs(amp) > 1 {
		return fmt.Errorf("%s: %w (got %.4f)", name, ErrAmplitude, cmplx.Abs(amp))
	}
	return nil
}

// PeakAmplitude returns the largest sample magnitude of the envelope.
func PeakAmplitude(p Pulse) float64 {
	samples := p.Samples()
	if len(samples) == 0 {
		return 0
	}
	mags := make([]float64, len(samples))
	for i, s := range samples {
		mags[i] = cmplx.Abs(s)
	}
	return floats.Max(mags)
}
