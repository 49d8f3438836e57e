package pulse

// Constant is a flat-top envelope holding a fixed complex amplitude for the
// whole duration.
type Constant struct {
	Dur int64
	Amp complex128
}

func (p Constant) Name() string    { return "constant" }
func (p Constant) Duration() int64 { return p.Dur }

func (p Constant) Validate() error {
	return validateCommon(p.Name(), p.Dur, p.Amp)
}

func (p Constant) Samples() []complex128 {
	out := make([]complex128, p.Dur)
	for i := range out {
		out[i] = p.Amp
	}
	return out
}
