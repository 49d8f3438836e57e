package pulse

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestConstantSamples(t *testing.T) {
	p := Constant{Dur: 4, Amp: 0.5}
	if err := p.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	s := p.Samples()
	if len(s) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(s))
	}
	for i, v := range s {
		if v != 0.5 {
			t.Fatalf("sample %d = %v, want 0.5", i, v)
		}
	}
}

func TestGaussianShape(t *testing.T) {
	p := Gaussian{Dur: 161, Amp: 0.8, Sigma: 40}
	if err := p.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	s := p.Samples()
	if len(s) != 161 {
		t.Fatalf("expected 161 samples, got %d", len(s))
	}
	mid := cmplx.Abs(s[80])
	if math.Abs(mid-0.8) > 1e-9 {
		t.Fatalf("peak %.6f, want 0.8", mid)
	}
	// symmetric and monotone toward the edges
	for i := 0; i < 80; i++ {
		if math.Abs(cmplx.Abs(s[i])-cmplx.Abs(s[160-i])) > 1e-9 {
			t.Fatalf("asymmetric at %d", i)
		}
		if cmplx.Abs(s[i]) > cmplx.Abs(s[i+1])+1e-12 {
			t.Fatalf("not monotone at %d", i)
		}
	}
	if cmplx.Abs(s[0]) > 0.05*0.8 {
		t.Fatalf("edge not lifted toward zero: %.4f", cmplx.Abs(s[0]))
	}
}

func TestGaussianSquareFlatTop(t *testing.T) {
	p := GaussianSquare{Dur: 100, Amp: 0.3, Sigma: 10, Width: 60}
	if err := p.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	s := p.Samples()
	for i := 20; i < 80; i++ {
		if s[i] != 0.3 {
			t.Fatalf("flat top broken at %d: %v", i, s[i])
		}
	}
	if cmplx.Abs(s[0]) >= 0.3 || cmplx.Abs(s[99]) >= 0.3 {
		t.Fatalf("ramps must stay below the plateau")
	}
}

func TestDragImaginaryCorrection(t *testing.T) {
	p := Drag{Dur: 160, Amp: 0.5, Sigma: 40, Beta: 2}
	if err := p.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	s := p.Samples()
	// derivative term is antisymmetric: positive imag on the rise,
	// negative on the fall
	if imag(s[20]) <= 0 {
		t.Fatalf("rising edge imag = %.6f, want > 0", imag(s[20]))
	}
	if imag(s[140]) >= 0 {
		t.Fatalf("falling edge imag = %.6f, want < 0", imag(s[140]))
	}
	g := Gaussian{Dur: 160, Amp: 0.5, Sigma: 40}.Samples()
	for i := range s {
		if math.Abs(real(s[i])-real(g[i])) > 1e-9 {
			t.Fatalf("real part must match the plain gaussian at %d", i)
		}
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []Pulse{
		Constant{Dur: 0, Amp: 0.1},
		Constant{Dur: 10, Amp: complex(1.2, 0)},
		Gaussian{Dur: 10, Amp: 0.1, Sigma: 0},
		GaussianSquare{Dur: 10, Amp: 0.1, Sigma: 2, Width: 20},
		Drag{Dur: 10, Amp: 0.1, Sigma: -1, Beta: 1},
	}
	for i, p := range cases {
		if err := p.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestPeakAmplitude(t *testing.T) {
	if got := PeakAmplitude(Constant{Dur: 5, Amp: complex(0, 0.7)}); math.Abs(got-0.7) > 1e-12 {
		t.Fatalf("peak = %.4f, want 0.7", got)
	}
}
