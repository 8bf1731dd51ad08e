package robust

import (
	"math"
	"testing"
)

func TestUncertain(t *testing.T) {
	c := Certain(Positive)
	if v, ok := c.Value(); !ok || v != Positive {
		t.Errorf("Certain(Positive).Value() = %v, %v", v, ok)
	}
	if !c.IsCertain() {
		t.Error("Certain(Positive).IsCertain() = false")
	}

	var zero Uncertain[Sign]
	if zero.IsCertain() {
		t.Error("zero Uncertain is certain, want indeterminate")
	}
	if zero != Indeterminate[Sign]() {
		t.Error("zero Uncertain differs from Indeterminate()")
	}
	// A certain Zero is not the zero value.
	if Certain(Zero) == zero {
		t.Error("Certain(Zero) == zero value")
	}
}

func TestUncertain_String(t *testing.T) {
	tests := []struct {
		u    Uncertain[Sign]
		want string
	}{
		{Certain(Negative), "negative"},
		{Certain(Zero), "zero"},
		{Indeterminate[Sign](), "indeterminate"},
	}
	for _, tt := range tests {
		if got := tt.u.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestUncertainBool(t *testing.T) {
	tests := []struct {
		name      string
		u         Uncertain[bool]
		certainly bool
		possibly  bool
		not       Uncertain[bool]
	}{
		{"true", Certain(true), true, true, Certain(false)},
		{"false", Certain(false), false, false, Certain(true)},
		{"indeterminate", Indeterminate[bool](), false, true, Indeterminate[bool]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Certainly(tt.u); got != tt.certainly {
				t.Errorf("Certainly() = %v, want %v", got, tt.certainly)
			}
			if got := Possibly(tt.u); got != tt.possibly {
				t.Errorf("Possibly() = %v, want %v", got, tt.possibly)
			}
			if got := Not(tt.u); got != tt.not {
				t.Errorf("Not() = %v, want %v", got, tt.not)
			}
		})
	}
}

func TestSignIs(t *testing.T) {
	tests := []struct {
		u    Uncertain[Sign]
		s    Sign
		want Uncertain[bool]
	}{
		{Certain(Positive), Positive, Certain(true)},
		{Certain(Negative), Positive, Certain(false)},
		{Indeterminate[Sign](), Zero, Indeterminate[bool]()},
	}
	for _, tt := range tests {
		if got := SignIs(tt.u, tt.s); got != tt.want {
			t.Errorf("SignIs(%v, %v) = %v, want %v", tt.u, tt.s, got, tt.want)
		}
	}
}

func TestSignOf(t *testing.T) {
	tests := []struct {
		x    float64
		want Sign
	}{
		{3, Positive},
		{-0.5, Negative},
		{0, Zero},
		{math.Copysign(0, -1), Zero},
		{math.Inf(-1), Negative},
		{math.NaN(), Zero},
	}
	for _, tt := range tests {
		if got := SignOf(tt.x); got != tt.want {
			t.Errorf("SignOf(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestSign_Algebra(t *testing.T) {
	signs := []Sign{Negative, Zero, Positive}
	for _, s := range signs {
		if s.Negate().Negate() != s {
			t.Errorf("%v.Negate().Negate() = %v", s, s.Negate().Negate())
		}
		for _, u := range signs {
			if got, want := s.Mul(u), Sign(int(s)*int(u)); got != want {
				t.Errorf("%v.Mul(%v) = %v, want %v", s, u, got, want)
			}
		}
	}
	if Sign(5).String() != "invalid" {
		t.Errorf("Sign(5).String() = %q, want %q", Sign(5).String(), "invalid")
	}
	if CounterClockwise != Positive || OnNegativeSide != Negative || Equal != Zero {
		t.Error("relation constants do not map onto Sign")
	}
}
