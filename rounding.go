package robust

import "sync/atomic"

// RoundingMode is a floating-point rounding direction.
// The zero value is RoundToNearest, the IEEE 754 default.
type RoundingMode uint8

const (
	// RoundToNearest rounds to the nearest representable value, ties to even.
	RoundToNearest RoundingMode = iota

	// RoundUpward rounds toward +Inf.
	RoundUpward

	// RoundDownward rounds toward -Inf.
	RoundDownward

	// RoundTowardZero truncates.
	RoundTowardZero
)

// FastPathRounding is the mode the approximate evaluation runs under.
// Interval arithmetic in this package emulates outward rounding with
// error-free transformations, which are only exact when the hardware rounds
// to nearest.
const FastPathRounding = RoundToNearest

// String returns the mode name.
func (m RoundingMode) String() string {
	switch m {
	case RoundToNearest:
		return "to-nearest"
	case RoundUpward:
		return "upward"
	case RoundDownward:
		return "downward"
	case RoundTowardZero:
		return "toward-zero"
	default:
		return "unknown"
	}
}

// RoundingControl reads and writes an ambient rounding-mode register.
//
// A register is execution-unit state: implementations must either be owned
// by one goroutine at a time or be safe for concurrent use. The filter only
// ever changes the mode inside ProtectRounding, which always restores it.
type RoundingControl interface {
	RoundingMode() RoundingMode
	SetRoundingMode(RoundingMode)
}

// goRounding is the register of the Go runtime itself. Go performs all
// float64 arithmetic in round-to-nearest and offers no way to change it, so
// the mode is fixed and writes are ignored.
type goRounding struct{}

func (goRounding) RoundingMode() RoundingMode    { return RoundToNearest }
func (goRounding) SetRoundingMode(RoundingMode) {}

// GoRounding returns the rounding control of the Go runtime. It always
// reports RoundToNearest. It is the default control of every Predicate.
func GoRounding() RoundingControl {
	return goRounding{}
}

// FPU is a software rounding-mode register.
//
// Code that tracks a rounding mode of its own (an emulated FPU, a foreign
// numeric library reached through cgo, a test) keeps one FPU per goroutine
// and passes it to Predicate.EvalOn or WithRounding. The zero value is
// ready to use and holds RoundToNearest. FPU is safe for concurrent use, but
// sharing one register between goroutines lets them observe each other's
// modes, exactly as sharing a hardware register would.
type FPU struct {
	mode atomic.Uint32
}

// RoundingMode returns the current mode.
func (f *FPU) RoundingMode() RoundingMode {
	return RoundingMode(f.mode.Load())
}

// SetRoundingMode sets the current mode.
func (f *FPU) SetRoundingMode(m RoundingMode) {
	f.mode.Store(uint32(m))
}

// ProtectRounding switches ctl to mode and returns a function that restores
// the previous mode. The restore function is idempotent.
//
// Call it so that release cannot be skipped, on normal return, error return
// or panic:
//
//	defer robust.ProtectRounding(ctl, robust.RoundToNearest)()
//
// Guards nest: an inner guard restores the outer guard's mode.
func ProtectRounding(ctl RoundingControl, mode RoundingMode) (restore func()) {
	prev := ctl.RoundingMode()
	if prev != mode {
		ctl.SetRoundingMode(mode)
	}
	var released bool
	return func() {
		if released {
			return
		}
		released = true
		if ctl.RoundingMode() != prev {
			ctl.SetRoundingMode(prev)
		}
	}
}
