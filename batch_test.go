package robust

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEvalAll(t *testing.T) {
	h := &harness{}
	p := h.newPredicate(t, diagonal)

	var argSets [][]pt
	for i := range 24 {
		for j := range 24 {
			argSets = append(argSets, []pt{{ulps(0.5, i), ulps(0.5, j)}})
		}
	}
	argSets = append(argSets, []pt{{0, 100}}, []pt{{100, 0}})

	b := NewBatch(4)
	defer b.Close()

	got, err := EvalAll(b, p, argSets)
	if err != nil {
		t.Fatalf("EvalAll() error = %v", err)
	}
	if len(got) != len(argSets) {
		t.Fatalf("len(EvalAll()) = %d, want %d", len(got), len(argSets))
	}
	for k, args := range argSets {
		if want := exactSide(diagonal, args[0]); got[k] != want {
			t.Errorf("EvalAll()[%d] = %v, want %v", k, got[k], want)
		}
	}

	if st := p.Stats(); st.Calls != uint64(len(argSets)) || st.Materializations != 1 {
		t.Errorf("Stats() = %+v, want %d calls and 1 materialization", st, len(argSets))
	}
}

func TestEvalAll_Errors(t *testing.T) {
	h := &harness{}
	p := h.newPredicate(t, line{pt{0, 0}, pt{1, 1}})

	b := NewBatch(2)
	defer b.Close()

	argSets := [][]pt{
		{{0, 5}},
		{{math.NaN(), 0}},
		{{3, 3}},
		{{1, 2}, {3, 4}},
	}
	got, err := EvalAll(b, p, argSets)
	if err == nil {
		t.Fatal("EvalAll() error = nil, want joined errors")
	}
	if !errors.Is(err, ErrConversion) || !errors.Is(err, ErrArity) {
		t.Errorf("EvalAll() error = %v, want ErrConversion and ErrArity", err)
	}
	for _, want := range []string{"tuple 1", "tuple 3"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("EvalAll() error = %v, want mention of %q", err, want)
		}
	}

	// Successful tuples still carry their results.
	if got[0] != Positive || got[2] != Zero {
		t.Errorf("EvalAll() = %v, want [positive _ zero _]", got)
	}
}

func TestEvalAll_WorkerRoundingIsolated(t *testing.T) {
	h := &harness{}
	p := h.newPredicate(t, line{pt{0, 0}, pt{1, 1}})

	b := NewBatch(3)
	defer b.Close()
	for i := range b.fpus {
		b.fpus[i].SetRoundingMode(RoundingMode(1 + i%3))
	}

	argSets := make([][]pt, 300)
	for i := range argSets {
		v := float64(i)
		argSets[i] = []pt{{v, v}}
	}
	if _, err := EvalAll(b, p, argSets); err != nil {
		t.Fatalf("EvalAll() error = %v", err)
	}

	for i := range b.fpus {
		if got, want := b.fpus[i].RoundingMode(), RoundingMode(1+i%3); got != want {
			t.Errorf("worker %d rounding mode = %v, want %v", i, got, want)
		}
	}
}

func TestEvalAll_Closed(t *testing.T) {
	h := &harness{}
	p := h.newPredicate(t, line{pt{0, 0}, pt{1, 1}})

	b := NewBatch(2)
	if b.Workers() != 2 {
		t.Errorf("Workers() = %d, want 2", b.Workers())
	}
	b.Close()
	b.Close()

	if _, err := EvalAll(b, p, [][]pt{{{0, 5}}}); !errors.Is(err, ErrBatchClosed) {
		t.Errorf("EvalAll() error = %v, want ErrBatchClosed", err)
	}
}

func TestEvalAll_Empty(t *testing.T) {
	h := &harness{}
	p := h.newPredicate(t, line{pt{0, 0}, pt{1, 1}})

	b := NewBatch(0)
	defer b.Close()

	got, err := EvalAll(b, p, nil)
	if err != nil || len(got) != 0 {
		t.Errorf("EvalAll(nil) = %v, %v, want empty, nil", got, err)
	}
}

func BenchmarkEvalAll(b *testing.B) {
	h := &harness{}
	p := h.newPredicate(b, diagonal)

	argSets := make([][]pt, 4096)
	for i := range argSets {
		argSets[i] = []pt{{ulps(0.5, i%64), ulps(0.5, i/64)}}
	}

	batch := NewBatch(0)
	defer batch.Close()

	for b.Loop() {
		_, _ = EvalAll(batch, p, argSets)
	}
}
