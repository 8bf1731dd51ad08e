package robust

import (
	"errors"
	"testing"
)

func TestCheckArity(t *testing.T) {
	tests := []struct {
		args    []int
		n       int
		wantErr bool
	}{
		{[]int{1, 2, 3}, 3, false},
		{nil, 0, false},
		{[]int{1}, 2, true},
		{[]int{1, 2, 3}, 2, true},
	}
	for _, tt := range tests {
		err := CheckArity(tt.args, tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckArity(%v, %d) error = %v, wantErr %v", tt.args, tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrArity) {
			t.Errorf("CheckArity(%v, %d) error = %v, want ErrArity", tt.args, tt.n, err)
		}
	}
}

func TestArgError(t *testing.T) {
	inner := errors.New("bad coordinate")
	err := error(&ArgError{Index: 2, Err: inner})

	if got, want := err.Error(), "argument 2: bad coordinate"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, inner) {
		t.Error("ArgError does not unwrap to its cause")
	}
}

func TestConverterFuncs(t *testing.T) {
	c := ConverterFuncs[string, int, int, float64]{
		Arg: func(a int) (float64, error) { return float64(a) / 2, nil },
	}

	s, err := c.ConvertState("ignored")
	if err != nil || s != 0 {
		t.Errorf("ConvertState() = %v, %v, want zero state", s, err)
	}

	got, err := convertArgs[string, int, int, float64](c, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("convertArgs() error = %v", err)
	}
	if len(got) != 3 || got[2] != 1.5 {
		t.Errorf("convertArgs() = %v, want [0.5 1 1.5]", got)
	}

	failing := ConverterFuncs[string, int, int, float64]{
		Arg: func(a int) (float64, error) {
			if a < 0 {
				return 0, errors.New("negative")
			}
			return float64(a), nil
		},
	}
	_, err = convertArgs[string, int, int, float64](failing, []int{1, -1, 2})
	var argErr *ArgError
	if !errors.As(err, &argErr) || argErr.Index != 1 {
		t.Errorf("convertArgs() error = %v, want *ArgError at index 1", err)
	}
}
