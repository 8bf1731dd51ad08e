package robust

// NoState is the persistent state of predicates that carry none.
type NoState struct{}

// Converter maps persistent state S and call arguments A into one number
// representation, CS and CA.
//
// A predicate uses two converters: one into the approximate (interval)
// representation and one into the exact representation. Both must be
// deterministic and free of side effects, and must preserve the value
// tested: approximate conversion may widen, exact conversion must not lose
// information. A value that cannot be represented at all (NaN coordinates,
// malformed input) is reported as an error.
type Converter[S, A, CS, CA any] interface {
	ConvertState(S) (CS, error)
	ConvertArg(A) (CA, error)
}

// ConverterFuncs adapts a pair of functions to Converter.
// A nil State function maps every state to the zero CS.
type ConverterFuncs[S, A, CS, CA any] struct {
	State func(S) (CS, error)
	Arg   func(A) (CA, error)
}

// ConvertState implements Converter.
func (c ConverterFuncs[S, A, CS, CA]) ConvertState(s S) (CS, error) {
	if c.State == nil {
		var zero CS
		return zero, nil
	}
	return c.State(s)
}

// ConvertArg implements Converter.
func (c ConverterFuncs[S, A, CS, CA]) ConvertArg(a A) (CA, error) {
	return c.Arg(a)
}

// convertArgs converts every argument, stopping at the first failure.
func convertArgs[S, A, CS, CA any](c Converter[S, A, CS, CA], args []A) ([]CA, error) {
	out := make([]CA, len(args))
	for i, a := range args {
		v, err := c.ConvertArg(a)
		if err != nil {
			return nil, &ArgError{Index: i, Err: err}
		}
		out[i] = v
	}
	return out, nil
}
