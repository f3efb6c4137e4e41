package internal

import "github.com/pkg/errors"

// Threading errors through the sweep and the hull loops would add a lot of
// noise for conditions that only occur when an invariant is broken. Instead,
// we panic with a thrown error, and the public API recovers to convert it
// back.
//
// The error is wrapped so that runtime errors (index out of range and
// friends) are never mistaken for a throw; those still crash.
type thrown struct {
	err error
}

// Panic with a thrown error.
func fatalf(format string, args ...interface{}) {
	panic(thrown{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if t, ok := r.(thrown); ok {
			return t.err
		}
		panic(r)
	}
	return nil
}
