package dbg

import (
	"fmt"
	"os"
)

// Set PLANAR_DEBUG to any non-empty value to get sweep traces on stderr and
// debug drawings from the tests.
var Enabled = os.Getenv("PLANAR_DEBUG") != ""

func Printf(format string, args ...interface{}) {
	if !Enabled {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
