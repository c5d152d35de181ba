package systems

import (
	"fmt"
	"io"
)

// traceWriter receives one line per pipeline event when installed.
// Nil (the default) disables tracing entirely.
var traceWriter io.Writer

func SetTraceWriter(w io.Writer) {
	traceWriter = w
}

func Tracef(format string, args ...any) {
	if traceWriter == nil {
		return
	}
	fmt.Fprintf(traceWriter, format+"\n", args...)
}
