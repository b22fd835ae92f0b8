/*
Package suggest presents completion candidates on terminals with a
fixed-width font, in the manner of a shell's tab-completion listing.

The package is output glue only: it takes the completion slices produced by
a patrix tree and arranges them in columns, visually separating the part of
each candidate already typed from the proposed continuation. Candidates are
laid out row-major in as many columns as the line width allows.

Line width is taken from the current terminal when stdout is interactive,
with a conservative fallback for pipes and files.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Martin Beroiz

Please refer to the License file in the repository root.

*/
package suggest

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
