package commits

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Diagnostics writes human-readable error lines to a side channel, stderr by default.
// Nothing written here is part of a query result.
type Diagnostics struct {
	out   io.Writer
	color *color.Color
}

// NewDiagnostics creates a Diagnostics writer. A nil writer means os.Stderr.
func NewDiagnostics(out io.Writer) *Diagnostics {
	if out == nil {
		out = os.Stderr
	}
	return &Diagnostics{out: out, color: color.New(color.FgRed)}
}

// Errorf writes one diagnostic line.
func (d *Diagnostics) Errorf(format string, args ...interface{}) {
	d.color.Fprintln(d.out, fmt.Sprintf(format, args...))
}
