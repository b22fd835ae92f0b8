package suggest

/*
BSD 3-Clause License

Copyright (c) 2026, Martin Beroiz

Please refer to the License file in the repository root.

*/

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Printer lays out completion candidates in columns for a fixed-width
// output device.
//
// Stem is the color for the leading run a candidate shares with the query,
// Continuation for the proposed remainder. Both may be left nil to use the
// default palette.
type Printer struct {
	Stem         *color.Color
	Continuation *color.Color
	LineWidth    int // line length in fixed-width character positions
}

// NewPrinter creates a printer with the default palette and a line width
// read from the current terminal (see LineWidthFromTerminal).
func NewPrinter() *Printer {
	return &Printer{
		Stem:         color.New(color.FgBlue),
		Continuation: color.New(color.FgRed),
		LineWidth:    LineWidthFromTerminal(),
	}
}

// Print writes candidates to stdout; see Fprint.
func (p *Printer) Print(query string, candidates []string) error {
	return p.Fprint(os.Stdout, query, candidates)
}

// Fprint writes candidates in row-major columns to w. The leading run each
// candidate shares with query is colored as stem, the remainder as
// continuation. Candidates are printed in the order given.
func (p *Printer) Fprint(w io.Writer, query string, candidates []string) error {
	if len(candidates) == 0 {
		return nil
	}
	colwidth := 0
	for _, c := range candidates {
		if len(c) > colwidth {
			colwidth = len(c)
		}
	}
	colwidth += 2 // gutter
	columns := p.LineWidth / colwidth
	if columns < 1 {
		columns = 1
	}
	for i, candidate := range candidates {
		stem := commonRun(query, candidate)
		if err := p.styled(w, stem, p.Stem); err != nil {
			return err
		}
		if err := p.styled(w, candidate[len(stem):], p.Continuation); err != nil {
			return err
		}
		lastInRow := (i+1)%columns == 0 || i == len(candidates)-1
		if lastInRow {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			continue
		}
		pad := strings.Repeat(" ", colwidth-len(candidate))
		if _, err := io.WriteString(w, pad); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) styled(w io.Writer, s string, c *color.Color) error {
	if s == "" {
		return nil
	}
	if c == nil {
		_, err := io.WriteString(w, s)
		return err
	}
	_, err := c.Fprint(w, s)
	return err
}

// LineWidthFromTerminal checks whether stdout is a terminal, and if so
// reads the terminal's width to derive a usable line length. Non-terminal
// output gets a fixed default.
func LineWidthFromTerminal() int {
	if !term.IsTerminal(0) {
		return 65
	}
	w, _, err := term.GetSize(0)
	if err != nil {
		return 65
	}
	linewidth := 65
	if w > 65 {
		linewidth = w - 10
	} else if w > 30 {
		linewidth = w - 5
	} else if w > 10 {
		linewidth = w
	} else {
		linewidth = 10
	}
	T().P("format", "console").Infof("setting line length to %d en", linewidth)
	return linewidth
}

// commonRun returns the longest common leading symbol run of a and b.
func commonRun(a, b string) string {
	limit := min(len(a), len(b))
	i := 0
	for i < limit && a[i] == b[i] {
		i++
	}
	return a[:i]
}
