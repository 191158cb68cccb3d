package generator

import (
	"fmt"
	"strings"
)

// indent is one level of generated Java indentation
const indent = "  "

// sourceWriter accumulates Java statements at a current indentation level
type sourceWriter struct {
	b     strings.Builder
	level int
}

func newSourceWriter(level int) *sourceWriter {
	return &sourceWriter{level: level}
}

// line writes one formatted statement at the current level
func (w *sourceWriter) line(format string, args ...interface{}) {
	w.b.WriteString(strings.Repeat(indent, w.level))
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

// blank writes an empty line
func (w *sourceWriter) blank() {
	w.b.WriteByte('\n')
}

// block writes pre-rendered text, indenting every non-empty line
func (w *sourceWriter) block(text string) {
	prefix := strings.Repeat(indent, w.level)
	for _, l := range strings.SplitAfter(text, "\n") {
		if strings.TrimSpace(l) == "" {
			if strings.HasSuffix(l, "\n") {
				w.b.WriteByte('\n')
			}
			continue
		}
		w.b.WriteString(prefix)
		w.b.WriteString(l)
		if !strings.HasSuffix(l, "\n") {
			w.b.WriteByte('\n')
		}
	}
}

func (w *sourceWriter) indent() {
	w.level++
}

func (w *sourceWriter) dedent() {
	if w.level > 0 {
		w.level--
	}
}

func (w *sourceWriter) String() string {
	return w.b.String()
}
