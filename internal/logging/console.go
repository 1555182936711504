package logging

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/width"
)

const lineWidth = 46

// Console prints the startup banner and progress lines.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console { return &Console{w: w} }

// DisplayWidth counts terminal columns: wide and fullwidth runes take two.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func (c *Console) Banner(title, subtitle string) {
	inner := lineWidth - 2
	fmt.Fprintln(c.w)
	fmt.Fprintf(c.w, "\033[36;1m  ┌%s┐\033[0m\n", strings.Repeat("─", inner))
	fmt.Fprintf(c.w, "\033[36;1m  │\033[0m%s\033[36;1m│\033[0m\n", center(title, inner))
	fmt.Fprintf(c.w, "\033[36;1m  │\033[0m%s\033[36;1m│\033[0m\n", center(subtitle, inner))
	fmt.Fprintf(c.w, "\033[36;1m  └%s┘\033[0m\n", strings.Repeat("─", inner))
	fmt.Fprintln(c.w)
}

func (c *Console) Section(title string) {
	lineLen := lineWidth - DisplayWidth(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Fprintf(c.w, "  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

// Stat prints "label ······ value" padded to the section width.
func (c *Console) Stat(label string, value any) {
	valStr := fmt.Sprint(value)
	dotsLen := lineWidth - 4 - DisplayWidth(label) - DisplayWidth(valStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Fprintf(c.w, "  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), valStr)
}

func (c *Console) OK(msg string) {
	fmt.Fprintf(c.w, "  \033[32m✓\033[0m %s\n", msg)
}

func (c *Console) Ready(msg string) {
	fmt.Fprintf(c.w, "  \033[32m▶\033[0m %s\n", msg)
}

func center(s string, w int) string {
	pad := w - DisplayWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
