package service

import (
	"fmt"
	"io"
)

// TerminalNotifier writes notifications to the terminal: successes to out,
// errors to errOut
type TerminalNotifier struct {
	out    io.Writer
	errOut io.Writer
}

// NewTerminalNotifier creates a notifier over the given writers
func NewTerminalNotifier(out, errOut io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out, errOut: errOut}
}

func (n *TerminalNotifier) Success(msg string) {
	fmt.Fprintf(n.out, "✅ %s\n", msg)
}

func (n *TerminalNotifier) Error(msg string) {
	fmt.Fprintf(n.errOut, "❌ %s\n", msg)
}

// NopNavigator discards navigation commands; the terminal has no views to
// switch between
type NopNavigator struct{}

func (NopNavigator) NavigateTo(NavTarget) {}
