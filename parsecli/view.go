package parsecli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/twipi/parseform/parseapi"
	"github.com/twipi/parseform/parseform"
)

var (
	headingColor = color.New(color.Bold)
	labelColor   = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed, color.Bold)
	loadingColor = color.New(color.FgYellow)
)

// TerminalView renders the form's state as lines of text.
type TerminalView struct {
	w    io.Writer
	busy bool
}

var _ parseform.View = (*TerminalView)(nil)

// NewTerminalView creates a new TerminalView writing to w. Colors follow
// [color.NoColor].
func NewTerminalView(w io.Writer) *TerminalView {
	return &TerminalView{w: w}
}

// Busy returns whether a submission is in flight.
func (v *TerminalView) Busy() bool {
	return v.busy
}

// SetBusy implements [parseform.View].
func (v *TerminalView) SetBusy(busy bool) {
	if busy && !v.busy {
		loadingColor.Fprintln(v.w, parseform.LoadingMessage)
	}
	v.busy = busy
}

// ClearResult implements [parseform.View]. Lines already written stay on the
// terminal, so there is nothing to clear.
func (v *TerminalView) ClearResult() {}

// ShowResult implements [parseform.View].
func (v *TerminalView) ShowResult(resp *parseapi.Response) {
	headingColor.Fprintln(v.w, parseform.ResultHeading)
	for _, entry := range parseform.Entries(resp) {
		if entry.Block {
			labelColor.Fprintf(v.w, "%s:\n", entry.Label)
			fmt.Fprintln(v.w, indent(entry.Value))
			continue
		}
		labelColor.Fprintf(v.w, "%s: ", entry.Label)
		fmt.Fprintln(v.w, entry.Value)
	}
}

// ShowError implements [parseform.View].
func (v *TerminalView) ShowError(err error) {
	if parseform.IsValidationError(err) {
		errorColor.Fprintln(v.w, parseform.ValidationMessage)
		return
	}
	errorColor.Fprintln(v.w, parseform.ErrorHeading)
	fmt.Fprintln(v.w, parseform.ErrorText(err))
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
