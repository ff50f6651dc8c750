// Package parsecli contains the interactive terminal front end of the parse
// form. Each round prompts for the four form fields and then submits them.
package parsecli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/twipi/parseform/parseapi"
	"github.com/twipi/parseform/parseform"
)

// LineReader reads lines of user input. It is implemented by
// *readline.Instance.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

var _ LineReader = (*readline.Instance)(nil)

// Prompts maps each field name to the prompt shown when reading it.
var Prompts = map[string]string{
	parseapi.FieldDocxIn:  "Input DOCX file: ",
	parseapi.FieldXLSXIn:  "Input XLSX file: ",
	parseapi.FieldDocxOut: "Output DOCX file: ",
	parseapi.FieldXLSXOut: "Output XLSX file: ",
}

// Prompt is an interactive form on a terminal.
type Prompt struct {
	reader LineReader
	form   *parseform.Handler
	view   parseform.View
}

// NewPrompt creates a new Prompt.
func NewPrompt(reader LineReader, form *parseform.Handler, view parseform.View) *Prompt {
	return &Prompt{
		reader: reader,
		form:   form,
		view:   view,
	}
}

// ErrDone is returned by ReadFields when the user ends the input.
var ErrDone = errors.New("input closed")

// ReadFields prompts for every field in form order. Values are returned as
// typed; trimming is left to the form. ErrDone is returned if the user ends
// the input with EOF or an interrupt.
func (p *Prompt) ReadFields() (parseform.FieldMap, error) {
	fields := make(parseform.FieldMap, len(parseapi.FieldNames))
	for _, name := range parseapi.FieldNames {
		p.reader.SetPrompt(Prompts[name])

		line, err := p.reader.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil, ErrDone
			}
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		fields[name] = line
	}
	return fields, nil
}

// Run loops until the input ends or ctx is canceled. Every complete set of
// fields activates the form once; failures are rendered by the view and do
// not stop the loop.
func (p *Prompt) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		fields, err := p.ReadFields()
		if err != nil {
			if errors.Is(err, ErrDone) {
				return nil
			}
			return err
		}

		p.form.Submit(ctx, fields, p.view)
	}
	return ctx.Err()
}

// Once submits fields a single time without prompting.
func Once(ctx context.Context, form *parseform.Handler, view parseform.View, fields parseform.Fields) error {
	return form.Submit(ctx, fields, view)
}
