package parsecli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/twipi/parseform/parseapi"
	"github.com/twipi/parseform/parseform"
)

func init() {
	color.NoColor = true
}

// scriptedReader returns its lines in order and then err.
type scriptedReader struct {
	lines   []string
	err     error
	prompts []string
}

func (r *scriptedReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", r.err
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

type parserFunc func(ctx context.Context, req parseapi.Request) (*parseapi.Response, error)

func (f parserFunc) Parse(ctx context.Context, req parseapi.Request) (*parseapi.Response, error) {
	return f(ctx, req)
}

func TestPromptRun(t *testing.T) {
	reader := &scriptedReader{
		lines: []string{
			"in.docx", " in.xlsx ", "out.docx", "out.xlsx",
			"in.docx", "", "out.docx", "out.xlsx",
		},
		err: io.EOF,
	}

	var reqs []parseapi.Request
	form := parseform.NewHandler(parserFunc(func(_ context.Context, req parseapi.Request) (*parseapi.Response, error) {
		reqs = append(reqs, req)
		return &parseapi.Response{
			Status:     "ok",
			OutputFile: "a.docx",
			XLSXOutput: "b.xlsx",
			Result:     parseapi.Summary{DocxSummary: "S1", XLSXSummary: "line 1\nline 2"},
		}, nil
	}))

	var out bytes.Buffer
	view := NewTerminalView(&out)

	err := NewPrompt(reader, form, view).Run(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, []parseapi.Request{{
		DocxIn:  "in.docx",
		XLSXIn:  "in.xlsx",
		DocxOut: "out.docx",
		XLSXOut: "out.xlsx",
	}}, reqs)

	assert.Equal(t, ""+
		"Processing...\n"+
		"Processing result:\n"+
		"Status: ok\n"+
		"DOCX file saved: a.docx\n"+
		"XLSX file saved: b.xlsx\n"+
		"DOCX summary:\n"+
		"  S1\n"+
		"XLSX summary:\n"+
		"  line 1\n"+
		"  line 2\n"+
		"Please fill in all fields!\n",
		out.String())

	assert.Equal(t, []string{
		"Input DOCX file: ", "Input XLSX file: ", "Output DOCX file: ", "Output XLSX file: ",
		"Input DOCX file: ", "Input XLSX file: ", "Output DOCX file: ", "Output XLSX file: ",
		"Input DOCX file: ",
	}, reader.prompts)
	assert.False(t, view.Busy())
}

func TestPromptRunInterrupt(t *testing.T) {
	reader := &scriptedReader{
		lines: []string{"in.docx"},
		err:   readline.ErrInterrupt,
	}

	form := parseform.NewHandler(parserFunc(func(context.Context, parseapi.Request) (*parseapi.Response, error) {
		t.Fatal("unexpected parse call")
		return nil, nil
	}))

	err := NewPrompt(reader, form, NewTerminalView(io.Discard)).Run(context.Background())
	assert.NoError(t, err)
}

func TestPromptRunReadError(t *testing.T) {
	readErr := errors.New("terminal gone")
	reader := &scriptedReader{err: readErr}

	form := parseform.NewHandler(parserFunc(nil))

	err := NewPrompt(reader, form, NewTerminalView(io.Discard)).Run(context.Background())
	assert.IsError(t, err, readErr)
	assert.Contains(t, err.Error(), "failed to read docx_in")
}

func TestPromptRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := &scriptedReader{err: io.EOF}
	err := NewPrompt(reader, parseform.NewHandler(parserFunc(nil)), NewTerminalView(io.Discard)).Run(ctx)
	assert.IsError(t, err, context.Canceled)
	assert.Equal(t, 0, len(reader.prompts))
}

func TestOnceError(t *testing.T) {
	form := parseform.NewHandler(parserFunc(func(context.Context, parseapi.Request) (*parseapi.Response, error) {
		return nil, &parseapi.HTTPError{StatusCode: 500}
	}))

	var out bytes.Buffer
	view := NewTerminalView(&out)

	err := Once(context.Background(), form, view, parseform.FieldMap{
		"docx_in":  "a",
		"xlsx_in":  "b",
		"docx_out": "c",
		"xlsx_out": "d",
	})
	assert.Error(t, err)
	assert.Equal(t, "Processing...\nAn error occurred:\nHTTP error: 500\n", out.String())
	assert.False(t, view.Busy())
}
