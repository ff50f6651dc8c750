package parseform

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/twipi/parseform/parseapi"
)

type parserFunc func(ctx context.Context, req parseapi.Request) (*parseapi.Response, error)

func (f parserFunc) Parse(ctx context.Context, req parseapi.Request) (*parseapi.Response, error) {
	return f(ctx, req)
}

// recordingView records every call made to it.
type recordingView struct {
	events []string
	busy   bool
	result *parseapi.Response
	err    error
}

func (v *recordingView) SetBusy(busy bool) {
	v.busy = busy
	v.events = append(v.events, fmt.Sprintf("busy=%v", busy))
}

func (v *recordingView) ClearResult() {
	v.result = nil
	v.err = nil
	v.events = append(v.events, "clear")
}

func (v *recordingView) ShowResult(resp *parseapi.Response) {
	v.result = resp
	v.events = append(v.events, "result")
}

func (v *recordingView) ShowError(err error) {
	v.err = err
	v.events = append(v.events, "error")
}

var completeFields = FieldMap{
	"docx_in":  " in.docx ",
	"xlsx_in":  "in.xlsx",
	"docx_out": "out.docx",
	"xlsx_out": "out.xlsx",
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		fields FieldMap
	}{
		{"all empty", FieldMap{}},
		{"one blank", FieldMap{"docx_in": "a", "xlsx_in": "b", "docx_out": "c", "xlsx_out": "   "}},
		{"one missing", FieldMap{"docx_in": "a", "xlsx_in": "b", "xlsx_out": "d"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var calls int
			h := NewHandler(parserFunc(func(context.Context, parseapi.Request) (*parseapi.Response, error) {
				calls++
				return &parseapi.Response{}, nil
			}))

			view := &recordingView{}
			err := h.Submit(context.Background(), test.fields, view)

			assert.True(t, IsValidationError(err))
			assert.Equal(t, 0, calls)
			assert.Equal(t, []string{"error"}, view.events)
			assert.False(t, view.busy)
			assert.Equal(t, ValidationMessage, ErrorText(view.err))
		})
	}
}

func TestSubmitSuccess(t *testing.T) {
	resp := &parseapi.Response{
		Status:     "ok",
		OutputFile: "a.docx",
		XLSXOutput: "b.xlsx",
		Result:     parseapi.Summary{DocxSummary: "S1", XLSXSummary: "S2"},
	}

	var got []parseapi.Request
	h := NewHandler(parserFunc(func(_ context.Context, req parseapi.Request) (*parseapi.Response, error) {
		got = append(got, req)
		return resp, nil
	}))

	view := &recordingView{}
	err := h.Submit(context.Background(), completeFields, view)
	assert.NoError(t, err)

	want := []parseapi.Request{{
		DocxIn:  "in.docx",
		XLSXIn:  "in.xlsx",
		DocxOut: "out.docx",
		XLSXOut: "out.xlsx",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected requests (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"busy=true", "clear", "result", "busy=false"}, view.events)
	assert.True(t, view.result == resp)
	assert.False(t, view.busy)
}

func TestSubmitFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "detail",
			err:     &parseapi.HTTPError{StatusCode: 400, Detail: "bad path"},
			wantMsg: "bad path",
		},
		{
			name:    "status only",
			err:     &parseapi.HTTPError{StatusCode: 500},
			wantMsg: "HTTP error: 500",
		},
		{
			name:    "transport",
			err:     fmt.Errorf("failed to send request: %w", errors.New("connection refused")),
			wantMsg: "failed to send request: connection refused",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := NewHandler(parserFunc(func(context.Context, parseapi.Request) (*parseapi.Response, error) {
				return nil, test.err
			}))

			view := &recordingView{}
			err := h.Submit(context.Background(), completeFields, view)

			assert.IsError(t, err, test.err)
			assert.Equal(t, []string{"busy=true", "clear", "error", "busy=false"}, view.events)
			assert.Equal(t, test.wantMsg, ErrorText(view.err))
			assert.False(t, view.busy)
		})
	}
}

func TestSubmitPanic(t *testing.T) {
	h := NewHandler(parserFunc(func(context.Context, parseapi.Request) (*parseapi.Response, error) {
		panic("boom")
	}))

	view := &recordingView{}
	err := h.Submit(context.Background(), completeFields, view)

	assert.EqualError(t, err, "panic while parsing: boom")
	assert.Equal(t, []string{"busy=true", "clear", "error", "busy=false"}, view.events)
	assert.False(t, view.busy)
}

func TestSubmitRepeated(t *testing.T) {
	var calls int
	h := NewHandler(parserFunc(func(context.Context, parseapi.Request) (*parseapi.Response, error) {
		calls++
		if calls == 1 {
			return nil, &parseapi.HTTPError{StatusCode: 400, Detail: "bad path"}
		}
		return &parseapi.Response{Status: "ok"}, nil
	}))

	view := &recordingView{}
	assert.Error(t, h.Submit(context.Background(), completeFields, view))
	assert.NoError(t, h.Submit(context.Background(), completeFields, view))

	assert.Equal(t, 2, calls)
	assert.Zero(t, view.err)
	assert.Equal(t, "ok", view.result.Status)
}

func TestFieldsFunc(t *testing.T) {
	fields := FieldsFunc(func(name string) string { return name + "!" })
	assert.Equal(t, "docx_in!", fields.Value("docx_in"))
}
