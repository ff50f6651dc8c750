// Package parseform implements the form submission handler shared by the
// terminal and web front ends. A front end supplies the four field values and
// a [View]; the handler validates the values, calls the parsing service and
// renders the outcome into the view.
package parseform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/twipi/parseform/internal/slogctx"
	"github.com/twipi/parseform/parseapi"
)

// Fields reads the current values of the form inputs by field name.
type Fields interface {
	Value(name string) string
}

// FieldsFunc is a function that implements [Fields].
type FieldsFunc func(name string) string

// Value implements [Fields].
func (f FieldsFunc) Value(name string) string { return f(name) }

// FieldMap is a map that implements [Fields].
type FieldMap map[string]string

// Value implements [Fields].
func (m FieldMap) Value(name string) string { return m[name] }

// View is the presentation side of a form. Its methods are only ever called
// from the goroutine that calls [Handler.Submit].
type View interface {
	// SetBusy disables the trigger and shows the loading indicator if busy is
	// true, and reverts both otherwise.
	SetBusy(busy bool)
	// ClearResult removes any previously rendered result or error.
	ClearResult()
	// ShowResult renders a successful response.
	ShowResult(resp *parseapi.Response)
	// ShowError renders a failure. Validation failures are passed as a
	// *parseapi.ValidationError.
	ShowError(err error)
}

// Parser calls the parsing service. It is implemented by *parseapi.Client.
type Parser interface {
	Parse(ctx context.Context, req parseapi.Request) (*parseapi.Response, error)
}

var _ Parser = (*parseapi.Client)(nil)

// Handler is the form submission handler. It holds no per-submission state,
// so a single Handler may serve any number of views.
type Handler struct {
	parser Parser
}

// NewHandler creates a new Handler that sends requests through parser.
func NewHandler(parser Parser) *Handler {
	return &Handler{parser: parser}
}

// Submit activates the form once. It reads and trims the fields and, if any
// is empty, shows a validation error without touching the busy state or
// sending anything. Otherwise it marks the view busy, sends a single request
// and renders the response or the failure. The view is always marked idle
// again before Submit returns.
//
// The returned error is the failure that was rendered, if any.
func (h *Handler) Submit(ctx context.Context, fields Fields, view View) (err error) {
	req := parseapi.NewRequest(fields.Value)
	if err := req.Validate(); err != nil {
		view.ShowError(err)
		return err
	}

	view.SetBusy(true)
	view.ClearResult()
	defer view.SetBusy(false)

	logger := slogctx.From(ctx)
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic while parsing: %v", p)
			view.ShowError(err)
		}
		logger.Debug(
			"form submission finished",
			"docx_in", req.DocxIn,
			"xlsx_in", req.XLSXIn,
			"took", time.Since(start),
			"failed", err != nil)
	}()

	resp, err := h.parser.Parse(ctx, req)
	if err != nil {
		view.ShowError(err)
		return err
	}

	view.ShowResult(resp)
	return nil
}

// IsValidationError returns true if err is a validation failure, meaning no
// request was sent.
func IsValidationError(err error) bool {
	var validationErr *parseapi.ValidationError
	return errors.As(err, &validationErr)
}
