// Package webform serves the parse form as an HTML page. Each submission runs
// the form handler on the server and renders the outcome into the page that is
// sent back.
//
// # Routes
//
//   - `GET /`: the empty form.
//   - `GET /submit`, `POST /submit`: submits the form values given as query or
//     form parameters and returns the form with the result filled in.
//   - `GET /health`: always 200.
package webform

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/twipi/parseform/internal/slogctx"
	"github.com/twipi/parseform/internal/srvutil"
	"github.com/twipi/parseform/parseapi"
	"github.com/twipi/parseform/parseform"
)

type handler struct {
	form   *parseform.Handler
	logger *slog.Logger
}

// New returns an HTTP handler that serves the form page.
func New(form *parseform.Handler, logger *slog.Logger) http.Handler {
	h := &handler{
		form:   form,
		logger: logger,
	}

	r := chi.NewMux()
	r.Use(middleware.RequestID)
	r.Use(middleware.CleanPath)
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Get("/health", srvutil.Respond200)

	r.Group(func(r chi.Router) {
		r.Use(srvutil.ParseForm)
		r.Get("/submit", h.submit)
		r.Post("/submit", h.submit)
	})

	return r
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, newPageData(parseform.FieldMap{}))
}

func (h *handler) submit(w http.ResponseWriter, r *http.Request) {
	ctx := slogctx.With(r.Context(), h.logger)
	ctx = slogctx.WithAttrs(ctx,
		"remote_addr", r.RemoteAddr,
		"request_id", middleware.GetReqID(r.Context()))

	fields := parseform.FieldsFunc(r.Form.Get)
	view := &pageView{}

	err := h.form.Submit(ctx, fields, view)
	submissionsTotal.WithLabelValues(outcomeOf(err)).Inc()

	data := newPageData(fields)
	view.fill(&data)

	h.render(w, r, data)
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, data pageData) {
	var buf bytes.Buffer
	if err := renderPage(&buf, data); err != nil {
		h.logger.Error(
			"failed to render page",
			"path", r.URL.Path,
			"err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// pageView collects the outcome of a single submission so that it can be
// rendered into the response page.
type pageView struct {
	busy   bool
	result *parseapi.Response
	err    error
}

var _ parseform.View = (*pageView)(nil)

func (v *pageView) SetBusy(busy bool) {
	if busy == v.busy {
		return
	}
	v.busy = busy
	if busy {
		submissionsInFlight.Inc()
	} else {
		submissionsInFlight.Dec()
	}
}

func (v *pageView) ClearResult() {
	v.result = nil
	v.err = nil
}

func (v *pageView) ShowResult(resp *parseapi.Response) {
	v.result = resp
	v.err = nil
}

func (v *pageView) ShowError(err error) {
	v.result = nil
	v.err = err
}

func (v *pageView) fill(data *pageData) {
	data.Busy = v.busy
	if v.result != nil {
		data.Result = &pageResult{Entries: parseform.Entries(v.result)}
	}
	if v.err != nil {
		data.Error = &pageError{
			Message:    parseform.ErrorText(v.err),
			Validation: parseform.IsValidationError(v.err),
		}
	}
}
