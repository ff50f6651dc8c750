package parseapi

import (
	"net/url"
	"strings"
)

// Query parameter names of a parse request, in form order.
const (
	FieldDocxIn  = "docx_in"
	FieldXLSXIn  = "xlsx_in"
	FieldDocxOut = "docx_out"
	FieldXLSXOut = "xlsx_out"
)

// FieldNames lists the request fields in the order they appear on the form.
var FieldNames = []string{FieldDocxIn, FieldXLSXIn, FieldDocxOut, FieldXLSXOut}

// Request is a parse request. All fields are paths relative to the service's
// working directory.
type Request struct {
	DocxIn  string `json:"docx_in"`
	XLSXIn  string `json:"xlsx_in"`
	DocxOut string `json:"docx_out"`
	XLSXOut string `json:"xlsx_out"`
}

// NewRequest builds a Request by looking up each field with value. Values are
// trimmed of leading and trailing whitespace.
func NewRequest(value func(name string) string) Request {
	return Request{
		DocxIn:  strings.TrimSpace(value(FieldDocxIn)),
		XLSXIn:  strings.TrimSpace(value(FieldXLSXIn)),
		DocxOut: strings.TrimSpace(value(FieldDocxOut)),
		XLSXOut: strings.TrimSpace(value(FieldXLSXOut)),
	}
}

// Get returns the value of the field with the given query parameter name.
func (r Request) Get(name string) string {
	switch name {
	case FieldDocxIn:
		return r.DocxIn
	case FieldXLSXIn:
		return r.XLSXIn
	case FieldDocxOut:
		return r.DocxOut
	case FieldXLSXOut:
		return r.XLSXOut
	default:
		return ""
	}
}

// Validate returns a *ValidationError if any field is empty.
func (r Request) Validate() error {
	var missing []string
	for _, name := range FieldNames {
		if r.Get(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Encode returns the request as a URL query string. Parameters appear in
// form order rather than the sorted order of [url.Values.Encode].
func (r Request) Encode() string {
	var b strings.Builder
	for i, name := range FieldNames {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(r.Get(name)))
	}
	return b.String()
}

// Response is the body of a successful parse response.
type Response struct {
	Status     string  `json:"status"`
	OutputFile string  `json:"output_file"`
	XLSXOutput string  `json:"xlsx_output"`
	Result     Summary `json:"result"`
}

// Summary holds the model-generated summaries of both input files.
type Summary struct {
	DocxSummary string `json:"docx_summary"`
	XLSXSummary string `json:"xlsx_summary"`
}
