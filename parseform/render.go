package parseform

import "github.com/twipi/parseform/parseapi"

// Texts shown by the views.
const (
	ResultHeading     = "Processing result:"
	ErrorHeading      = "An error occurred:"
	ValidationMessage = "Please fill in all fields!"
	LoadingMessage    = "Processing..."
)

// Entry is a single labeled value of a rendered result.
type Entry struct {
	Label string
	Value string
	// Block is true for long values that should be rendered under a heading
	// of their own rather than inline after the label.
	Block bool
}

// Entries returns the values of resp to be rendered, in display order. Values
// are returned verbatim; escaping is the view's job.
func Entries(resp *parseapi.Response) []Entry {
	return []Entry{
		{Label: "Status", Value: resp.Status},
		{Label: "DOCX file saved", Value: resp.OutputFile},
		{Label: "XLSX file saved", Value: resp.XLSXOutput},
		{Label: "DOCX summary", Value: resp.Result.DocxSummary, Block: true},
		{Label: "XLSX summary", Value: resp.Result.XLSXSummary, Block: true},
	}
}

// ErrorText returns the message to render below [ErrorHeading] for err.
// Validation failures are rendered as [ValidationMessage] on their own.
func ErrorText(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidationError(err):
		return ValidationMessage
	default:
		return err.Error()
	}
}
