package webform

import (
	"html/template"
	"io"

	"github.com/twipi/parseform/parseapi"
	"github.com/twipi/parseform/parseform"
)

type pageInput struct {
	Name  string
	Label string
	Value string
}

type pageData struct {
	Inputs  []pageInput
	Busy    bool
	Result  *pageResult
	Error   *pageError
	Heading struct {
		Result string
		Error  string
	}
}

type pageResult struct {
	Entries []parseform.Entry
}

type pageError struct {
	Message string
	// Validation is true if the form was rejected before anything was sent.
	// The message is then shown without the error heading.
	Validation bool
}

var inputLabels = map[string]string{
	parseapi.FieldDocxIn:  "Input DOCX file",
	parseapi.FieldXLSXIn:  "Input XLSX file",
	parseapi.FieldDocxOut: "Output DOCX file",
	parseapi.FieldXLSXOut: "Output XLSX file",
}

func newPageData(fields parseform.Fields) pageData {
	var data pageData
	data.Heading.Result = parseform.ResultHeading
	data.Heading.Error = parseform.ErrorHeading

	data.Inputs = make([]pageInput, len(parseapi.FieldNames))
	for i, name := range parseapi.FieldNames {
		data.Inputs[i] = pageInput{
			Name:  name,
			Label: inputLabels[name],
			Value: fields.Value(name),
		}
	}

	return data
}

func renderPage(w io.Writer, data pageData) error {
	return pageTmpl.Execute(w, data)
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Document parser</title>
    <style>
      body { font-family: system-ui, sans-serif; max-width: 720px; margin: 2em auto; padding: 0 1em; }
      label { display: block; margin-top: 0.75em; }
      input[type=text] { width: 100%; box-sizing: border-box; padding: 0.4em; }
      button { margin-top: 1em; padding: 0.5em 1.5em; }
      #loading { display: none; margin-top: 1em; color: #666; }
      #loading.visible { display: block; }
      .error { color: #c0392b; font-weight: bold; }
      .summary { white-space: pre-wrap; }
    </style>
  </head>
  <body>
    <h1>Document parser</h1>
    <form id="parseForm" method="get" action="submit"
      onsubmit="document.getElementById('parseBtn').disabled = true; document.getElementById('loading').classList.add('visible'); document.getElementById('result').replaceChildren();">
      {{- range .Inputs }}
      <label for="{{ .Name }}">{{ .Label }}</label>
      <input type="text" id="{{ .Name }}" name="{{ .Name }}" value="{{ .Value }}" />
      {{- end }}
      <button type="submit" id="parseBtn"{{ if .Busy }} disabled{{ end }}>Parse</button>
    </form>
    <div id="loading"{{ if .Busy }} class="visible"{{ end }}>Processing...</div>
    <div id="result">
      {{- with .Result }}
      <h3>{{ $.Heading.Result }}</h3>
      {{- range .Entries }}
      {{- if .Block }}
      <h4>{{ .Label }}:</h4>
      <p class="summary">{{ .Value }}</p>
      {{- else }}
      <p><strong>{{ .Label }}:</strong> {{ .Value }}</p>
      {{- end }}
      {{- end }}
      {{- end }}
      {{- with .Error }}
      {{- if .Validation }}
      <p class="error">{{ .Message }}</p>
      {{- else }}
      <p class="error">{{ $.Heading.Error }}</p>
      <p>{{ .Message }}</p>
      {{- end }}
      {{- end }}
    </div>
  </body>
</html>
`))
