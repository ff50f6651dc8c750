// Package parseapi provides a client for the document parsing service.
//
// # API Spec
//
// The service exposes a single endpoint:
//
//   - `GET /parse?docx_in=&xlsx_in=&docx_out=&xlsx_out=`: parses the input
//     DOCX and XLSX files and writes the summaries to the output paths. All
//     four query parameters are required.
//
// A successful response is a JSON object:
//
//	{
//	  "status": "success",
//	  "output_file": "files/out.docx",
//	  "xlsx_output": "files/out.xlsx",
//	  "result": {"docx_summary": "...", "xlsx_summary": "..."}
//	}
//
// Any non-2xx response may carry a JSON object with a `detail` member
// describing the failure. The member is usually a string, but request
// validation failures carry a list of objects with a `msg` member each.
//
// The endpoint must be appended after the base URL, which is the URL of the
// server plus any path prefix it is mounted under.
package parseapi
