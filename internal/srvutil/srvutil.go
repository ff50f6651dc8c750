package srvutil

import "net/http"

// ParseForm is a middleware that calls ParseForm before the handler is called.
// Both the URL query and, for POST requests, the form body end up in r.Form.
func ParseForm(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Respond200 is a handler that always responds with 200 OK and no body.
func Respond200(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
