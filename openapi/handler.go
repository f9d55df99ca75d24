package openapi

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// SpecHandler returns an http.Handler that serves doc as JSON. doc is
// validated and encoded once; later changes to it are not served.
func SpecHandler(doc *openapi3.T) (http.Handler, error) {
	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(specJSON)
	}), nil
}

// SpecHandlerMust is like SpecHandler but panics on error.
func SpecHandlerMust(doc *openapi3.T) http.Handler {
	h, err := SpecHandler(doc)
	if err != nil {
		panic(err)
	}
	return h
}
