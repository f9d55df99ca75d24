package openapi

import (
	"errors"
	"maps"
	"net/http"
	"slices"

	"github.com/Gobd/ruling"
	"github.com/getkin/kin-openapi/openapi3"
)

// Response describes an HTTP response: a description and the schemas its body
// may have.
type Response struct {
	Desc    string
	Schemas []*openapi3.SchemaRef
}

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Request     *openapi3.SchemaRef   // single request body schema
	Requests    []*openapi3.SchemaRef // several request body schemas (oneOf)
	Response    *openapi3.SchemaRef   // 200 response schema
	Responses   map[string]Response   // full response map, merged over Response
	// Validated documents the 400 response carrying a failed ruling.Result.
	Validated bool
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(schemas ...*openapi3.SchemaRef) *openapi3.RequestBodyRef {
	o, err := NewRequest(schemas...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest returns a required JSON request body. Several schemas are
// combined with oneOf.
func NewRequest(schemas ...*openapi3.SchemaRef) (*openapi3.RequestBodyRef, error) {
	if len(schemas) == 0 {
		return nil, errors.New("no schemas given")
	}
	schema, err := oneOf(schemas)
	if err != nil {
		return nil, err
	}
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(schema),
	}, nil
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4xx").
func NewResponseMust(rs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(rs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(rs map[string]Response) (*openapi3.Responses, error) {
	if len(rs) == 0 {
		return nil, errors.New("no responses given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(rs))
	for _, status := range slices.Sorted(maps.Keys(rs)) {
		r := rs[status]
		resp := openapi3.NewResponse().WithDescription(r.Desc)
		if len(r.Schemas) > 0 {
			schema, err := oneOf(r.Schemas)
			if err != nil {
				return nil, err
			}
			resp.WithJSONSchemaRef(schema)
		}
		opts = append(opts, openapi3.WithName(status, resp))
	}
	return openapi3.NewResponses(opts...), nil
}

// ValidationResponse documents the body written for a failed ruling.Result.
func ValidationResponse() Response {
	return Response{Desc: "Validation failed", Schemas: []*openapi3.SchemaRef{ruling.ResultSchema()}}
}

func oneOf(schemas []*openapi3.SchemaRef) (*openapi3.SchemaRef, error) {
	for _, s := range schemas {
		if s == nil || (s.Value == nil && s.Ref == "") {
			return nil, errors.New("nil schema")
		}
	}
	if len(schemas) == 1 {
		return schemas[0], nil
	}
	return openapi3.NewSchemaRef("", &openapi3.Schema{OneOf: schemas}), nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}
}

// AddPath registers op on doc under path and method, keeping the other
// operations of the path.
func AddPath(path, method string, doc *openapi3.T, op *openapi3.Operation) {
	item := doc.Paths.Value(path)
	if item == nil {
		item = &openapi3.PathItem{}
	}
	item.SetOperation(method, op)
	doc.Paths.Set(path, item)
}

// Operation builds the operation documented by ep. It panics on an invalid
// schema, like the method helpers that call it.
func (ep Endpoint) Operation(operationID string) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = operationID
	op.Summary = ep.Summary
	op.Description = ep.Description

	switch {
	case len(ep.Requests) > 0:
		op.RequestBody = NewRequestMust(ep.Requests...)
	case ep.Request != nil:
		op.RequestBody = NewRequestMust(ep.Request)
	}

	byStatus := make(map[string]Response, len(ep.Responses)+2)
	if ep.Response != nil {
		byStatus["200"] = Response{Desc: "OK", Schemas: []*openapi3.SchemaRef{ep.Response}}
	}
	if ep.Validated {
		byStatus["400"] = ValidationResponse()
	}
	maps.Copy(byStatus, ep.Responses)

	if len(byStatus) == 0 {
		op.Responses = openapi3.NewResponses()
	} else {
		op.Responses = NewResponseMust(byStatus)
	}
	return op
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	AddPath(path, http.MethodGet, doc, ep.Operation(operationID))
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	AddPath(path, http.MethodPost, doc, ep.Operation(operationID))
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	AddPath(path, http.MethodPut, doc, ep.Operation(operationID))
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	AddPath(path, http.MethodPatch, doc, ep.Operation(operationID))
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	AddPath(path, http.MethodDelete, doc, ep.Operation(operationID))
}
