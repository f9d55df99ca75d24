// Package openapi builds OpenAPI 3 documents for endpoints whose bodies are
// checked with rulings. Request schemas come from [ruling.Schema]; endpoints
// marked Validated also document the 400 body written for a failed
// [ruling.Result].
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
//	    Request:   ruling.MustSchema(orderRules...),
//	    Response:  openapi.MustValueSchema(Order{}),
//	    Validated: true,
//	})
//	http.Handle("/openapi.json", openapi.SpecHandlerMust(doc))
package openapi
