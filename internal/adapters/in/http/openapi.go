package http

import _ "embed"

// openapiSpec is the API contract served at /openapi.yaml. The composition
// root validates it at startup and the contract tests check every registered
// route against it.
//
//go:embed openapi.yaml
var openapiSpec []byte

// OpenAPISpecBytes returns the embedded OpenAPI document.
func OpenAPISpecBytes() []byte {
	return openapiSpec
}
