package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// openAPIDoc serves the embedded document to the swagger UI.
type openAPIDoc string

func (d openAPIDoc) ReadDoc() string { return string(d) }

var (
	registerDocOnce sync.Once
	registerDocErr  error
)

// registerDoc publishes the document under swag.Name, once per process.
func registerDoc(doc *openapi3.T) error {
	registerDocOnce.Do(func() {
		raw, err := doc.MarshalJSON()
		if err != nil {
			registerDocErr = fmt.Errorf("marshal openapi document: %w", err)
			return
		}
		swag.Register(swag.Name, openAPIDoc(raw))
	})
	return registerDocErr
}
