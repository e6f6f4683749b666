// Package jsonschema implements wiki.PageDecoder by validating response
// bodies against a JSON schema before decoding them.
package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/gilgamesh1111/wiki"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const pageSchemaURL = "page_summary.json"

var (
	pageSchemaBytes = []byte(`{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["title", "extract"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "extract": {"type": "string"}
  },
  "additionalProperties": true
}`)

	pageSchemaOnce     sync.Once
	pageSchemaCompiled *jsonschema.Schema
	pageSchemaErr      error
)

// Ensure PageDecoder implements wiki.PageDecoder at compile time.
var _ wiki.PageDecoder = (*PageDecoder)(nil)

// PageDecoder decodes page summaries. The zero value is ready to use.
type PageDecoder struct{}

// NewPageDecoder creates a new PageDecoder.
func NewPageDecoder() *PageDecoder {
	return &PageDecoder{}
}

// PageSchema returns the raw JSON schema a page summary must satisfy.
func PageSchema() []byte {
	return append([]byte(nil), pageSchemaBytes...)
}

func compiledPageSchema() (*jsonschema.Schema, error) {
	pageSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(pageSchemaURL, bytes.NewReader(pageSchemaBytes)); err != nil {
			pageSchemaErr = fmt.Errorf("add page schema: %w", err)
			return
		}
		pageSchemaCompiled, pageSchemaErr = compiler.Compile(pageSchemaURL)
	})
	return pageSchemaCompiled, pageSchemaErr
}

// DecodePage validates body against the page schema and returns the page.
func (d *PageDecoder) DecodePage(body []byte) (*wiki.Page, error) {
	schema, err := compiledPageSchema()
	if err != nil {
		return nil, wiki.Errorf(wiki.EINTERNAL, "page schema: %v", err)
	}

	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, wiki.Errorf(wiki.EINVALID, "invalid JSON in response body: %v", err)
	}
	if err := schema.Validate(payload); err != nil {
		return nil, wiki.Errorf(wiki.EINVALID, "invalid page summary: %s", describe(err))
	}

	// Field names are matched exactly; the schema guarantees both are strings.
	fields := payload.(map[string]interface{})
	return &wiki.Page{
		Title:   fields["title"].(string),
		Extract: fields["extract"].(string),
	}, nil
}

// describe flattens a validation error into its leaf messages.
func describe(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	var msgs []string
	collectLeaves(ve, &msgs)
	if len(msgs) == 0 {
		return ve.Message
	}
	return strings.Join(msgs, "; ")
}

func collectLeaves(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			*msgs = append(*msgs, ve.Message)
			return
		}
		*msgs = append(*msgs, fmt.Sprintf("%s: %s", strings.TrimPrefix(loc, "/"), ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, msgs)
	}
}
