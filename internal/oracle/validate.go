package oracle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas holds the compiled form of every schema the engine
// requests content against. The set is small and fixed (teaching, hint,
// celebration), so entries live for the process lifetime.
type compiledSchemas struct {
	mu     sync.Mutex
	byName map[string]*jsonschema.Schema
}

var schemas = compiledSchemas{byName: make(map[string]*jsonschema.Schema)}

func (c *compiledSchemas) get(s *Schema) (*jsonschema.Schema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if compiled, ok := c.byName[s.Name]; ok {
		return compiled, nil
	}
	compiled, err := compileDefinition(s)
	if err != nil {
		return nil, err
	}
	c.byName[s.Name] = compiled
	return compiled, nil
}

// compileDefinition turns a Schema's map definition into a compiled
// validator. The definition is round-tripped through JSON because the
// compiler wants the library's own decoded representation.
func compileDefinition(s *Schema) (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	url := "oracle:///" + s.Name + ".json"
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("register definition: %w", err)
	}
	return compiler.Compile(url)
}

// validateResponse checks the oracle's raw output against the schema the
// request named. A nil schema means free-form text, which always passes.
// Any failure surfaces as *ErrInvalidResponse so the retry layer can
// re-ask once.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("%s content is not JSON: %w", schema.Name, err),
		}
	}

	compiled, err := schemas.get(schema)
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("%s schema: %w", schema.Name, err),
		}
	}

	if err := compiled.Validate(doc); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("%s content rejected: %w", schema.Name, err),
		}
	}
	return nil
}
