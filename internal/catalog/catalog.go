package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data.json schema.json
var catalogFiles embed.FS

// LoadError represents a failure to load or validate the catalog dataset.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load failed: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Catalog is an immutable collection of college records.
type Catalog struct {
	colleges []College
	byID     map[string]int
}

// New creates a catalog from an explicit college list.
// Intended for tests that need small fixture catalogs.
func New(colleges []College) *Catalog {
	c := &Catalog{
		colleges: colleges,
		byID:     make(map[string]int, len(colleges)),
	}
	for i, college := range colleges {
		c.byID[college.ID] = i
	}
	return c
}

// Load reads the embedded dataset, validates it against the embedded
// JSON Schema, and returns the catalog.
func Load() (*Catalog, error) {
	data, err := catalogFiles.ReadFile("data.json")
	if err != nil {
		return nil, &LoadError{Message: "failed to read embedded dataset", Cause: err}
	}

	schema, err := catalogFiles.ReadFile("schema.json")
	if err != nil {
		return nil, &LoadError{Message: "failed to read embedded schema", Cause: err}
	}

	return Parse(data, schema)
}

// Parse validates raw catalog JSON against a JSON Schema and builds a
// catalog from it. Exposed so operators can load an alternative dataset
// from disk through the same validation gate.
func Parse(data, schema []byte) (*Catalog, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, &LoadError{Message: "schema validation could not run", Cause: err}
	}

	if !result.Valid() {
		msg := "dataset does not conform to schema:"
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			msg += fmt.Sprintf(" %s: %s;", field, desc.Description())
		}
		return nil, &LoadError{Message: msg}
	}

	var doc struct {
		Colleges []College `json:"colleges"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Message: "failed to parse dataset JSON", Cause: err}
	}

	// Duplicate IDs pass schema validation but would make ByID ambiguous.
	seen := make(map[string]bool, len(doc.Colleges))
	for _, college := range doc.Colleges {
		if seen[college.ID] {
			return nil, &LoadError{Message: fmt.Sprintf("duplicate college id %q", college.ID)}
		}
		seen[college.ID] = true
	}

	return New(doc.Colleges), nil
}

// All returns every college in catalog order.
// Callers must not mutate the returned slice.
func (c *Catalog) All() []College {
	return c.colleges
}

// Len returns the number of colleges in the catalog.
func (c *Catalog) Len() int {
	return len(c.colleges)
}

// ByID looks up a college by its identifier.
func (c *Catalog) ByID(id string) (College, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return College{}, false
	}
	return c.colleges[idx], true
}

// ByType returns all colleges of the given type, in catalog order.
func (c *Catalog) ByType(t SchoolType) []College {
	var out []College
	for _, college := range c.colleges {
		if college.Type == t {
			out = append(out, college)
		}
	}
	return out
}

// States returns the distinct states represented in the catalog, sorted.
func (c *Catalog) States() []string {
	seen := make(map[string]bool)
	var states []string
	for _, college := range c.colleges {
		if !seen[college.State] {
			seen[college.State] = true
			states = append(states, college.State)
		}
	}
	sort.Strings(states)
	return states
}

// Types returns the distinct school types represented in the catalog, sorted.
func (c *Catalog) Types() []SchoolType {
	seen := make(map[SchoolType]bool)
	var types []SchoolType
	for _, college := range c.colleges {
		if !seen[college.Type] {
			seen[college.Type] = true
			types = append(types, college.Type)
		}
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
