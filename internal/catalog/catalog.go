// Package catalog holds the fixed, ordered set of training modules and the
// lookup helpers the session layer navigates with. Content is authored in
// an embedded JSON document and validated against a schema at load time;
// nothing in the catalog mutates after Load.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed content/modules.json
var embeddedContent []byte

// NotFound is the sentinel index returned by lookups that match nothing.
const NotFound = -1

// Catalog is an ordered, read-only sequence of modules.
type Catalog struct {
	modules []Module
}

// New builds a catalog directly from modules. Intended for tests; the
// application catalog comes from Default.
func New(mods ...Module) *Catalog {
	return &Catalog{modules: mods}
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the embedded application catalog. The embedded content is
// authored alongside the code, so a load failure is a programming error.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(embeddedContent)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded content invalid: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// Load parses and validates catalog content.
func Load(data []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	compiled, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("split catalog entries: %w", err)
	}

	mods := make([]Module, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for i, raw := range entries {
		m, err := decodeModule(raw)
		if err != nil {
			return nil, fmt.Errorf("module %d: %w", i, err)
		}
		id := m.Describe().ID
		if seen[id] {
			return nil, fmt.Errorf("module %d: duplicate id %q", i, id)
		}
		seen[id] = true
		mods = append(mods, m)
	}

	return &Catalog{modules: mods}, nil
}

func decodeModule(raw json.RawMessage) (Module, error) {
	var tag struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}

	var m Module
	switch tag.Type {
	case KindPoll:
		m = &Poll{}
	case KindQuiz:
		m = &Quiz{}
	case KindPromptTriage:
		m = &PromptTriage{}
	case KindSecuritySim:
		m = &SecuritySim{}
	case KindInfo:
		m = &Info{}
	case KindBooth:
		m = &Booth{}
	default:
		return nil, fmt.Errorf("unknown module type %q", tag.Type)
	}
	if err := json.Unmarshal(raw, m); err != nil {
		return nil, err
	}
	return m, nil
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// compiledSchema compiles moduleSchema once. The jsonschema library expects
// a parsed JSON value (any), not raw bytes.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		defBytes, err := json.Marshal(moduleSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://bigtop-modules.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(schemaURL)
	})
	return schemaCompiled, schemaErr
}

// Modules returns the ordered module sequence.
func (c *Catalog) Modules() []Module {
	return c.modules
}

// Len returns the number of modules.
func (c *Catalog) Len() int {
	return len(c.modules)
}

// At returns the module at index i, or nil when out of range.
func (c *Catalog) At(i int) Module {
	if i < 0 || i >= len(c.modules) {
		return nil
	}
	return c.modules[i]
}

// FindIndex resolves a start identifier against module ids and slugs, in
// catalog order. Returns NotFound when nothing matches.
func (c *Catalog) FindIndex(key string) int {
	if key == "" {
		return NotFound
	}
	for i, m := range c.modules {
		d := m.Describe()
		if d.ID == key || (d.Slug != "" && d.Slug == key) {
			return i
		}
	}
	return NotFound
}

// FrontGate returns the modules placed in the Front Gate area, in catalog
// order.
func (c *Catalog) FrontGate() []Module {
	var out []Module
	for _, m := range c.modules {
		if m.Describe().Area() == "Front Gate" {
			out = append(out, m)
		}
	}
	return out
}

// Beyond returns every module outside the Front Gate, in catalog order.
func (c *Catalog) Beyond() []Module {
	var out []Module
	for _, m := range c.modules {
		if m.Describe().Area() != "Front Gate" {
			out = append(out, m)
		}
	}
	return out
}
