// Package schema binds each discourse schema to its definition, its
// classification heuristics and the vocabulary it may use.
package schema

import (
	"fmt"

	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/core/taxonomy"
)

// Schema is a read-only view of one schema's registry entry.
type Schema struct {
	Type taxonomy.SchemaType
}

// Get returns the registry entry for t.
func Get(t taxonomy.SchemaType) (Schema, error) {
	if !t.Valid() {
		return Schema{}, fmt.Errorf("unknown schema type %q", t)
	}
	return Schema{Type: t}, nil
}

// MustGet is Get for schema literals known at compile time.
func MustGet(t taxonomy.SchemaType) Schema {
	s, err := Get(t)
	if err != nil {
		panic(err)
	}
	return s
}

// All returns every schema in declaration order.
func All() []Schema {
	types := taxonomy.SchemaTypes()
	out := make([]Schema, 0, len(types))
	for _, t := range types {
		out = append(out, Schema{Type: t})
	}
	return out
}

func (s Schema) Definition() string {
	return definitions[s.Type]
}

// KeyCharacteristics are textual cues passed to the oracle. Nothing checks them.
func (s Schema) KeyCharacteristics() []string {
	return append([]string(nil), keyCharacteristics[s.Type]...)
}

func (s Schema) AllowedNodeTypes() []taxonomy.NodeType {
	return taxonomy.NodeTypesOf(s.Type)
}

func (s Schema) AllowedConnectionTypes() []taxonomy.ConnectionType {
	return taxonomy.ConnectionTypesOf(s.Type)
}

func (s Schema) AllowsNode(t taxonomy.NodeType) bool {
	for _, n := range s.AllowedNodeTypes() {
		if n == t {
			return true
		}
	}
	return false
}

func (s Schema) AllowsConnection(t taxonomy.ConnectionType) bool {
	for _, c := range s.AllowedConnectionTypes() {
		if c == t {
			return true
		}
	}
	return false
}

func (s Schema) String() string {
	return "Schema: " + string(s.Type)
}

// Entry is the serialisable form of a schema, as shown to the oracle.
type Entry struct {
	SchemaType             string   `json:"schema_type" yaml:"schema_type" toml:"schema_type"`
	Definition             string   `json:"definition" yaml:"definition" toml:"definition"`
	KeyCharacteristics     []string `json:"key_characteristics" yaml:"key_characteristics" toml:"key_characteristics"`
	AllowedNodeTypes       []string `json:"allowed_node_types" yaml:"allowed_node_types" toml:"allowed_node_types"`
	AllowedConnectionTypes []string `json:"allowed_connection_types" yaml:"allowed_connection_types" toml:"allowed_connection_types"`
}

func (s Schema) Entry() Entry {
	e := Entry{
		SchemaType:         string(s.Type),
		Definition:         s.Definition(),
		KeyCharacteristics: s.KeyCharacteristics(),
	}
	for _, n := range s.AllowedNodeTypes() {
		e.AllowedNodeTypes = append(e.AllowedNodeTypes, string(n))
	}
	for _, c := range s.AllowedConnectionTypes() {
		e.AllowedConnectionTypes = append(e.AllowedConnectionTypes, string(c))
	}
	return e
}

// Catalog lists every schema entry in declaration order.
func Catalog() []Entry {
	var out []Entry
	for _, s := range All() {
		out = append(out, s.Entry())
	}
	return out
}

// CatalogByType keys every entry by its schema type, in declaration order.
// This is the shape the selection prompt shows the oracle.
func CatalogByType() *model.Ordered[Entry] {
	out := model.NewOrdered[Entry]()
	for _, e := range Catalog() {
		out.Set(e.SchemaType, e)
	}
	return out
}

// Taxonomy is the complete vocabulary: every schema plus every node and
// connection type definition.
type Taxonomy struct {
	Schemas         []Entry                                  `json:"schemas" yaml:"schemas" toml:"schemas"`
	NodeTypes       map[string]taxonomy.NodeDefinition       `json:"node_types" yaml:"node_types" toml:"node_types"`
	ConnectionTypes map[string]taxonomy.ConnectionDefinition `json:"connection_types" yaml:"connection_types" toml:"connection_types"`
}

func Describe() Taxonomy {
	return Taxonomy{
		Schemas:         Catalog(),
		NodeTypes:       taxonomy.AllNodeDefinitions(),
		ConnectionTypes: taxonomy.AllConnectionDefinitions(),
	}
}
