package filter

import "fmt"

type ColumnKind byte

const (
	Text ColumnKind = 1 + iota
	Integer
	Timestamp
)

var kindToStrMap = map[ColumnKind]string{
	Text:      "text",
	Integer:   "integer",
	Timestamp: "timestamp",
}

func (k ColumnKind) String() string {
	if s, ok := kindToStrMap[k]; ok {
		return s
	}
	return "unknown"
}

type ColumnDescriptor struct {
	Name string
	Kind ColumnKind
}

// Column types of a single entity kind. Immutable once created.
type Schema struct {
	entity  string
	columns []ColumnDescriptor
	index   map[string]ColumnDescriptor
}

// Creates schema for entity from a declarative list of columns.
// Panics on duplicate or invalid columns, since schemas are declared in code.
func NewSchema(entity string, columns ...ColumnDescriptor) *Schema {
	s := &Schema{
		entity:  entity,
		columns: make([]ColumnDescriptor, 0, len(columns)),
		index:   make(map[string]ColumnDescriptor, len(columns)),
	}

	for _, col := range columns {
		if col.Name == "" {
			panic(fmt.Sprintf("schema %s: column name can't be empty", entity))
		}
		if _, ok := kindToStrMap[col.Kind]; !ok {
			panic(fmt.Sprintf("schema %s: column %s has invalid kind %d", entity, col.Name, col.Kind))
		}
		if _, exists := s.index[col.Name]; exists {
			panic(fmt.Sprintf("schema %s: duplicate column %s", entity, col.Name))
		}
		s.columns = append(s.columns, col)
		s.index[col.Name] = col
	}

	return s
}

func (s *Schema) Entity() string {
	return s.entity
}

func (s *Schema) Column(name string) (ColumnDescriptor, bool) {
	col, ok := s.index[name]
	return col, ok
}

// Returns copy of schema columns in declaration order.
func (s *Schema) Columns() []ColumnDescriptor {
	r := make([]ColumnDescriptor, len(s.columns))
	copy(r, s.columns)
	return r
}

type Introspector interface {
	// Returns false if entity or it's field doesn't exist.
	ColumnType(entity string, field string) (ColumnDescriptor, bool)
}

// Satisfies Introspector interface
type Registry struct {
	schemas map[string]*Schema
}

// Panics if there are several schemas for the same entity.
func NewRegistry(schemas ...*Schema) *Registry {
	r := &Registry{schemas: make(map[string]*Schema, len(schemas))}

	for _, s := range schemas {
		if _, exists := r.schemas[s.entity]; exists {
			panic("duplicate schema for entity " + s.entity)
		}
		r.schemas[s.entity] = s
	}

	return r
}

func (r *Registry) Schema(entity string) (*Schema, bool) {
	s, ok := r.schemas[entity]
	return s, ok
}

func (r *Registry) ColumnType(entity string, field string) (ColumnDescriptor, bool) {
	s, ok := r.schemas[entity]
	if !ok {
		return ColumnDescriptor{}, false
	}
	return s.Column(field)
}
