package filterexpr

import "sort"

// Field represents a named field with a specific type in a schema.
type Field struct {
	Name string
	Type Type
}

// Schema defines the closed set of fields that filter expressions may
// reference, together with their types. Fields not present in the schema
// are unknown and always rejected by Validate. A schema is defined once by
// the host at startup and is read-only afterwards.
type Schema struct {
	fields map[string]Field
}

// NewSchema creates a new schema.
// If fields are provided, initializes the schema with those fields.
// Multiple field maps can be provided and will be merged.
// Otherwise, creates an empty schema.
func NewSchema(fields ...map[string]Type) *Schema {
	s := &Schema{
		fields: make(map[string]Field),
	}
	for _, fieldMap := range fields {
		for name, fieldType := range fieldMap {
			s.fields[name] = Field{
				Name: name,
				Type: fieldType,
			}
		}
	}
	return s
}

// AddField adds a field to the schema with the specified name and type.
// Returns the schema to allow method chaining.
func (s *Schema) AddField(name string, fieldType Type) *Schema {
	s.fields[name] = Field{
		Name: name,
		Type: fieldType,
	}
	return s
}

// GetField retrieves a field from the schema by name.
// Returns the field and true if found, or an empty field and false if not found.
func (s *Schema) GetField(name string) (Field, bool) {
	field, ok := s.fields[name]
	return field, ok
}

// Fields returns all schema fields sorted by name. Hosts use this to build
// field pickers in rule authoring UIs; the names match record field names
// exactly.
func (s *Schema) Fields() []Field {
	fields := make([]Field, 0, len(s.fields))
	for _, field := range s.fields {
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Name < fields[j].Name
	})
	return fields
}

// Validate type-checks the expression against the schema. It verifies that
// every referenced field exists, that every comparison is between operands
// of the same type, and that booleans are only compared with == and !=.
// Returns a *TypeError describing the first violation encountered.
func (s *Schema) Validate(expr Expression) error {
	_, err := typeCheckExpr(expr, s)
	return err
}
