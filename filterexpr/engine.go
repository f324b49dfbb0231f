package filterexpr

// ValidationResult reports whether an expression is a usable filter rule.
// It is the shape surfaced to rule authoring UIs, so it carries a plain
// error string rather than an error value.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Engine binds the expression language to a single record schema. It is
// stateless apart from the schema and safe for concurrent use.
type Engine struct {
	schema *Schema
}

// New creates an engine for the given schema.
func New(schema *Schema) *Engine {
	return &Engine{schema: schema}
}

// Parse parses an expression without type-checking it. The returned error
// is a *LexError or *ParseError carrying the byte offset of the failure.
func (e *Engine) Parse(expression string) (Expression, error) {
	return NewParser(NewLexer(expression)).Parse()
}

// Compile parses and type-checks an expression into a reusable Filter.
func (e *Engine) Compile(expression string) (*Filter, error) {
	return Compile(expression, e.schema)
}

// Validate reports whether the expression parses and type-checks against
// the engine's schema. It never panics; lex, parse, and type errors are
// all flattened into the result. Hosts should call Validate whenever a
// rule is authored or saved.
func (e *Engine) Validate(expression string) ValidationResult {
	if _, err := e.Compile(expression); err != nil {
		return ValidationResult{Valid: false, Error: err.Error()}
	}
	return ValidationResult{Valid: true}
}

// Evaluate parses and evaluates the expression against the record in one
// call. It fails closed: a malformed expression matches nothing rather
// than returning an error, so a broken rule can never take down list
// filtering.
//
// Evaluate does not type-check. An unvalidated rule referencing unknown or
// mistyped fields evaluates with those fields treated as unknown values;
// call Validate at rule save time rather than relying on this behavior.
func (e *Engine) Evaluate(expression string, rec *Record) bool {
	expr, err := e.Parse(expression)
	if err != nil {
		return false
	}

	f := &Filter{expr: expr, schema: e.schema}
	return f.Execute(rec)
}

// Fields lists the schema's fields sorted by name, for building rule
// authoring UIs. The names match record field names exactly.
func (e *Engine) Fields() []Field {
	return e.schema.Fields()
}
