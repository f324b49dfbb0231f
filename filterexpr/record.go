package filterexpr

// Record holds the runtime field values a filter is evaluated against.
// Field names must match the schema's names exactly. A value may be absent
// or nil, meaning unknown: comparisons against unknown values never match.
// Filters never mutate records.
type Record struct {
	fields map[string]any
}

// NewRecord creates a new empty record.
func NewRecord() *Record {
	return &Record{
		fields: make(map[string]any),
	}
}

// RecordFromMap creates a record populated with the values of a host map.
func RecordFromMap(fields map[string]any) *Record {
	r := NewRecord()
	for name, value := range fields {
		r.fields[name] = value
	}
	return r
}

// Set sets a raw field value in the record.
// Returns the record to allow method chaining.
func (r *Record) Set(name string, value any) *Record {
	r.fields[name] = value
	return r
}

// SetNumber sets a numeric field value in the record.
// Returns the record to allow method chaining.
func (r *Record) SetNumber(name string, value float64) *Record {
	r.fields[name] = value
	return r
}

// SetBool sets a boolean field value in the record.
// Returns the record to allow method chaining.
func (r *Record) SetBool(name string, value bool) *Record {
	r.fields[name] = value
	return r
}

// SetString sets a string field value in the record.
// Returns the record to allow method chaining.
func (r *Record) SetString(name string, value string) *Record {
	r.fields[name] = value
	return r
}

// GetField retrieves a field value from the record. The second return is
// false when the field is absent, nil, or of a Go type the engine cannot
// compare (a time.Time, a slice, ...).
func (r *Record) GetField(name string) (Value, bool) {
	raw, ok := r.fields[name]
	if !ok || raw == nil {
		return nil, false
	}
	return toValue(raw)
}

// toValue converts a host-supplied Go value into an engine value. Numeric
// kinds all convert to NumberValue; anything unrecognized is unknown.
func toValue(raw any) (Value, bool) {
	switch v := raw.(type) {
	case Value:
		return v, true
	case bool:
		return BoolValue(v), true
	case string:
		return StringValue(v), true
	case float64:
		return NumberValue(v), true
	case float32:
		return NumberValue(v), true
	case int:
		return NumberValue(v), true
	case int8:
		return NumberValue(v), true
	case int16:
		return NumberValue(v), true
	case int32:
		return NumberValue(v), true
	case int64:
		return NumberValue(v), true
	case uint:
		return NumberValue(v), true
	case uint8:
		return NumberValue(v), true
	case uint16:
		return NumberValue(v), true
	case uint32:
		return NumberValue(v), true
	case uint64:
		return NumberValue(v), true
	default:
		return nil, false
	}
}
