package content

// Route-level field names populated during overlay.
const (
	FieldTitle   = "title"
	FieldContent = "content"
)

// Field is a named route or binding value. The primary repository
// delivers every field in two representations that must stay mutually
// consistent: the plain value and a structured wrapper nested one
// level deeper. Metadata is an opaque envelope the repository may
// attach; overlay preserves it untouched.
type Field struct {
	Value    string                 `json:"value"`
	Wrapped  *FieldValue            `json:"jsonValue,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// FieldValue is the structured wrapper representation of a field value.
type FieldValue struct {
	Value string `json:"value"`
}

// NewField builds a field whose two representations carry the same
// value.
func NewField(value string) Field {
	return Field{
		Value:   value,
		Wrapped: &FieldValue{Value: value},
	}
}

// SetValue rewrites both representations of the field to value,
// leaving the metadata envelope alone.
func (f *Field) SetValue(value string) {
	f.Value = value
	f.Wrapped = &FieldValue{Value: value}
}

// FieldValues is the small fixed set of values an overlay can inject.
// A nil entry means "leave the corresponding field untouched".
type FieldValues struct {
	Title   *string
	Content *string
}
