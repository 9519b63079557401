package content

// Clone produces a value-independent copy of the document: no map,
// slice or pointer is shared with the source, so mutating the copy can
// never be observed through the original. The schema is enumerated
// explicitly rather than round-tripped through JSON, which would drop
// non-data-bearing fields.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return &Document{
		Route:   d.Route.clone(),
		Context: d.Context,
	}
}

func (r *Route) clone() *Route {
	if r == nil {
		return nil
	}
	return &Route{
		Name:         r.Name,
		ItemID:       r.ItemID,
		Fields:       cloneFields(r.Fields),
		Placeholders: r.Placeholders.clone(),
	}
}

func (p PlaceholderTree) clone() PlaceholderTree {
	if p == nil {
		return nil
	}
	out := make(PlaceholderTree, len(p))
	for name, renderings := range p {
		copies := make([]Rendering, len(renderings))
		for i, rendering := range renderings {
			copies[i] = rendering.clone()
		}
		out[name] = copies
	}
	return out
}

func (r Rendering) clone() Rendering {
	return Rendering{
		UID:           r.UID,
		ComponentName: r.ComponentName,
		Fields:        r.Fields.clone(),
		Placeholders:  r.Placeholders.clone(),
	}
}

func (cf *ComponentFields) clone() *ComponentFields {
	if cf == nil {
		return nil
	}
	return &ComponentFields{
		Datasource:  cf.Datasource.clone(),
		ContextItem: cf.ContextItem.clone(),
	}
}

func (b *ItemBinding) clone() *ItemBinding {
	if b == nil {
		return nil
	}
	out := &ItemBinding{ID: b.ID}
	if b.Field != nil {
		f := b.Field.clone()
		out.Field = &f
	}
	return out
}

func (f Field) clone() Field {
	out := Field{Value: f.Value}
	if f.Wrapped != nil {
		out.Wrapped = &FieldValue{Value: f.Wrapped.Value}
	}
	if f.Metadata != nil {
		out.Metadata = make(map[string]interface{}, len(f.Metadata))
		for k, v := range f.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

func cloneFields(fields map[string]Field) map[string]Field {
	if fields == nil {
		return nil
	}
	out := make(map[string]Field, len(fields))
	for name, field := range fields {
		out[name] = field.clone()
	}
	return out
}
