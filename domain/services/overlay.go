// Package services holds domain services that operate across the
// content model without belonging to a single type.
package services

import "contentedge/domain/content"

// Overlay injects externally sourced field values into a clone of doc,
// preserving its structural shape. The caller's document is never
// mutated. Values absent from the set leave the corresponding fields
// untouched; a document with no matching substructure passes through
// as a plain clone. Applying the same values twice yields the same
// result as applying them once.
//
// The title value propagates into every rendering's embedded
// datasource and contextItem bindings; the content value is rewritten
// on the top-level route field only, where large-format body copy is
// meaningful.
func Overlay(doc *content.Document, values content.FieldValues) *content.Document {
	out := doc.Clone()
	if out == nil || out.Route == nil {
		return out
	}

	if values.Title != nil {
		setRouteField(out.Route, content.FieldTitle, *values.Title)
	}
	if values.Content != nil {
		setRouteField(out.Route, content.FieldContent, *values.Content)
	}

	if values.Title != nil {
		overlayTree(out.Route.Placeholders, *values.Title)
	}
	return out
}

// setRouteField rewrites both representations of the named route
// field, keeping any metadata envelope the original field carried.
func setRouteField(route *content.Route, name, value string) {
	if route.Fields == nil {
		route.Fields = make(map[string]content.Field, 2)
	}
	field := route.Fields[name]
	field.SetValue(value)
	route.Fields[name] = field
}

// overlayTree walks every placeholder's rendering sequence and
// rewrites the scalar leaf values of datasource and contextItem
// bindings in place. It never reorders, inserts or removes
// placeholders or renderings.
func overlayTree(tree content.PlaceholderTree, title string) {
	for _, renderings := range tree {
		for i := range renderings {
			rendering := &renderings[i]
			if rendering.Fields != nil {
				setBinding(rendering.Fields.Datasource, title)
				setBinding(rendering.Fields.ContextItem, title)
			}
			overlayTree(rendering.Placeholders, title)
		}
	}
}

func setBinding(binding *content.ItemBinding, title string) {
	if binding == nil || binding.Field == nil {
		return
	}
	binding.Field.SetValue(title)
}
