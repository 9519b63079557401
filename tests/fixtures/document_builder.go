// Package fixtures provides test data builders for the content model.
package fixtures

import "contentedge/domain/content"

// DocumentBuilder builds content documents for tests.
type DocumentBuilder struct {
	doc *content.Document
}

// NewDocumentBuilder creates a builder with a minimal valid document
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{
		doc: &content.Document{
			Route: &content.Route{
				Name:   "home",
				ItemID: "00000000-0000-0000-0000-000000000001",
				Fields: map[string]content.Field{},
			},
			Context: content.Context{Site: "website", Language: "en"},
		},
	}
}

// WithRouteName sets the route name
func (b *DocumentBuilder) WithRouteName(name string) *DocumentBuilder {
	b.doc.Route.Name = name
	return b
}

// WithItemID sets the route item ID
func (b *DocumentBuilder) WithItemID(id string) *DocumentBuilder {
	b.doc.Route.ItemID = id
	return b
}

// WithField sets a route-level field with consistent representations
func (b *DocumentBuilder) WithField(name, value string) *DocumentBuilder {
	b.doc.Route.Fields[name] = content.NewField(value)
	return b
}

// WithFieldMetadata sets a route-level field carrying a metadata
// envelope
func (b *DocumentBuilder) WithFieldMetadata(name, value string, metadata map[string]interface{}) *DocumentBuilder {
	field := content.NewField(value)
	field.Metadata = metadata
	b.doc.Route.Fields[name] = field
	return b
}

// WithRendering appends a rendering to the named placeholder
func (b *DocumentBuilder) WithRendering(placeholder string, rendering content.Rendering) *DocumentBuilder {
	if b.doc.Route.Placeholders == nil {
		b.doc.Route.Placeholders = content.PlaceholderTree{}
	}
	b.doc.Route.Placeholders[placeholder] = append(b.doc.Route.Placeholders[placeholder], rendering)
	return b
}

// Build returns the built document
func (b *DocumentBuilder) Build() *content.Document {
	return b.doc
}

// BoundRendering creates a rendering whose datasource and contextItem
// bindings both carry a field with the given value.
func BoundRendering(component, value string) content.Rendering {
	ds := content.NewField(value)
	ci := content.NewField(value)
	return content.Rendering{
		UID:           "uid-" + component,
		ComponentName: component,
		Fields: &content.ComponentFields{
			Datasource:  &content.ItemBinding{ID: "ds-" + component, Field: &ds},
			ContextItem: &content.ItemBinding{ID: "ci-" + component, Field: &ci},
		},
	}
}
