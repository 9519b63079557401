// Package content defines the core data model for resolved content:
// documents, routes, fields and the nested placeholder tree delivered
// by the primary content repository.
package content

// Wildcard is the route name of a catch-all content node. A node named
// "*" acts as a structural template for any child path that has no
// content node of its own.
const Wildcard = "*"

// Document is the unit of resolved content handed to the rendering
// boundary. It is owned by whichever layer currently holds it; callers
// that need to mutate a document clone it first.
type Document struct {
	Route   *Route  `json:"route"`
	Context Context `json:"context"`
}

// Context carries the request-scoped resolution context of a document.
type Context struct {
	Site     string `json:"site"`
	Language string `json:"language"`
}

// Route is the routable part of a document: a stable identifier, the
// node name, the route-level field mapping and the placeholder tree of
// component instances.
type Route struct {
	Name         string           `json:"name"`
	ItemID       string           `json:"itemId"`
	Fields       map[string]Field `json:"fields,omitempty"`
	Placeholders PlaceholderTree  `json:"placeholders,omitempty"`
}

// PlaceholderTree maps a placeholder name to the ordered sequence of
// renderings assigned to it.
type PlaceholderTree map[string][]Rendering

// Rendering is a single component instance inside a placeholder. Its
// field set is optional; when present it may embed item bindings whose
// values are rewritten during overlay.
type Rendering struct {
	UID           string           `json:"uid,omitempty"`
	ComponentName string           `json:"componentName"`
	Fields        *ComponentFields `json:"fields,omitempty"`
	Placeholders  PlaceholderTree  `json:"placeholders,omitempty"`
}

// ComponentFields holds the embedded data bindings a rendering can
// carry. Either binding may be absent.
type ComponentFields struct {
	Datasource  *ItemBinding `json:"datasource,omitempty"`
	ContextItem *ItemBinding `json:"contextItem,omitempty"`
}

// ItemBinding points a rendering at a content item and optionally
// carries that item's field.
type ItemBinding struct {
	ID    string `json:"id,omitempty"`
	Field *Field `json:"field,omitempty"`
}

// IsWildcard reports whether the document's route is a catch-all
// template node.
func (d *Document) IsWildcard() bool {
	return d != nil && d.Route != nil && d.Route.Name == Wildcard
}
