package content

import "strings"

// RemoteItem is a content item fetched from the secondary ("target")
// repository. It is read-only once fetched; resolution copies values
// out of it but never writes back.
type RemoteItem struct {
	ID     string
	Name   string
	Path   string
	Fields map[string]string
	URL    string
}

// FieldValue returns the raw value of the named field, matching the
// name case-insensitively the way the remote repository does.
func (it *RemoteItem) FieldValue(name string) (string, bool) {
	if it == nil {
		return "", false
	}
	if v, ok := it.Fields[name]; ok {
		return v, true
	}
	for k, v := range it.Fields {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// Title returns the item's title field, falling back to its display
// name when the field is absent or empty.
func (it *RemoteItem) Title() string {
	if v, ok := it.FieldValue(FieldTitle); ok && v != "" {
		return v
	}
	return it.Name
}

// Content returns the item's body field, or the empty string when the
// item has none.
func (it *RemoteItem) Content() string {
	v, _ := it.FieldValue(FieldContent)
	return v
}
