package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocument() *Document {
	title := NewField("Welcome")
	binding := NewField("Welcome")
	return &Document{
		Route: &Route{
			Name:   "home",
			ItemID: "id-1",
			Fields: map[string]Field{
				FieldTitle: {
					Value:    "Welcome",
					Wrapped:  &FieldValue{Value: "Welcome"},
					Metadata: map[string]interface{}{"editable": true},
				},
			},
			Placeholders: PlaceholderTree{
				"main": {
					{
						UID:           "uid-1",
						ComponentName: "Hero",
						Fields: &ComponentFields{
							Datasource: &ItemBinding{ID: "ds-1", Field: &binding},
						},
						Placeholders: PlaceholderTree{
							"inner": {
								{UID: "uid-2", ComponentName: "Teaser", Fields: &ComponentFields{
									ContextItem: &ItemBinding{ID: "ci-1", Field: &title},
								}},
							},
						},
					},
				},
			},
		},
		Context: Context{Site: "website", Language: "en"},
	}
}

func TestClone_ValueIndependence(t *testing.T) {
	original := buildDocument()
	clone := original.Clone()

	require.NotNil(t, clone)
	require.NotSame(t, original, clone)
	assert.Equal(t, original, clone)

	// Mutating every layer of the clone must not be observable
	// through the original.
	clone.Route.Name = "changed"
	field := clone.Route.Fields[FieldTitle]
	field.SetValue("changed")
	clone.Route.Fields[FieldTitle] = field
	field.Metadata["editable"] = false
	clone.Route.Placeholders["main"][0].ComponentName = "Changed"
	clone.Route.Placeholders["main"][0].Fields.Datasource.Field.SetValue("changed")
	clone.Route.Placeholders["main"][0].Placeholders["inner"][0].Fields.ContextItem.Field.SetValue("changed")

	assert.Equal(t, "home", original.Route.Name)
	assert.Equal(t, "Welcome", original.Route.Fields[FieldTitle].Value)
	assert.Equal(t, "Welcome", original.Route.Fields[FieldTitle].Wrapped.Value)
	assert.Equal(t, true, original.Route.Fields[FieldTitle].Metadata["editable"])
	assert.Equal(t, "Hero", original.Route.Placeholders["main"][0].ComponentName)
	assert.Equal(t, "Welcome", original.Route.Placeholders["main"][0].Fields.Datasource.Field.Value)
	assert.Equal(t, "Welcome", original.Route.Placeholders["main"][0].Placeholders["inner"][0].Fields.ContextItem.Field.Value)
}

func TestClone_Nil(t *testing.T) {
	var doc *Document
	assert.Nil(t, doc.Clone())

	empty := &Document{}
	clone := empty.Clone()
	require.NotNil(t, clone)
	assert.Nil(t, clone.Route)
}

func TestClone_PreservesShape(t *testing.T) {
	original := buildDocument()
	clone := original.Clone()

	require.Len(t, clone.Route.Placeholders, len(original.Route.Placeholders))
	for name, renderings := range original.Route.Placeholders {
		require.Len(t, clone.Route.Placeholders[name], len(renderings))
	}
}

func TestIsWildcard(t *testing.T) {
	assert.False(t, (*Document)(nil).IsWildcard())
	assert.False(t, (&Document{}).IsWildcard())
	assert.False(t, buildDocument().IsWildcard())

	wildcard := buildDocument()
	wildcard.Route.Name = Wildcard
	assert.True(t, wildcard.IsWildcard())
}
