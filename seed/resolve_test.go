package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCategories() map[string]Category {
	return map[string]Category{
		"users": {Sources: []Source{
			{TableName: "users", Sources: []string{"users.json"}},
			{TableName: "profiles", Sources: []string{"profiles.json"}},
		}},
		"orders": {Sources: []Source{
			{TableName: "orders", RawSources: []string{"orders.raw.json"}},
		}},
	}
}

func TestResolveActiveSources_ExplicitListKeepsRequestOrder(t *testing.T) {
	sources, err := ResolveActiveSources(ParseSelector("orders,users"), testCategories())

	require.NoError(t, err)
	require.Len(t, sources, 3)
	assert.Equal(t, "orders", sources[0].TableName)
	assert.Equal(t, "users", sources[1].TableName)
	assert.Equal(t, "profiles", sources[2].TableName)
}

func TestResolveActiveSources_MissingCategoryIsFatal(t *testing.T) {
	sources, err := ResolveActiveSources(ParseSelector("users,payments"), testCategories())

	require.Error(t, err)
	assert.ErrorContains(t, err, `"payments"`)
	assert.Nil(t, sources, "nothing is selected when any category is unknown")
}

func TestResolveActiveSources_AllCategoriesDeterministicOrder(t *testing.T) {
	sources, err := ResolveActiveSources(SelectAll(), testCategories())

	require.NoError(t, err)
	require.Len(t, sources, 3)
	// Lexicographic category order: orders before users.
	assert.Equal(t, "orders", sources[0].TableName)
	assert.Equal(t, "users", sources[1].TableName)
	assert.Equal(t, "profiles", sources[2].TableName)
}

func TestResolveActiveSources_NoneSelected(t *testing.T) {
	sources, err := ResolveActiveSources(SelectNone(), testCategories())

	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		raw     string
		enabled bool
		all     bool
		names   []string
	}{
		{"", false, false, nil},
		{"false", false, false, nil},
		{"true", true, true, nil},
		{"users", true, false, []string{"users"}},
		{"users,orders", true, false, []string{"users", "orders"}},
		{" users , orders ", true, false, []string{"users", "orders"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			sel := ParseSelector(tt.raw)
			assert.Equal(t, tt.enabled, sel.Enabled())
			assert.Equal(t, tt.all, sel.All())
			assert.Equal(t, tt.names, sel.Names())
		})
	}
}
