package dotstencil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCustomLayouts(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		base        string // empty means no prior file
		wantDefault bool
	}{
		"no prior file":             {base: "", wantDefault: true},
		"prior without layouts":     {base: `{"port": 3000}`, wantDefault: true},
		"prior with null layouts":   {base: `{"customLayouts": null}`, wantDefault: true},
		"prior with empty layouts":  {base: `{"customLayouts": {}}`, wantDefault: false},
		"prior with custom layouts": {base: `{"customLayouts": {"search": {"a": "b"}}}`, wantDefault: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var base *File
			if tt.base != "" {
				var err error
				base, err = Parse([]byte(tt.base), "test")
				require.NoError(t, err)
			}

			answers := map[string]any{KeyPort: 3000}
			EnsureCustomLayouts(base, answers)

			_, added := answers[KeyCustomLayouts]
			assert.Equal(t, tt.wantDefault, added)
		})
	}
}

func TestMerge_NilBase(t *testing.T) {
	t.Parallel()

	answers := map[string]any{
		KeyStoreURL: "https://example.com",
		KeyPort:     3000,
	}
	EnsureCustomLayouts(nil, answers)

	out, err := Merge(nil, answers)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", out.StoreURL())
	port, ok := out.Port()
	assert.True(t, ok)
	assert.Equal(t, 3000, port)
	assert.Equal(t, DefaultCustomLayouts(), out.CustomLayouts())
}

func TestMerge_KeepsBaseOnlyKeys(t *testing.T) {
	t.Parallel()

	base, err := Parse([]byte(`{
  "normalStoreUrl": "https://old.example.com",
  "port": 3000,
  "username": "old",
  "token": "old-token",
  "apiHost": "https://api.example.com",
  "customLayouts": {"products": {"p": "custom.html"}, "search": {}, "brands": {}, "categories": {}}
}`), "test")
	require.NoError(t, err)

	answers := map[string]any{
		KeyStoreURL: "https://new.example.com",
		KeyPort:     4000,
		KeyUsername: "new",
		KeyToken:    "new-token",
	}
	EnsureCustomLayouts(base, answers)

	out, err := Merge(base, answers)
	require.NoError(t, err)

	assert.Equal(t, "https://new.example.com", out.StoreURL())
	assert.Equal(t, "new", out.Username())
	assert.Equal(t, "new-token", out.Token())
	assert.Equal(t, "https://api.example.com", out.String("apiHost"))
	assert.Equal(t, map[string]any{"p": "custom.html"}, out.CustomLayouts()["products"])

	// base is untouched
	assert.Equal(t, "https://old.example.com", base.StoreURL())
}

func TestMerge_NestedMappingsMergeRecursively(t *testing.T) {
	t.Parallel()

	base, err := Parse([]byte(`{"customLayouts": {"products": {"a": "1"}, "brands": {"b": "2"}}}`), "test")
	require.NoError(t, err)

	out, err := Merge(base, map[string]any{
		KeyCustomLayouts: map[string]any{"products": map[string]any{"c": "3"}},
	})
	require.NoError(t, err)

	layouts := out.CustomLayouts()
	assert.Equal(t, map[string]any{"a": "1", "c": "3"}, layouts["products"])
	assert.Equal(t, map[string]any{"b": "2"}, layouts["brands"])
}
