package dotstencil

import (
	"fmt"
	"sort"
)

// EnsureCustomLayouts adds the default customLayouts section to answers when
// base has none. An existing section is never replaced.
func EnsureCustomLayouts(base *File, answers map[string]any) {
	if base.Has(KeyCustomLayouts) {
		return
	}
	answers[KeyCustomLayouts] = DefaultCustomLayouts()
}

// Merge returns a new File holding base with overlay applied on top.
//
// Overlay wins per key. When both sides hold a mapping under the same key the
// mappings are merged recursively with the same rule. Keys only present in
// base are kept as they are. base may be nil and is never modified.
// Overlay keys are top-level names and must not contain ".".
func Merge(base *File, overlay map[string]any) (*File, error) {
	out := New()
	if base != nil {
		if err := out.k.Merge(base.k); err != nil {
			return nil, fmt.Errorf("copying existing settings: %w", err)
		}
	}

	keys := make([]string, 0, len(overlay))
	for k := range overlay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := out.k.Set(key, overlay[key]); err != nil {
			return nil, fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return out, nil
}
