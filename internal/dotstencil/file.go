package dotstencil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// DefaultFileName is the name of the local configuration file in a theme directory.
const DefaultFileName = ".stencil"

// Recognized top-level keys.
const (
	KeyStoreURL      = "normalStoreUrl"
	KeyPort          = "port"
	KeyUsername      = "username"
	KeyToken         = "token"
	KeyCustomLayouts = "customLayouts"
)

// DefaultPort is offered when no port was saved before.
const DefaultPort = 3000

// LayoutTypes are the page types customLayouts holds overrides for.
var LayoutTypes = []string{"products", "search", "brands", "categories"}

// File is a parsed .stencil document.
type File struct {
	k *koanf.Koanf
}

// New returns an empty File.
func New() *File {
	return &File{k: koanf.New(".")}
}

// Load reads and parses the file at path.
// It returns (nil, nil) when the file does not exist.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses .stencil JSON content. name is used in error messages.
// Syntax errors are returned as *ParseError.
func Parse(data []byte, name string) (*File, error) {
	f := New()
	if err := f.k.Load(rawbytes.Provider(data), json.Parser()); err != nil {
		return nil, newParseError(name, data, err)
	}
	return f, nil
}

// Has reports whether key is set to a non-null value.
func (f *File) Has(key string) bool {
	if f == nil {
		return false
	}
	v, ok := f.k.Raw()[key]
	return ok && v != nil
}

// Get returns the raw value stored under a top-level key, or nil.
func (f *File) Get(key string) any {
	if f == nil {
		return nil
	}
	return f.k.Raw()[key]
}

// String returns a string value, or "" when key is missing or not a string.
func (f *File) String(key string) string {
	s, _ := f.Get(key).(string)
	return s
}

// StoreURL returns the saved store home page URL.
func (f *File) StoreURL() string { return f.String(KeyStoreURL) }

// Username returns the saved username.
func (f *File) Username() string { return f.String(KeyUsername) }

// Token returns the saved access token.
func (f *File) Token() string { return f.String(KeyToken) }

// Port returns the saved port. Older files store it as a string.
func (f *File) Port() (int, bool) {
	switch v := f.Get(KeyPort).(type) {
	case float64:
		return int(v), v > 0
	case int:
		return v, v > 0
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil && n > 0
	default:
		return 0, false
	}
}

// CustomLayouts returns the customLayouts section, or nil when absent.
func (f *File) CustomLayouts() map[string]any {
	m, _ := f.Get(KeyCustomLayouts).(map[string]any)
	return m
}

// Map returns a deep copy of the document.
func (f *File) Map() map[string]any {
	if f == nil {
		return map[string]any{}
	}
	return f.k.Raw()
}

// Keys returns the top-level keys in sorted order.
func (f *File) Keys() []string {
	raw := f.Map()
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DefaultCustomLayouts returns a fresh customLayouts section with an empty
// mapping per layout type.
func DefaultCustomLayouts() map[string]any {
	layouts := make(map[string]any, len(LayoutTypes))
	for _, t := range LayoutTypes {
		layouts[t] = map[string]any{}
	}
	return layouts
}
