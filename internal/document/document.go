package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Document is one generated item database: a "$schema" pointer plus a
// single element object mapping item keys to item objects. Unknown
// top-level keys found in an existing file are carried through writes
// untouched.
type Document struct {
	Element   string
	SchemaRef string
	Items     map[string]map[string]any

	extra map[string]any
}

func New(element string) *Document {
	return &Document{
		Element: element,
		Items:   make(map[string]map[string]any),
	}
}

// Load reads an existing database for the given element. A missing file
// yields a fresh empty document and existed=false; anything else that
// fails to parse into the expected shape is an error.
func Load(path, element string) (*Document, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(element), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading %s: %w", path, err)
	}

	var full map[string]any
	if err := json.Unmarshal(data, &full); err != nil {
		return nil, false, fmt.Errorf("loading %s: %w", path, err)
	}

	doc := New(element)
	for key, value := range full {
		switch key {
		case "$schema":
			ref, ok := value.(string)
			if !ok {
				return nil, false, fmt.Errorf("loading %s: $schema is not a string", path)
			}
			doc.SchemaRef = ref
		case element:
			items, ok := value.(map[string]any)
			if !ok {
				return nil, false, fmt.Errorf("loading %s: %q is not an object", path, element)
			}
			for name, item := range items {
				obj, ok := item.(map[string]any)
				if !ok {
					return nil, false, fmt.Errorf("loading %s: item %q is not an object", path, name)
				}
				doc.Items[name] = obj
			}
		default:
			if doc.extra == nil {
				doc.extra = make(map[string]any)
			}
			doc.extra[key] = value
		}
	}

	return doc, true, nil
}

// Write serializes the document with 4-space indentation, creating the
// parent directory if needed. Callers write even after a failed
// validation so the offending output can be inspected.
func (d *Document) Write(path string) error {
	data, err := json.MarshalIndent(d.Full(), "", "    ")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Full returns the document as the single JSON value that Write would
// serialize, for validation against the element schema.
func (d *Document) Full() map[string]any {
	full := make(map[string]any, len(d.extra)+2)
	for key, value := range d.extra {
		full[key] = value
	}
	if d.SchemaRef != "" {
		full["$schema"] = d.SchemaRef
	}
	items := make(map[string]any, len(d.Items))
	for name, item := range d.Items {
		items[name] = item
	}
	full[d.Element] = items
	return full
}

// Merge overlays next onto current and returns current. Objects merge
// recursively key by key; every other value, arrays included, is
// replaced wholesale. Keys of current absent from next are never
// touched, so manually curated fields survive regeneration. An object
// arriving over a non-object replaces it.
func Merge(current, next map[string]any) map[string]any {
	if current == nil {
		current = make(map[string]any, len(next))
	}
	for key, value := range next {
		if obj, ok := value.(map[string]any); ok {
			cur, _ := current[key].(map[string]any)
			current[key] = Merge(cur, obj)
			continue
		}
		current[key] = value
	}
	return current
}

// PatchKeys first applies legacy-key renames, then removes every key
// not in the declared property set of the item schema. A rename moves
// the value only when the target key is still free; the legacy key is
// dropped either way.
func PatchKeys(obj map[string]any, declared map[string]struct{}, renames map[string]string) {
	for old, target := range renames {
		value, ok := obj[old]
		if !ok {
			continue
		}
		if _, taken := obj[target]; !taken {
			obj[target] = value
		}
		delete(obj, old)
	}
	for key := range obj {
		if _, ok := declared[key]; !ok {
			delete(obj, key)
		}
	}
}
