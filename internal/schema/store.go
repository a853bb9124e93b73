package schema

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// baseURI anchors relative $ref targets so cross-file references inside
// the store resolve back into the store itself.
const baseURI = "https://erdb.dev/schema/"

// Store holds every schema of the schema directory, keyed by file name,
// resolved and ready for validation.
type Store struct {
	schemas  map[string]*jsonschema.Schema
	resolved map[string]*jsonschema.Resolved
}

// Load reads every *.schema.json under dir and resolves cross-file
// references through the store. A dangling reference fails the load.
func Load(dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("loading schema store: %w", err)
	}

	s := &Store{
		schemas:  make(map[string]*jsonschema.Schema),
		resolved: make(map[string]*jsonschema.Resolved),
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".schema.json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("loading schema store: %w", err)
		}
		var sch jsonschema.Schema
		if err := sch.UnmarshalJSON(data); err != nil {
			return nil, fmt.Errorf("loading schema %s: %w", name, err)
		}
		s.schemas[name] = &sch
	}

	if len(s.schemas) == 0 {
		return nil, fmt.Errorf("loading schema store: no *.schema.json files in %s", dir)
	}

	loader := func(u *url.URL) (*jsonschema.Schema, error) {
		name := path.Base(u.Path)
		sch, ok := s.schemas[name]
		if !ok {
			return nil, fmt.Errorf("schema %s is not in the store", name)
		}
		return sch, nil
	}

	for _, name := range s.Names() {
		resolved, err := s.schemas[name].Resolve(&jsonschema.ResolveOptions{
			BaseURI: baseURI + name,
			Loader:  loader,
		})
		if err != nil {
			return nil, fmt.Errorf("resolving schema %s: %w", name, err)
		}
		s.resolved[name] = resolved
	}

	return s, nil
}

// Names lists the loaded schema file names, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.schemas))
	for name := range s.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) Has(name string) bool {
	_, ok := s.schemas[name]
	return ok
}

// ItemProperties returns the declared property set of a single item
// object under the given element, following $ref chains across store
// files. Key patching strips everything outside this set.
func (s *Store) ItemProperties(file, element string) (map[string]struct{}, error) {
	root, ok := s.schemas[file]
	if !ok {
		return nil, fmt.Errorf("schema %s is not in the store", file)
	}

	elementSchema, ok := root.Properties[element]
	if !ok {
		return nil, fmt.Errorf("schema %s does not declare element %q", file, element)
	}
	item := elementSchema.AdditionalProperties
	if item == nil {
		return nil, fmt.Errorf("schema %s element %q has no item schema", file, element)
	}

	item, err := s.deref(file, item)
	if err != nil {
		return nil, fmt.Errorf("schema %s element %q: %w", file, element, err)
	}
	if len(item.Properties) == 0 {
		return nil, fmt.Errorf("schema %s element %q declares no item properties", file, element)
	}

	props := make(map[string]struct{}, len(item.Properties))
	for name := range item.Properties {
		props[name] = struct{}{}
	}
	return props, nil
}

// deref chases a $ref chain of the form "#/$defs/name" or
// "other.schema.json#/$defs/name" until a concrete schema is reached.
func (s *Store) deref(file string, sch *jsonschema.Schema) (*jsonschema.Schema, error) {
	for hops := 0; sch.Ref != ""; hops++ {
		if hops > 16 {
			return nil, fmt.Errorf("reference chain too deep")
		}

		target, fragment, ok := strings.Cut(sch.Ref, "#")
		if !ok {
			return nil, fmt.Errorf("unsupported reference %q", sch.Ref)
		}
		if target != "" {
			file = path.Base(target)
		}
		root, found := s.schemas[file]
		if !found {
			return nil, fmt.Errorf("reference %q points outside the store", sch.Ref)
		}

		defName, found := strings.CutPrefix(fragment, "/$defs/")
		if !found {
			return nil, fmt.Errorf("unsupported reference fragment %q", fragment)
		}
		next, found := root.Defs[defName]
		if !found {
			return nil, fmt.Errorf("reference %q has no target", sch.Ref)
		}
		sch = next
	}
	return sch, nil
}
