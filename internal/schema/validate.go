package schema

import (
	"fmt"
	"sort"
)

// Issue is one validation failure, localized to an item when possible.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// Validate checks a full document against a store schema.
func (s *Store) Validate(file string, instance any) error {
	resolved, ok := s.resolved[file]
	if !ok {
		return fmt.Errorf("schema %s is not in the store", file)
	}
	return resolved.Validate(instance)
}

// ValidateDocument validates a generated database document and, on
// failure, narrows the report down to the offending items by
// re-validating single-item fragments in key order. When no single item
// is at fault the document-level error is reported against the element
// itself.
func (s *Store) ValidateDocument(file, element string, full map[string]any) []Issue {
	err := s.Validate(file, full)
	if err == nil {
		return nil
	}

	items, ok := full[element].(map[string]any)
	if !ok {
		return []Issue{{Path: element, Message: err.Error()}}
	}

	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var issues []Issue
	for _, key := range keys {
		fragment := make(map[string]any, len(full))
		for k, v := range full {
			fragment[k] = v
		}
		fragment[element] = map[string]any{key: items[key]}

		if itemErr := s.Validate(file, fragment); itemErr != nil {
			issues = append(issues, Issue{
				Path:    element + "/" + key,
				Message: itemErr.Error(),
			})
		}
	}

	if len(issues) == 0 {
		issues = append(issues, Issue{Path: element, Message: err.Error()})
	}
	return issues
}
