package mcp

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"erdb/internal/document"
	"erdb/internal/generate"
)

// Library is an in-memory snapshot of the generated databases for one game
// version, loaded once at server start. Categories that were never
// generated are simply absent.
type Library struct {
	gameVersion string
	categories  map[string]map[string]map[string]any
	order       []string
}

func LoadLibrary(outputRoot, gameVersion string) (*Library, error) {
	lib := &Library{
		gameVersion: gameVersion,
		categories:  make(map[string]map[string]map[string]any),
	}

	for _, category := range generate.All() {
		path := filepath.Join(outputRoot, gameVersion, category.OutputFile())
		doc, loaded, err := document.Load(path, category.ElementName())
		if err != nil {
			return nil, fmt.Errorf("loading %s database: %w", category, err)
		}
		if !loaded {
			continue
		}
		lib.categories[category.String()] = doc.Items
		lib.order = append(lib.order, category.String())
	}

	if len(lib.order) == 0 {
		return nil, fmt.Errorf("no generated databases for version %s under %s", gameVersion, outputRoot)
	}

	return lib, nil
}

func (l *Library) GameVersion() string {
	return l.gameVersion
}

// Categories returns the loaded category names in generation order.
func (l *Library) Categories() []string {
	return l.order
}

func (l *Library) Items(category string) (map[string]map[string]any, bool) {
	items, ok := l.categories[category]
	return items, ok
}

// Item looks up a key within a category, first exactly and then case
// insensitively.
func (l *Library) Item(category, key string) (map[string]any, bool) {
	items, ok := l.categories[category]
	if !ok {
		return nil, false
	}
	if item, ok := items[key]; ok {
		return item, true
	}
	for name, item := range items {
		if strings.EqualFold(name, key) {
			return item, true
		}
	}
	return nil, false
}

type ItemMatch struct {
	Category string
	Key      string
}

const searchLimit = 50

// Search matches the query as a case-insensitive substring of item keys,
// optionally restricted to one category. Matches come back in generation
// order, keys sorted within each category, capped at searchLimit.
func (l *Library) Search(query, category string) []ItemMatch {
	needle := strings.ToLower(query)

	var matches []ItemMatch
	for _, name := range l.order {
		if category != "" && name != category {
			continue
		}
		items := l.categories[name]

		keys := make([]string, 0, len(items))
		for key := range items {
			if strings.Contains(strings.ToLower(key), needle) {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)

		for _, key := range keys {
			if len(matches) == searchLimit {
				return matches
			}
			matches = append(matches, ItemMatch{Category: name, Key: key})
		}
	}

	return matches
}
