package store

type Item struct {
	Key         string
	Category    string
	GameVersion string
	Data        map[string]any
}

// Name returns the display name carried in the item payload. Payloads keyed
// by raw param IDs have no name field; the key stands in for it.
func (i Item) Name() string {
	if name, ok := i.Data["name"].(string); ok && name != "" {
		return name
	}
	return i.Key
}

type ItemSummary struct {
	Key      string
	Name     string
	Category string
}

type SearchResult struct {
	Key         string
	Name        string
	Category    string
	GameVersion string
	Score       float64
}
