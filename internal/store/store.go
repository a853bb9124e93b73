package store

import "context"

type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	// ReplaceCategory publishes items as the complete contents of a category
	// at a game version. Keys left over from an earlier publish of the same
	// category and version are removed in the same transaction. Returns the
	// number of stale items removed.
	ReplaceCategory(ctx context.Context, category, gameVersion string, items []Item) (int64, error)

	GetItem(ctx context.Context, category, gameVersion, key string) (*Item, error)
	ListItems(ctx context.Context, category, gameVersion string) ([]ItemSummary, error)
	Search(ctx context.Context, query, category, gameVersion string) ([]SearchResult, error)
}
