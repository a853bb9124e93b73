package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"erdb/internal/store"
)

func (c *Client) ReplaceCategory(ctx context.Context, category, gameVersion string, items []store.Item) (int64, error) {
	if strings.TrimSpace(category) == "" {
		return 0, fmt.Errorf("category must not be empty")
	}
	if strings.TrimSpace(gameVersion) == "" {
		return 0, fmt.Errorf("game version must not be empty")
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	upsert := `
INSERT INTO items (key, key_normalized, name, category, game_version, data, published_at, search_vector)
VALUES ($1, $2, $3, $4, $5, $6, now(),
    setweight(to_tsvector('simple', coalesce($3, '')), 'A') ||
    setweight(to_tsvector('simple', coalesce($1, '')), 'B')
)
ON CONFLICT (category, game_version, key_normalized) DO UPDATE SET
    key = EXCLUDED.key,
    name = EXCLUDED.name,
    data = EXCLUDED.data,
    published_at = now(),
    search_vector = EXCLUDED.search_vector
`

	keys := make([]string, 0, len(items))
	for _, item := range items {
		dataJSON, err := json.Marshal(item.Data)
		if err != nil {
			return 0, fmt.Errorf("marshaling item %q: %w", item.Key, err)
		}
		keyNormalized := strings.ToLower(item.Key)
		_, err = tx.Exec(ctx, upsert,
			item.Key,
			keyNormalized,
			item.Name(),
			category,
			gameVersion,
			dataJSON,
		)
		if err != nil {
			return 0, fmt.Errorf("upserting item %q: %w", item.Key, err)
		}
		keys = append(keys, keyNormalized)
	}

	// An empty key set clears the whole category at this version.
	tag, err := tx.Exec(ctx, `
DELETE FROM items
WHERE category = $1
  AND game_version = $2
  AND key_normalized <> ALL($3)
`, category, gameVersion, keys)
	if err != nil {
		return 0, fmt.Errorf("removing stale items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing publish transaction: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (c *Client) GetItem(ctx context.Context, category, gameVersion, key string) (*store.Item, error) {
	query := `
SELECT key, category, game_version, data
FROM items
WHERE category = $1
  AND game_version = $2
  AND key_normalized = $3
`

	var item store.Item
	var dataBytes []byte
	err := c.pool.QueryRow(ctx, query, category, gameVersion, strings.ToLower(key)).
		Scan(&item.Key, &item.Category, &item.GameVersion, &dataBytes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}

	if len(dataBytes) > 0 {
		if err := json.Unmarshal(dataBytes, &item.Data); err != nil {
			return nil, fmt.Errorf("unmarshaling item data: %w", err)
		}
	}
	if item.Data == nil {
		item.Data = map[string]any{}
	}

	return &item, nil
}

func (c *Client) ListItems(ctx context.Context, category, gameVersion string) ([]store.ItemSummary, error) {
	if strings.TrimSpace(gameVersion) == "" {
		return nil, fmt.Errorf("game version must not be empty")
	}

	query := `
SELECT key, name, category
FROM items
WHERE ($1 = '' OR category = $1)
  AND game_version = $2
ORDER BY category, name
`

	rows, err := c.pool.Query(ctx, query, category, gameVersion)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var summaries []store.ItemSummary
	for rows.Next() {
		var s store.ItemSummary
		if err := rows.Scan(&s.Key, &s.Name, &s.Category); err != nil {
			return nil, fmt.Errorf("scanning item summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item summaries: %w", err)
	}

	if summaries == nil {
		summaries = []store.ItemSummary{}
	}

	return summaries, nil
}
