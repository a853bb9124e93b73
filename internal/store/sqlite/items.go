package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"erdb/internal/store"
)

func (c *Client) ReplaceCategory(ctx context.Context, category, gameVersion string, items []store.Item) (int64, error) {
	if strings.TrimSpace(category) == "" {
		return 0, fmt.Errorf("category must not be empty")
	}
	if strings.TrimSpace(gameVersion) == "" {
		return 0, fmt.Errorf("game version must not be empty")
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	upsert := `
	INSERT INTO items (key, key_normalized, name, category, game_version, data, published_at)
	VALUES (?, ?, ?, ?, ?, ?, datetime('now'))
	ON CONFLICT (category, game_version, key_normalized) DO UPDATE SET
		key = excluded.key,
		name = excluded.name,
		data = excluded.data,
		published_at = datetime('now')
	`

	for _, item := range items {
		dataJSON, err := json.Marshal(item.Data)
		if err != nil {
			return 0, fmt.Errorf("marshaling item %q: %w", item.Key, err)
		}
		_, err = tx.ExecContext(ctx, upsert,
			item.Key,
			strings.ToLower(item.Key),
			item.Name(),
			category,
			gameVersion,
			dataJSON,
		)
		if err != nil {
			return 0, fmt.Errorf("upserting item %q: %w", item.Key, err)
		}
	}

	removed, err := removeStaleItems(ctx, tx, category, gameVersion, items)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing publish transaction: %w", err)
	}

	return removed, nil
}

// removeStaleItems deletes keys left over from an earlier publish of the
// same category and game version. Publishing an empty item set clears the
// category.
func removeStaleItems(ctx context.Context, tx *sql.Tx, category, gameVersion string, items []store.Item) (int64, error) {
	query := `
	DELETE FROM items
	WHERE category = ?
	  AND game_version = ?
	`
	args := []any{category, gameVersion}

	if len(items) > 0 {
		placeholders := make([]string, len(items))
		for i, item := range items {
			placeholders[i] = "?"
			args = append(args, strings.ToLower(item.Key))
		}
		query += fmt.Sprintf("  AND key_normalized NOT IN (%s)\n", strings.Join(placeholders, ", "))
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("removing stale items: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}

	return affected, nil
}

func (c *Client) GetItem(ctx context.Context, category, gameVersion, key string) (*store.Item, error) {
	query := `
	SELECT key, category, game_version, data
	FROM items
	WHERE category = ?
	  AND game_version = ?
	  AND key_normalized = ?
	`

	var item store.Item
	var dataBytes []byte
	err := c.db.QueryRowContext(ctx, query, category, gameVersion, strings.ToLower(key)).
		Scan(&item.Key, &item.Category, &item.GameVersion, &dataBytes)
	if errors.Is(err, sql.ErrNoRows) {
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
	WHERE (? = '' OR category = ?)
	  AND game_version = ?
	ORDER BY category, name
	`

	rows, err := c.db.QueryContext(ctx, query, category, category, gameVersion)
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
