package postgres

import (
	"context"
	"fmt"
	"strings"

	"erdb/internal/store"
)

func (c *Client) Search(ctx context.Context, query, category, gameVersion string) ([]store.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	sql := `
SELECT key, name, category, game_version,
    ts_rank(search_vector, websearch_to_tsquery('simple', $1)) AS score
FROM items
WHERE search_vector @@ websearch_to_tsquery('simple', $1)
  AND ($2 = '' OR category = $2)
  AND ($3 = '' OR game_version = $3)
ORDER BY score DESC, name ASC
LIMIT 50
`

	rows, err := c.pool.Query(ctx, sql, query, category, gameVersion)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	defer rows.Close()

	var results []store.SearchResult
	for rows.Next() {
		var r store.SearchResult
		if err := rows.Scan(&r.Key, &r.Name, &r.Category, &r.GameVersion, &r.Score); err != nil {
			return nil, fmt.Errorf("scanning search result: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search results: %w", err)
	}

	if results == nil {
		results = []store.SearchResult{}
	}

	return results, nil
}
