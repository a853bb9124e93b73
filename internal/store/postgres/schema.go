package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	// "IF NOT EXISTS" keeps this idempotent across runs. Anything beyond
	// additive changes will need a real migration tool.
	ddl := `
CREATE TABLE IF NOT EXISTS items (
    id             BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    key            TEXT NOT NULL,
    key_normalized TEXT NOT NULL,
    name           TEXT NOT NULL,
    category       TEXT NOT NULL,
    game_version   TEXT NOT NULL,
    data           JSONB NOT NULL DEFAULT '{}',
    published_at   TIMESTAMPTZ DEFAULT now(),
    CONSTRAINT uq_item_key UNIQUE (category, game_version, key_normalized)
);

ALTER TABLE items ADD COLUMN IF NOT EXISTS search_vector TSVECTOR;

CREATE INDEX IF NOT EXISTS idx_items_search ON items USING GIN (search_vector);
CREATE INDEX IF NOT EXISTS idx_items_category ON items (category);
CREATE INDEX IF NOT EXISTS idx_items_version ON items (game_version);
CREATE INDEX IF NOT EXISTS idx_items_category_version ON items (category, game_version);
CREATE INDEX IF NOT EXISTS idx_items_key_norm ON items (key_normalized);
`
	_, err := c.pool.Exec(ctx, ddl)
	if err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
