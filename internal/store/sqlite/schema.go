package sqlite

import (
	"context"
	"fmt"
	"strings"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS items (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		key            TEXT NOT NULL,
		key_normalized TEXT NOT NULL,
		name           TEXT NOT NULL,
		category       TEXT NOT NULL,
		game_version   TEXT NOT NULL,
		data           TEXT NOT NULL DEFAULT '{}',
		published_at   TEXT DEFAULT (datetime('now')),
		CONSTRAINT uq_item_key UNIQUE (category, game_version, key_normalized)
	);

	CREATE INDEX IF NOT EXISTS idx_items_category ON items (category);
	CREATE INDEX IF NOT EXISTS idx_items_version ON items (game_version);
	CREATE INDEX IF NOT EXISTS idx_items_category_version ON items (category, game_version);
	CREATE INDEX IF NOT EXISTS idx_items_key_norm ON items (key_normalized);

	CREATE VIRTUAL TABLE IF NOT EXISTS items_fts USING fts5(
		key,
		name,
		content=items,
		content_rowid=id
	);

	CREATE TRIGGER IF NOT EXISTS items_ai AFTER INSERT ON items BEGIN
		INSERT INTO items_fts(rowid, key, name)
		VALUES (new.id, new.key, new.name);
	END;

	CREATE TRIGGER IF NOT EXISTS items_ad AFTER DELETE ON items BEGIN
		INSERT INTO items_fts(items_fts, rowid, key, name)
		VALUES ('delete', old.id, old.key, old.name);
	END;

	CREATE TRIGGER IF NOT EXISTS items_au AFTER UPDATE ON items BEGIN
		INSERT INTO items_fts(items_fts, rowid, key, name)
		VALUES ('delete', old.id, old.key, old.name);
		INSERT INTO items_fts(rowid, key, name)
		VALUES (new.id, new.key, new.name);
	END;
	`

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}

	return nil
}

// splitStatements breaks a DDL script into statements on trailing
// semicolons. Trigger bodies contain semicolons of their own, so a CREATE
// TRIGGER statement only ends at its END;
func splitStatements(ddl string) []string {
	var statements []string
	var current strings.Builder
	var inTrigger bool

	for _, line := range strings.Split(ddl, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasPrefix(strings.ToUpper(stripped), "CREATE TRIGGER") {
			inTrigger = true
		}
		if inTrigger {
			if strings.EqualFold(stripped, "END;") {
				statements = append(statements, current.String())
				current.Reset()
				inTrigger = false
			}
			continue
		}
		if strings.HasSuffix(stripped, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if strings.TrimSpace(current.String()) != "" {
		statements = append(statements, current.String())
	}

	return statements
}
