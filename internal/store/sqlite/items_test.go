package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"erdb/internal/store"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "erdb.db")
	client, err := New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { client.Close(context.Background()) })

	if err := client.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	return client
}

func TestReplaceCategoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	items := []store.Item{
		{Key: "Uchigatana", Data: map[string]any{"name": "Uchigatana", "weight": 5.5}},
		{Key: "Misericorde", Data: map[string]any{"name": "Misericorde", "weight": 2.0}},
	}

	removed, err := client.ReplaceCategory(ctx, "armaments", "1.04.1", items)
	if err != nil {
		t.Fatalf("ReplaceCategory: %v", err)
	}
	if removed != 0 {
		t.Errorf("expected no stale items on first publish, got %d", removed)
	}

	got, err := client.GetItem(ctx, "armaments", "1.04.1", "uchigatana")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got == nil {
		t.Fatal("expected item, got nil")
	}
	if got.Key != "Uchigatana" {
		t.Errorf("expected key Uchigatana, got %q", got.Key)
	}
	if got.Category != "armaments" || got.GameVersion != "1.04.1" {
		t.Errorf("unexpected scope: %q %q", got.Category, got.GameVersion)
	}
	if got.Data["weight"] != 5.5 {
		t.Errorf("expected weight 5.5, got %v", got.Data["weight"])
	}

	missing, err := client.GetItem(ctx, "armaments", "1.04.1", "Moonveil")
	if err != nil {
		t.Fatalf("GetItem missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown key, got %+v", missing)
	}

	summaries, err := client.ListItems(ctx, "armaments", "1.04.1")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Name != "Misericorde" || summaries[1].Name != "Uchigatana" {
		t.Errorf("expected name ordering, got %q then %q", summaries[0].Name, summaries[1].Name)
	}
}

func TestReplaceCategoryRemovesStale(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	first := []store.Item{
		{Key: "Uchigatana", Data: map[string]any{"name": "Uchigatana"}},
		{Key: "Moonveil", Data: map[string]any{"name": "Moonveil"}},
		{Key: "Nagakiba", Data: map[string]any{"name": "Nagakiba"}},
	}
	if _, err := client.ReplaceCategory(ctx, "armaments", "1.04.1", first); err != nil {
		t.Fatalf("first publish: %v", err)
	}

	other := []store.Item{
		{Key: "Moonveil", Data: map[string]any{"name": "Moonveil"}},
	}
	if _, err := client.ReplaceCategory(ctx, "armaments", "1.05.0", other); err != nil {
		t.Fatalf("other version publish: %v", err)
	}

	second := []store.Item{
		{Key: "Uchigatana", Data: map[string]any{"name": "Uchigatana"}},
		{Key: "Nagakiba", Data: map[string]any{"name": "Nagakiba"}},
	}
	removed, err := client.ReplaceCategory(ctx, "armaments", "1.04.1", second)
	if err != nil {
		t.Fatalf("second publish: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 stale item removed, got %d", removed)
	}

	gone, err := client.GetItem(ctx, "armaments", "1.04.1", "Moonveil")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if gone != nil {
		t.Errorf("expected Moonveil removed from 1.04.1, got %+v", gone)
	}

	kept, err := client.GetItem(ctx, "armaments", "1.05.0", "Moonveil")
	if err != nil {
		t.Fatalf("GetItem other version: %v", err)
	}
	if kept == nil {
		t.Error("expected Moonveil kept at 1.05.0")
	}
}

func TestReplaceCategoryValidatesInput(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	if _, err := client.ReplaceCategory(ctx, "", "1.04.1", nil); err == nil {
		t.Error("expected error for empty category")
	}
	if _, err := client.ReplaceCategory(ctx, "armaments", "", nil); err == nil {
		t.Error("expected error for empty game version")
	}
}

func TestSearchItems(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	armaments := []store.Item{
		{Key: "Golden Halberd", Data: map[string]any{"name": "Golden Halberd"}},
		{Key: "Uchigatana", Data: map[string]any{"name": "Uchigatana"}},
	}
	if _, err := client.ReplaceCategory(ctx, "armaments", "1.04.1", armaments); err != nil {
		t.Fatalf("publish armaments: %v", err)
	}

	talismans := []store.Item{
		{Key: "Golden Scarab", Data: map[string]any{"name": "Golden Scarab"}},
	}
	if _, err := client.ReplaceCategory(ctx, "talismans", "1.04.1", talismans); err != nil {
		t.Fatalf("publish talismans: %v", err)
	}

	if _, err := client.Search(ctx, "  ", "", ""); err == nil {
		t.Error("expected error for empty query")
	}

	results, err := client.Search(ctx, "golden", "", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results for golden, got %d", len(results))
	}
	found := map[string]bool{}
	for _, r := range results {
		found[r.Name] = true
	}
	if !found["Golden Halberd"] || !found["Golden Scarab"] {
		t.Errorf("unexpected result set: %+v", results)
	}

	results, err = client.Search(ctx, "golden", "talismans", "")
	if err != nil {
		t.Fatalf("Search with category: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Golden Scarab" {
		t.Errorf("expected only Golden Scarab for talismans, got %+v", results)
	}

	results, err = client.Search(ctx, "golden halberd", "", "1.04.1")
	if err != nil {
		t.Fatalf("Search multi-term: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Golden Halberd" {
		t.Errorf("expected AND semantics, got %+v", results)
	}
}
