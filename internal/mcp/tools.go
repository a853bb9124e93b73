package mcp

import (
	"context"
	"fmt"
	"sort"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type ListCategoriesInput struct{}

type ListItemsInput struct {
	Category string `json:"category" jsonschema:"category to list"`
}

type GetItemInput struct {
	Category string `json:"category" jsonschema:"item category"`
	Key      string `json:"key" jsonschema:"item key within the category"`
}

type SearchItemsInput struct {
	Query    string `json:"query" jsonschema:"substring matched against item keys"`
	Category string `json:"category,omitempty" jsonschema:"restrict to a single category"`
}

type CategoryOutput struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ListCategoriesOutput struct {
	GameVersion string           `json:"game_version"`
	Categories  []CategoryOutput `json:"categories"`
}

type ListItemsOutput struct {
	Category string   `json:"category"`
	Keys     []string `json:"keys"`
}

type GetItemOutput struct {
	Category string         `json:"category"`
	Key      string         `json:"key"`
	Item     map[string]any `json:"item"`
}

type ItemMatchOutput struct {
	Category string `json:"category"`
	Key      string `json:"key"`
}

type SearchItemsOutput struct {
	Matches []ItemMatchOutput `json:"matches"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_categories",
		Description: "List the generated item categories and their sizes",
	}, s.handleListCategories)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_items",
		Description: "List the item keys in a category",
	}, s.handleListItems)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_item",
		Description: "Retrieve one item with its full data",
	}, s.handleGetItem)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_items",
		Description: "Search item keys across categories",
	}, s.handleSearchItems)
}

func (s *Server) handleListCategories(ctx context.Context, req *sdk.CallToolRequest, input ListCategoriesInput) (*sdk.CallToolResult, ListCategoriesOutput, error) {
	output := ListCategoriesOutput{
		GameVersion: s.library.GameVersion(),
		Categories:  make([]CategoryOutput, 0, len(s.library.Categories())),
	}
	for _, name := range s.library.Categories() {
		items, _ := s.library.Items(name)
		output.Categories = append(output.Categories, CategoryOutput{
			Name:  name,
			Count: len(items),
		})
	}
	return nil, output, nil
}

func (s *Server) handleListItems(ctx context.Context, req *sdk.CallToolRequest, input ListItemsInput) (*sdk.CallToolResult, ListItemsOutput, error) {
	if input.Category == "" {
		return nil, ListItemsOutput{}, fmt.Errorf("category is required")
	}
	items, ok := s.library.Items(input.Category)
	if !ok {
		return nil, ListItemsOutput{}, fmt.Errorf("unknown category %q", input.Category)
	}

	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return nil, ListItemsOutput{Category: input.Category, Keys: keys}, nil
}

func (s *Server) handleGetItem(ctx context.Context, req *sdk.CallToolRequest, input GetItemInput) (*sdk.CallToolResult, GetItemOutput, error) {
	if input.Category == "" {
		return nil, GetItemOutput{}, fmt.Errorf("category is required")
	}
	if input.Key == "" {
		return nil, GetItemOutput{}, fmt.Errorf("key is required")
	}
	if _, ok := s.library.Items(input.Category); !ok {
		return nil, GetItemOutput{}, fmt.Errorf("unknown category %q", input.Category)
	}

	item, ok := s.library.Item(input.Category, input.Key)
	if !ok {
		return nil, GetItemOutput{}, fmt.Errorf("item not found")
	}

	return nil, GetItemOutput{
		Category: input.Category,
		Key:      input.Key,
		Item:     item,
	}, nil
}

func (s *Server) handleSearchItems(ctx context.Context, req *sdk.CallToolRequest, input SearchItemsInput) (*sdk.CallToolResult, SearchItemsOutput, error) {
	if input.Query == "" {
		return nil, SearchItemsOutput{}, fmt.Errorf("query is required")
	}
	if input.Category != "" {
		if _, ok := s.library.Items(input.Category); !ok {
			return nil, SearchItemsOutput{}, fmt.Errorf("unknown category %q", input.Category)
		}
	}

	matches := s.library.Search(input.Query, input.Category)

	output := SearchItemsOutput{Matches: make([]ItemMatchOutput, 0, len(matches))}
	for _, match := range matches {
		output.Matches = append(output.Matches, ItemMatchOutput{
			Category: match.Category,
			Key:      match.Key,
		})
	}
	return nil, output, nil
}
