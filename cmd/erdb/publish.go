package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"erdb/internal/config"
	"erdb/internal/document"
	"erdb/internal/generate"
	"erdb/internal/store"
)

func publishCmd() *cobra.Command {
	var gamedataVersion string
	cmd := &cobra.Command{
		Use:   "publish <category>...",
		Short: "Replace generated databases in the configured store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(args, gamedataVersion)
		},
	}
	cmd.Flags().StringVar(&gamedataVersion, "gamedata-version", "", "Generated version to publish (default: last generated)")
	return cmd
}

func runPublish(args []string, gamedataVersion string) error {
	ctx := context.Background()

	categories, err := generate.ParseCategories(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadProjectConfig("erdb.yaml")
	if err != nil {
		return err
	}

	version, err := resolveOutputVersion(cfg, gamedataVersion)
	if err != nil {
		return err
	}

	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Publishing %d categories for version %s.\n", len(categories), version)

	for _, category := range categories {
		path := filepath.Join(cfg.Paths.Output, version, category.OutputFile())
		doc, loaded, err := document.Load(path, category.ElementName())
		if err != nil {
			return err
		}
		if !loaded {
			return fmt.Errorf("no generated %s database for version %s, run generate first", category, version)
		}

		items := make([]store.Item, 0, len(doc.Items))
		for key, data := range doc.Items {
			items = append(items, store.Item{Key: key, Data: data})
		}

		removed, err := db.ReplaceCategory(ctx, category.String(), version, items)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "  %s: %d items published, %d stale removed\n", category, len(items), removed)
	}

	return nil
}
