package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"erdb/internal/config"
	"erdb/internal/gamedata"
	"erdb/internal/gameversion"
	"erdb/internal/generate"
	"erdb/internal/schema"
)

func generateCmd() *cobra.Command {
	var gamedataVersion string
	cmd := &cobra.Command{
		Use:   "generate <category>...",
		Short: "Generate item databases from the param tables",
		Long:  "Generate item databases from the param tables. Pass category names or \"all\".",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(args, gamedataVersion)
		},
	}
	cmd.Flags().StringVar(&gamedataVersion, "gamedata-version", "", "Game version to generate from (default: newest found)")
	return cmd
}

func runGenerate(args []string, gamedataVersion string) error {
	categories, err := generate.ParseCategories(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadProjectConfig("erdb.yaml")
	if err != nil {
		return err
	}

	version, err := resolveGamedataVersion(cfg, gamedataVersion)
	if err != nil {
		return err
	}

	schemas, err := schema.Load(cfg.Paths.Schemas)
	if err != nil {
		return err
	}

	src := gamedata.NewSource(cfg.Paths.Gamedata, version)

	fmt.Fprintf(os.Stdout, "Generating %d categories for version %s.\n", len(categories), version)

	failed := 0
	for _, category := range categories {
		g, err := generate.New(category, src)
		if err != nil {
			return err
		}
		result, err := generate.Run(g, schemas, cfg.Paths.Output, version)
		if err != nil {
			return err
		}

		action := "created"
		if result.Loaded {
			action = "updated"
		}
		fmt.Fprintf(os.Stdout, "  %s: %d items, %s %s\n", category, result.Elements, action, result.OutputFile)
		for _, issue := range result.Issues {
			fmt.Fprintf(os.Stdout, "    ! %s\n", issue)
		}
		if result.Failed() {
			failed++
		}
	}

	newest, err := gameversion.Latest(cfg.Paths.Gamedata)
	if err != nil {
		return err
	}
	if newest.Compare(version) == 0 {
		if err := generate.WriteLatestVersion(cfg.Paths.Output, version); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d categories failed validation", failed, len(categories))
	}
	return nil
}
