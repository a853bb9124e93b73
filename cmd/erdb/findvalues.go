package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"erdb/internal/config"
	"erdb/internal/gamedata"
)

func findValuesCmd() *cobra.Command {
	var gamedataVersion string
	var limit int
	cmd := &cobra.Command{
		Use:   "find-values <ParamTable:field>",
		Short: "List the distinct values of a param field with example rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFindValues(args[0], gamedataVersion, limit)
		},
	}
	cmd.Flags().StringVar(&gamedataVersion, "gamedata-version", "", "Game version to read params from (default: newest found)")
	cmd.Flags().IntVar(&limit, "limit", 8, "Example names per value, negative for all")
	return cmd
}

func runFindValues(arg, gamedataVersion string, limit int) error {
	stem, field, ok := strings.Cut(arg, ":")
	if !ok || stem == "" || field == "" {
		return fmt.Errorf("argument must be ParamTable:field, got %q", arg)
	}

	cfg, err := config.LoadProjectConfig("erdb.yaml")
	if err != nil {
		return err
	}

	version, err := resolveGamedataVersion(cfg, gamedataVersion)
	if err != nil {
		return err
	}

	src := gamedata.NewSource(cfg.Paths.Gamedata, version)

	groups, err := src.FindValues(stem, field, limit)
	if err != nil {
		return err
	}

	for _, group := range groups {
		fmt.Fprintf(os.Stdout, "%s (%d rows)", group.Value, group.Total)
		if len(group.Examples) > 0 {
			fmt.Fprintf(os.Stdout, ": %s", strings.Join(group.Examples, ", "))
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
