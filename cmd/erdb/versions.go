package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"erdb/internal/config"
	"erdb/internal/gameversion"
)

func versionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the game versions found under the gamedata root",
		Args:  cobra.NoArgs,
		RunE:  runVersions,
	}
}

func runVersions(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadProjectConfig("erdb.yaml")
	if err != nil {
		return err
	}

	versions, err := gameversion.Discover(cfg.Paths.Gamedata)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Fprintln(os.Stdout, "No game versions found.")
		return nil
	}

	for i, v := range versions {
		if i == 0 {
			fmt.Fprintf(os.Stdout, "%s (latest)\n", v)
			continue
		}
		fmt.Fprintln(os.Stdout, v)
	}
	return nil
}
