package main

import (
	"context"

	"github.com/spf13/cobra"

	"erdb/internal/config"
	"erdb/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	var gamedataVersion string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated databases over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(gamedataVersion)
		},
	}
	cmd.Flags().StringVar(&gamedataVersion, "gamedata-version", "", "Generated version to serve (default: last generated)")
	return cmd
}

func runServe(gamedataVersion string) error {
	ctx := context.Background()

	cfg, err := config.LoadProjectConfig("erdb.yaml")
	if err != nil {
		return err
	}

	outputVersion, err := resolveOutputVersion(cfg, gamedataVersion)
	if err != nil {
		return err
	}

	library, err := mcp.LoadLibrary(cfg.Paths.Output, outputVersion)
	if err != nil {
		return err
	}

	server := mcp.NewServer(library, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
