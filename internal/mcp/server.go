package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	library *Library
	mcp     *sdk.Server
}

func NewServer(library *Library, version string) *Server {
	s := &Server{
		library: library,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "erdb",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
