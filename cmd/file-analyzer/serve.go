package main

import (
	"fmt"

	"github.com/inqluet/file-analyzer/internal/listing"
	"github.com/inqluet/file-analyzer/internal/logging"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var listingService *listing.Service

func newServeCommand(opts *listOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run an MCP server exposing the listing tool over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(opts.debug, version)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logging.Sync(logger)

			listingService = listing.New(logger)

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "file-analyzer",
				Version: version,
			}, nil)

			registerTools(server)

			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}
}
