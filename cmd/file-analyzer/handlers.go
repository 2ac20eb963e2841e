package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/inqluet/file-analyzer/internal/extfilter"
	"github.com/inqluet/file-analyzer/internal/types"
	"github.com/inqluet/file-analyzer/internal/uri"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func handleGenerateList(ctx context.Context, req *mcp.CallToolRequest, input GenerateListInput) (*mcp.CallToolResult, GenerateListOutput, error) {
	dir := strings.TrimSpace(input.Directory)
	if dir == "" {
		return &mcp.CallToolResult{IsError: true}, GenerateListOutput{}, fmt.Errorf("directory is required")
	}
	if input.Limit < 0 {
		return &mcp.CallToolResult{IsError: true}, GenerateListOutput{}, fmt.Errorf("limit must not be negative")
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, GenerateListOutput{}, err
	}

	cfg := types.DefaultConfiguration(absDir)
	if output := strings.TrimSpace(input.Output); output != "" {
		cfg.OutputFileName = output
	}
	if input.KeepExtensions != nil {
		cfg.KeepExtensions = *input.KeepExtensions
	}
	cfg.IncludeDirectories = input.IncludeDirectories
	cfg.Whitelist = extfilter.ParseList(strings.Join(input.Whitelist, ","))
	cfg.Blacklist = extfilter.ParseList(strings.Join(input.Blacklist, ","))
	if input.Limit > 0 {
		cfg.LimitEnabled = true
		cfg.LimitCount = input.Limit
	}

	result, err := listingService.Generate(cfg)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, GenerateListOutput{}, err
	}

	return nil, GenerateListOutput{
		Count:  result.Count,
		Items:  result.Items,
		Output: filepath.Base(result.OutputPath),
		URI:    uri.FileURI(result.OutputPath),
	}, nil
}
