package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// GenerateListInput contains parameters for generating a listing.
	GenerateListInput struct {
		Directory          string   `json:"directory" jsonschema:"Directory whose immediate entries are listed"`
		Output             string   `json:"output,omitempty" jsonschema:"Output file name inside the directory (default: files.txt, .txt appended if missing)"`
		KeepExtensions     *bool    `json:"keepExtensions,omitempty" jsonschema:"Keep file extensions in the names (default: true)"`
		IncludeDirectories bool     `json:"includeDirectories,omitempty" jsonschema:"Include folders, which are never extension-filtered (default: false)"`
		Whitelist          []string `json:"whitelist,omitempty" jsonschema:"Only list files with these extensions, e.g. .txt"`
		Blacklist          []string `json:"blacklist,omitempty" jsonschema:"Never list files with these extensions; applied after the whitelist"`
		Limit              int      `json:"limit,omitempty" jsonschema:"Maximum number of names to write (default: no limit)"`
	}

	// GenerateListOutput contains the result of generating a listing.
	GenerateListOutput struct {
		Count  int      `json:"count"`
		Items  []string `json:"items"`
		Output string   `json:"output"`
		URI    string   `json:"uri"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_list",
		Description: "List the immediate files (and optionally folders) of a directory, filter them by extension, sort and optionally truncate the names, and write them one per line to a .txt file in that directory. Overwrites an existing file of the same name.",
	}, handleGenerateList)
}
