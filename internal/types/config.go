// Package types defines the data structures shared by the listing pipeline
// and its front ends.
package types

// DefaultOutputFileName is the output name used when none is configured.
const DefaultOutputFileName = "files.txt"

// DefaultSelfName is the tool's own artifact name, never listed.
const DefaultSelfName = "file-analyzer"

type (
	// Configuration holds the options for a single listing run.
	// It is passed by value and never modified by the pipeline.
	Configuration struct {
		Directory          string   `json:"directory" yaml:"directory"`
		OutputFileName     string   `json:"output" yaml:"output"`
		KeepExtensions     bool     `json:"keepExtensions" yaml:"keepExtensions"`
		IncludeDirectories bool     `json:"includeDirectories" yaml:"includeDirectories"`
		Whitelist          []string `json:"whitelist,omitempty" yaml:"whitelist,omitempty"`
		Blacklist          []string `json:"blacklist,omitempty" yaml:"blacklist,omitempty"`
		LimitEnabled       bool     `json:"limitEnabled" yaml:"limitEnabled"`
		LimitCount         int      `json:"limit" yaml:"limit"`
		SelfName           string   `json:"selfName" yaml:"selfName"`
	}
)

// DefaultConfiguration returns the configuration the tool starts with.
func DefaultConfiguration(directory string) Configuration {
	return Configuration{
		Directory:      directory,
		OutputFileName: DefaultOutputFileName,
		KeepExtensions: true,
		SelfName:       DefaultSelfName,
	}
}
