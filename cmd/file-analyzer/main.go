// Package main implements the file-analyzer command line tool.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/inqluet/file-analyzer/internal/extfilter"
	"github.com/inqluet/file-analyzer/internal/listing"
	"github.com/inqluet/file-analyzer/internal/logging"
	"github.com/inqluet/file-analyzer/internal/preset"
	"github.com/inqluet/file-analyzer/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type listOptions struct {
	output     string
	keepExt    bool
	dirs       bool
	whitelist  string
	blacklist  string
	limit      int
	selfName   string
	presetPath string
	savePreset string
	debug      bool
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "file-analyzer [directory]",
		Short: "Write the names of a directory's entries to a text file",
		Long: `file-analyzer lists the immediate files (and optionally folders) of a
directory, filters them by extension, sorts and optionally truncates
the names, and writes them one per line to a .txt file inside that
directory.`,
		Example: `file-analyzer ~/Downloads -w ".pdf, .epub" --keep-ext=false -o books`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", types.DefaultOutputFileName, "output file name (.txt is appended if missing)")
	flags.BoolVar(&opts.keepExt, "keep-ext", true, "keep file extensions in the listing")
	flags.BoolVarP(&opts.dirs, "dirs", "d", false, "include folders")
	flags.StringVarP(&opts.whitelist, "whitelist", "w", "", "only these extensions, e.g. \".txt, .py\"")
	flags.StringVarP(&opts.blacklist, "blacklist", "b", "", "exclude these extensions, e.g. \".exe, .tmp\"")
	flags.IntVarP(&opts.limit, "limit", "n", 0, "write at most this many lines")
	flags.StringVar(&opts.selfName, "self-name", types.DefaultSelfName, "entry name never listed (empty to disable)")
	flags.StringVarP(&opts.presetPath, "preset", "p", "", "load options from a YAML preset")
	flags.StringVar(&opts.savePreset, "save-preset", "", "save the effective options to a YAML preset")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newServeCommand(opts))

	return cmd
}

func runList(cmd *cobra.Command, args []string, opts *listOptions) error {
	cfg, err := buildConfiguration(cmd, args, opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(opts.debug, version)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logging.Sync(logger)

	result, err := listing.New(logger).Generate(cfg)
	if err != nil {
		return err
	}

	if opts.savePreset != "" {
		if err := preset.Save(opts.savePreset, cfg); err != nil {
			return err
		}
		logger.Info("Saved preset", zap.String("path", opts.savePreset))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Found %d items.\nSaved to: %s\n", result.Count, filepath.Base(result.OutputPath))
	return nil
}

// buildConfiguration layers defaults, the optional preset, the positional
// directory and explicitly set flags, in that order.
func buildConfiguration(cmd *cobra.Command, args []string, opts *listOptions) (types.Configuration, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return types.Configuration{}, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg := types.DefaultConfiguration(cwd)
	if opts.presetPath != "" {
		cfg, err = preset.Load(opts.presetPath, cfg)
		if err != nil {
			return types.Configuration{}, err
		}
	}

	if len(args) > 0 {
		cfg.Directory = args[0]
	}

	flags := cmd.Flags()
	if opts.presetPath == "" || flags.Changed("output") {
		cfg.OutputFileName = opts.output
	}
	if opts.presetPath == "" || flags.Changed("keep-ext") {
		cfg.KeepExtensions = opts.keepExt
	}
	if opts.presetPath == "" || flags.Changed("dirs") {
		cfg.IncludeDirectories = opts.dirs
	}
	if opts.presetPath == "" || flags.Changed("whitelist") {
		cfg.Whitelist = extfilter.ParseList(opts.whitelist)
	}
	if opts.presetPath == "" || flags.Changed("blacklist") {
		cfg.Blacklist = extfilter.ParseList(opts.blacklist)
	}
	if opts.presetPath == "" || flags.Changed("self-name") {
		cfg.SelfName = opts.selfName
	}
	if flags.Changed("limit") {
		if opts.limit < 1 {
			return types.Configuration{}, fmt.Errorf("--limit must be at least 1, got %d", opts.limit)
		}
		cfg.LimitEnabled = true
		cfg.LimitCount = opts.limit
	}

	return cfg, nil
}
