// Package listing implements the directory listing pipeline: enumerate the
// immediate children of a directory, filter and format their names, and
// write the result to a text file inside that directory.
package listing

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/inqluet/file-analyzer/internal/extfilter"
	"github.com/inqluet/file-analyzer/internal/types"
	"go.uber.org/zap"
)

const outputSuffix = ".txt"

// Service runs listing pipelines.
type Service struct {
	logger *zap.Logger
}

// New creates a new Service. A nil logger disables logging.
func New(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// NormalizeOutputName appends ".txt" unless name already ends with it.
func NormalizeOutputName(name string) string {
	if strings.HasSuffix(name, outputSuffix) {
		return name
	}
	return name + outputSuffix
}

// Generate lists cfg.Directory, writes the surviving names to
// cfg.Directory/cfg.OutputFileName and returns them.
func (s *Service) Generate(cfg types.Configuration) (types.Result, error) {
	cfg.OutputFileName = NormalizeOutputName(cfg.OutputFileName)

	entries, err := s.ReadEntries(cfg.Directory)
	if err != nil {
		s.logger.Error("Failed to read directory", zap.String("directory", cfg.Directory), zap.Error(err))
		return types.Result{}, err
	}

	items := s.Select(entries, cfg)

	outPath := filepath.Join(cfg.Directory, cfg.OutputFileName)
	if err := os.WriteFile(outPath, []byte(strings.Join(items, "\n")), 0o644); err != nil {
		s.logger.Error("Failed to write output", zap.String("path", outPath), zap.Error(err))
		return types.Result{}, &IOError{Op: OpWriteOutput, Path: outPath, Err: err}
	}

	s.logger.Info("Wrote listing",
		zap.String("path", outPath),
		zap.Int("entries", len(entries)),
		zap.Int("count", len(items)))

	return types.Result{
		Items:      items,
		Count:      len(items),
		OutputPath: outPath,
	}, nil
}

// ReadEntries returns the immediate children of dir classified as files or
// directories. Symlinks are classified by their target; anything that is
// not a directory counts as a file.
func (s *Service) ReadEntries(dir string) ([]types.Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &IOError{Op: OpReadDirectory, Path: dir, Err: err}
	}

	entries := make([]types.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		kind := types.KindFile
		if isDir(dir, de) {
			kind = types.KindDirectory
		}
		entries = append(entries, types.Entry{Name: de.Name(), Kind: kind})
	}
	return entries, nil
}

func isDir(dir string, de fs.DirEntry) bool {
	if de.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(dir, de.Name()))
		return err == nil && info.IsDir()
	}
	return de.IsDir()
}

// Select applies the ignore set, the directory switch and the extension
// rules to entries, then formats, sorts and truncates the display names.
func (s *Service) Select(entries []types.Entry, cfg types.Configuration) []string {
	outName := NormalizeOutputName(cfg.OutputFileName)
	ignored := map[string]struct{}{outName: {}}
	if cfg.SelfName != "" {
		ignored[cfg.SelfName] = struct{}{}
	}

	filter := extfilter.New(cfg.Whitelist, cfg.Blacklist)

	items := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && !cfg.IncludeDirectories {
			s.logger.Debug("Skipping directory", zap.String("name", entry.Name))
			continue
		}

		if _, ok := ignored[entry.Name]; ok {
			s.logger.Debug("Skipping ignored entry", zap.String("name", entry.Name))
			continue
		}

		if !entry.IsDir() && !filter.AllowsFile(entry.Name) {
			s.logger.Debug("Skipping filtered file",
				zap.String("name", entry.Name),
				zap.String("extension", extfilter.Extension(entry.Name)))
			continue
		}

		items = append(items, displayName(entry, cfg.KeepExtensions))
	}

	sort.Strings(items)

	if cfg.LimitEnabled && cfg.LimitCount > 0 && len(items) > cfg.LimitCount {
		items = items[:cfg.LimitCount]
	}

	return items
}

func displayName(entry types.Entry, keepExtensions bool) string {
	if entry.IsDir() || keepExtensions {
		return entry.Name
	}
	return extfilter.StripExtension(entry.Name)
}
