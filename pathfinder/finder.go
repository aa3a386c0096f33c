package pathfinder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/fulmenhq/docstruct/fulhash"
)

// FinderConfig holds default settings for the FinderFacade.
type FinderConfig struct {
	LoaderType string // Type of loader (default: "local")
}

// FindQuery specifies the parameters for discovery. It backs the CLI's
// `batch` subcommand, expanding glob inputs into a concrete file list
// before each file is handed to the conversion pipeline.
type FindQuery struct {
	Root               string
	Include            []string
	Exclude            []string
	MaxDepth           int
	FollowSymlinks     bool
	IncludeHidden      bool
	CalculateChecksums bool
	ChecksumAlgorithm  string
	ErrorHandler       func(path string, err error) error
	ProgressCallback   func(processed int, total int, currentPath string)
}

// PathResult represents a discovered path along with logical mapping information.
type PathResult struct {
	RelativePath string
	SourcePath   string
	LogicalPath  string
	LoaderType   string
	Metadata     map[string]any
}

// Finder provides high-level path discovery operations.
type Finder struct {
	config FinderConfig
}

// NewFinder creates a new finder with default config.
func NewFinder() *Finder {
	return &Finder{config: FinderConfig{LoaderType: "local"}}
}

// FindFiles performs file discovery based on the query.
func (f *Finder) FindFiles(ctx context.Context, query FindQuery) ([]PathResult, error) {
	absRoot, err := filepath.Abs(query.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", query.Root, err)
	}

	ignoreMatcher, err := NewIgnoreMatcher(absRoot)
	if err != nil && query.ErrorHandler != nil {
		_ = query.ErrorHandler(".fulmenignore", err)
	}

	var results []PathResult

	for _, pattern := range query.Include {
		globPattern := filepath.Join(absRoot, pattern)

		basePattern := globPattern
		for _, wildcard := range []string{"*", "?", "[", "]"} {
			if idx := strings.Index(basePattern, wildcard); idx != -1 {
				basePattern = basePattern[:idx]
			}
		}
		basePattern = filepath.Clean(basePattern)

		if basePattern != absRoot && !strings.HasPrefix(basePattern, absRoot+string(filepath.Separator)) {
			if query.ErrorHandler != nil {
				_ = query.ErrorHandler(pattern, ErrEscapesRoot)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(globPattern)
		if err != nil {
			if query.ErrorHandler != nil {
				if handlerErr := query.ErrorHandler(pattern, err); handlerErr != nil {
					return nil, handlerErr
				}
			}
			continue
		}

		for _, match := range matches {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			absMatch, err := filepath.Abs(match)
			if err != nil {
				continue
			}

			if err := ValidatePath(absMatch); err != nil {
				if query.ErrorHandler != nil {
					_ = query.ErrorHandler(absMatch, err)
				}
				continue
			}
			if err := ValidatePathWithinRoot(absMatch, absRoot); err != nil {
				if query.ErrorHandler != nil {
					_ = query.ErrorHandler(absMatch, err)
				}
				continue
			}

			info, err := os.Lstat(absMatch)
			if err != nil {
				if query.ErrorHandler != nil {
					_ = query.ErrorHandler(absMatch, err)
				}
				continue
			}
			if info.IsDir() {
				continue
			}
			if !query.FollowSymlinks && info.Mode()&os.ModeSymlink != 0 {
				continue
			}

			relPath, err := filepath.Rel(absRoot, absMatch)
			if err != nil {
				continue
			}

			if query.MaxDepth > 0 {
				depth := strings.Count(relPath, string(filepath.Separator)) + 1
				if depth > query.MaxDepth {
					continue
				}
			}

			if !query.IncludeHidden && ContainsHiddenSegment(relPath) {
				continue
			}
			if ignoreMatcher != nil && ignoreMatcher.IsIgnored(relPath) {
				continue
			}

			metadata := make(map[string]any)
			metadata["size"] = info.Size()
			metadata["mtime"] = info.ModTime().Format("2006-01-02T15:04:05.000000000Z07:00")

			if query.CalculateChecksums {
				algorithm := query.ChecksumAlgorithm
				if algorithm == "" {
					algorithm = "xxh3-128"
				}
				addChecksum(metadata, absMatch, algorithm)
			}

			result := PathResult{
				RelativePath: relPath,
				SourcePath:   absMatch,
				LogicalPath:  relPath,
				LoaderType:   f.config.LoaderType,
				Metadata:     metadata,
			}
			results = append(results, result)

			if query.ProgressCallback != nil {
				query.ProgressCallback(len(results), -1, absMatch)
			}
		}
	}

	if len(query.Exclude) > 0 {
		filtered := make([]PathResult, 0, len(results))
		for _, result := range results {
			excluded := false
			for _, excludePattern := range query.Exclude {
				if matched, _ := doublestar.Match(excludePattern, result.RelativePath); matched {
					excluded = true
					break
				}
			}
			if !excluded {
				filtered = append(filtered, result)
			}
		}
		results = filtered
	}

	return results, nil
}

func addChecksum(metadata map[string]any, path, algorithm string) {
	var alg fulhash.Algorithm
	switch algorithm {
	case "xxh3-128":
		alg = fulhash.XXH3_128
	case "sha256":
		alg = fulhash.SHA256
	default:
		metadata["checksumError"] = fmt.Sprintf("unsupported algorithm: %s", algorithm)
		return
	}

	file, err := os.Open(path) // #nosec G304 -- path is validated with ValidatePathWithinRoot
	if err != nil {
		metadata["checksumError"] = fmt.Sprintf("failed to open file: %v", err)
		return
	}
	defer file.Close()

	digest, err := fulhash.HashReader(file, fulhash.WithAlgorithm(alg))
	if err != nil {
		metadata["checksumError"] = fmt.Sprintf("checksum calculation failed: %v", err)
		return
	}
	metadata["checksum"] = digest.String()
	metadata["checksumAlgorithm"] = string(digest.Algorithm())
}

// FindByExtension finds files with specific extensions, used by the batch
// subcommand's default `*.pdf` discovery.
func (f *Finder) FindByExtension(ctx context.Context, root string, exts []string) ([]PathResult, error) {
	patterns := make([]string, len(exts))
	for i, ext := range exts {
		patterns[i] = "**/*." + ext
	}
	return f.FindFiles(ctx, FindQuery{Root: root, Include: patterns})
}
