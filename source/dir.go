package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DirFetcher retrieves spec files from a local directory, for working
// against a checkout instead of the published file server.
type DirFetcher struct {
	dir string
}

// NewDirFetcher creates a fetcher reading <dir>/<name>.spec files.
func NewDirFetcher(dir string) *DirFetcher {
	return &DirFetcher{dir: dir}
}

// Dir returns the directory the fetcher reads from.
func (f *DirFetcher) Dir() string {
	return f.dir
}

// Fetch reads the named spec file from the directory. A missing file wraps
// ErrNotFound, matching the HTTP fetcher's contract.
func (f *DirFetcher) Fetch(_ context.Context, name string) ([]byte, error) {
	path := filepath.Join(f.dir, name+specExt)
	body, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return body, nil
}

// Names lists the spec names available in the directory, sorted. The glob
// pattern is matched against file names relative to the directory; an empty
// pattern lists every spec file, including ones in subdirectories.
func (f *DirFetcher) Names(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "**/*" + specExt
	} else if !strings.HasSuffix(pattern, specExt) {
		pattern += specExt
	}

	matches, err := doublestar.Glob(os.DirFS(f.dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, specExt))
	}
	sort.Strings(names)
	return names, nil
}
