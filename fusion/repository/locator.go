package repository

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// generatedSuffixes are the file name endings excluded by default: compiler,
// designer and assembly-metadata output that would fuse machine-written code.
var generatedSuffixes = []string{
	".g.cs",
	".g.i.cs",
	".designer.cs",
	".generated.cs",
	".assemblyinfo.cs",
	".assemblyattributes.cs",
}

// Query describes one discovery pass.
type Query struct {
	Root             string
	Recursive        bool
	IncludeGenerated bool
	ExtraSuffixes    []string
	Exclude          string // resolved output path, never a candidate
}

// Locator lists candidate C# source files in deterministic order.
type Locator struct {
	fs afs.Service
}

// NewLocator creates a new locator.
func NewLocator() *Locator {
	return &Locator{fs: afs.New()}
}

// Locate returns the ordered candidate list for the query. Order is lexical
// on the full path, so discovery order is stable across runs.
func (l *Locator) Locate(ctx context.Context, query Query) ([]string, error) {
	var paths []string
	exclude := normalizePath(query.Exclude)

	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		if !query.Recursive && parent != "" {
			return true, nil
		}
		location := url.Join(baseURL, info.Name())
		if parent != "" {
			location = url.Join(baseURL, parent, info.Name())
		}
		if candidate(location, query, exclude) {
			paths = append(paths, location)
		}
		return true, nil
	}
	if err := l.fs.Walk(ctx, query.Root, visitor); err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func candidate(location string, query Query, exclude string) bool {
	lower := strings.ToLower(location)
	if !strings.HasSuffix(lower, ".cs") {
		return false
	}
	if exclude != "" && normalizePath(location) == exclude {
		return false
	}
	for _, suffix := range query.ExtraSuffixes {
		if suffix != "" && strings.HasSuffix(lower, strings.ToLower(suffix)) {
			return false
		}
	}
	if query.IncludeGenerated {
		return true
	}
	for _, suffix := range generatedSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return false
		}
	}
	return true
}

func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return strings.ToLower(filepath.ToSlash(filepath.Clean(path)))
}
