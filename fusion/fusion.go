package fusion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/viant/afs"

	"csfuse/fusion/csharp"
	"csfuse/fusion/graph"
	"csfuse/fusion/repository"
)

// Tool is the banner identity of the fuser.
const Tool = "csfuse"

// Version is stamped into the output banner and reported by the CLI.
const Version = "0.4.0"

// Options configure one fusion run.
type Options struct {
	InputDir         string
	OutputPath       string // derived from InputDir and Root when empty
	Root             string // forced root namespace; empty means inferred
	Recursive        bool
	Annotate         bool
	IncludeGenerated bool
	ExcludeSuffixes  []string // extra generated-file suffixes to exclude
	Banner           Banner   // zero fields fall back to Tool, Version, now
}

// Result summarizes a completed run.
type Result struct {
	RootNamespace string
	OutputPath    string
	Files         int
	Declarations  int
	Imports       int
	Fingerprint   uint64
	Bytes         int
}

// Fuser runs the full pipeline: discover, read, parse, collect, merge,
// resolve, assemble, write. A run is a single synchronous pass: it either
// writes one output file or fails with nothing written.
type Fuser struct {
	fs      afs.Service
	locator *repository.Locator
	parser  *csharp.Parser
}

// New creates a fuser backed by the local file system.
func New() *Fuser {
	return &Fuser{
		fs:      afs.New(),
		locator: repository.NewLocator(),
		parser:  csharp.NewParser(),
	}
}

// Fuse executes one run with the given options.
func (f *Fuser) Fuse(ctx context.Context, options Options) (*Result, error) {
	if ok, _ := f.fs.Exists(ctx, options.InputDir); !ok {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, options.InputDir)
	}
	outputPath, err := resolveOutputPath(options)
	if err != nil {
		return nil, err
	}

	paths, err := f.locator.Locate(ctx, repository.Query{
		Root:             options.InputDir,
		Recursive:        options.Recursive,
		IncludeGenerated: options.IncludeGenerated,
		ExtraSuffixes:    options.ExcludeSuffixes,
		Exclude:          outputPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to discover sources in %s: %w", options.InputDir, err)
	}

	units := make([]*graph.ParsedUnit, 0, len(paths))
	for _, path := range paths {
		content, err := f.fs.DownloadWithURL(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		unit, err := f.parser.Parse(ctx, &graph.SourceFile{Path: path, Content: content})
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	collector := NewCollector(options.Annotate)
	declarations, imports, namespaces := collector.Collect(units)

	merged := &graph.MergedUnit{
		RootNamespace: ResolveNamespace(namespaces, options.Root),
		Imports:       MergeImports(imports),
		Declarations:  declarations,
	}

	assembler := NewAssembler(&csharp.Emitter{})
	output, fingerprint, err := assembler.Assemble(merged, options.banner())
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	return &Result{
		RootNamespace: merged.RootNamespace,
		OutputPath:    outputPath,
		Files:         len(paths),
		Declarations:  len(merged.Declarations),
		Imports:       len(merged.Imports),
		Fingerprint:   fingerprint,
		Bytes:         len(output),
	}, nil
}

func (o Options) banner() Banner {
	banner := o.Banner
	if banner.Tool == "" {
		banner.Tool = Tool
	}
	if banner.Version == "" {
		banner.Version = Version
	}
	if banner.GeneratedAt.IsZero() {
		banner.GeneratedAt = time.Now()
	}
	return banner
}

// resolveOutputPath derives <inputDir>/<root>.cs when no explicit output is
// given; that derivation needs a forced root name.
func resolveOutputPath(options Options) (string, error) {
	if options.OutputPath != "" {
		return options.OutputPath, nil
	}
	root := strings.TrimSpace(options.Root)
	if root == "" {
		return "", &UsageError{Msg: "no output file given and no --root to derive one from"}
	}
	return filepath.Join(options.InputDir, root+".cs"), nil
}
