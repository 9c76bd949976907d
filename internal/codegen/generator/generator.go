package generator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Alia5/makestatus/internal/log"
	"github.com/Alia5/makestatus/internal/statusxml"
)

// Emitter receives the flattened status table in document order.
// Status and Include calls arrive in the order they appear across the
// merged documents, between a single Begin and End.
type Emitter interface {
	Begin() error
	Status(index int, s statusxml.Status) error
	Include(path string) error
	End() error
}

// Summary describes what a run touched.
type Summary struct {
	Entries  int
	Blocks   int
	Includes []string
}

// Generator walks a root document and its includes, feeding every emitter.
// A Generator holds per-run state and is not safe for concurrent use.
type Generator struct {
	baseDir  string
	logger   *slog.Logger
	emitters []Emitter

	visited map[string]struct{}
	summary Summary
}

// New creates a Generator that resolves include hrefs against baseDir.
func New(baseDir string, logger *slog.Logger, emitters ...Emitter) *Generator {
	return &Generator{
		baseDir:  baseDir,
		logger:   logger,
		emitters: emitters,
	}
}

// Run processes rootPath and every document it transitively includes.
func (g *Generator) Run(rootPath string) (*Summary, error) {
	root, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("resolve root document: %w", err)
	}

	g.visited = map[string]struct{}{root: {}}
	g.summary = Summary{}

	for _, e := range g.emitters {
		if err := e.Begin(); err != nil {
			return nil, fmt.Errorf("write prologue: %w", err)
		}
	}

	if err := g.processDocument(root); err != nil {
		return nil, err
	}

	for _, e := range g.emitters {
		if err := e.End(); err != nil {
			return nil, fmt.Errorf("write epilogue: %w", err)
		}
	}

	s := g.summary
	return &s, nil
}

func (g *Generator) processDocument(path string) error {
	g.logger.Debug("Processing status document", "path", path)

	doc, err := statusxml.ParseFile(path)
	if err != nil {
		return err
	}

	for _, n := range doc.Nodes {
		switch n := n.(type) {
		case *statusxml.Block:
			err = g.processBlock(n)
		case statusxml.Include:
			err = g.resolveInclude(n)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) processBlock(b *statusxml.Block) error {
	g.summary.Blocks++

	// The counter is informational; entries carry explicit values.
	var offset int64
	for _, n := range b.Nodes {
		switch n := n.(type) {
		case statusxml.Offset:
			offset = n.Value
			g.logger.Log(context.Background(), log.LevelTrace, "Status block offset", "offset", n.Raw)
		case statusxml.Status:
			for _, e := range g.emitters {
				if err := e.Status(g.summary.Entries, n); err != nil {
					return fmt.Errorf("write status %s: %w", n.Name, err)
				}
			}
			g.summary.Entries++
			offset++
		case statusxml.Include:
			if err := g.resolveInclude(n); err != nil {
				return err
			}
		}
	}

	g.logger.Debug("Processed status block", "entries", g.summary.Entries, "offset", offset)
	return nil
}

func (g *Generator) resolveInclude(inc statusxml.Include) error {
	path := inc.Href
	if !filepath.IsAbs(path) {
		path = filepath.Join(g.baseDir, path)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve include %q: %w", inc.Href, err)
	}

	if _, ok := g.visited[path]; ok {
		g.logger.Debug("Skipping visited include", "path", path)
		return nil
	}
	g.visited[path] = struct{}{}
	g.summary.Includes = append(g.summary.Includes, path)

	for _, e := range g.emitters {
		if err := e.Include(path); err != nil {
			return fmt.Errorf("write dependency %s: %w", path, err)
		}
	}
	return g.processDocument(path)
}
