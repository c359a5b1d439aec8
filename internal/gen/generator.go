package gen

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vuemdi/mdigen/internal/gen/format"
)

// DefaultConcurrency bounds how many icon files are processed at once.
// Matches the upstream pipeline's file-processing limit.
const DefaultConcurrency = 10

// ResolvedIcon pairs a discovered icon with its final unique component name.
type ResolvedIcon struct {
	IconInfo
	FinalName string
}

// Summary reports what one generation run produced.
type Summary struct {
	PerCategory map[string]int
	Total       int
	Duplicates  []DuplicateEntry
}

// Generator drives one full generation run: clean, scan, resolve names,
// synthesize components, then indexes and demo files.
type Generator struct {
	fsys        fs.FS
	srcDir      string
	demoDir     string
	concurrency int
	formatter   *format.Formatter
	logger      *slog.Logger
}

// New builds a generator reading icons from fsys and writing generated
// sources under srcDir and demo files under demoDir.
func New(fsys fs.FS, srcDir, demoDir string, formatter *format.Formatter, logger *slog.Logger) *Generator {
	return &Generator{
		fsys:        fsys,
		srcDir:      srcDir,
		demoDir:     demoDir,
		concurrency: DefaultConcurrency,
		formatter:   formatter,
		logger:      logger,
	}
}

// SetConcurrency overrides the worker-pool size. Values below 1 are ignored.
func (g *Generator) SetConcurrency(n int) {
	if n >= 1 {
		g.concurrency = n
	}
}

// Clean removes previously generated output trees. A missing tree is fine;
// any other failure is fatal for the run.
func Clean(srcDir, demoDir string) error {
	for _, dir := range []string{
		filepath.Join(srcDir, "icons"),
		filepath.Join(demoDir, "views", "icons"),
	} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("clean %s: %w", dir, err)
		}
	}
	return nil
}

func (g *Generator) Clean() error {
	return Clean(g.srcDir, g.demoDir)
}

// Run executes the whole pipeline and returns a summary of generated files.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	if err := g.Clean(); err != nil {
		return nil, err
	}

	resolver := NewNameResolver(g.logger)
	inventory := NewScanner(g.fsys, g.logger).ScanAll()

	// Names are resolved sequentially in category order, then per-category
	// natural name order, before any concurrent file work starts. This keeps
	// resolution independent of I/O completion order.
	resolved := make(map[string][]ResolvedIcon, len(Categories))
	for _, category := range Categories {
		icons := inventory[category]
		out := make([]ResolvedIcon, 0, len(icons))
		for _, icon := range icons {
			final := resolver.Resolve(ComponentName(icon.Name), icon.Category)
			out = append(out, ResolvedIcon{IconInfo: icon, FinalName: final})
		}
		resolved[category] = out
	}

	generated, err := g.generateIcons(ctx, resolved)
	if err != nil {
		return nil, err
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(g.generateIndexes)
	eg.Go(func() error { return g.generateDemo(generated) })
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{
		PerCategory: make(map[string]int, len(Categories)),
		Duplicates:  resolver.DuplicateLog(),
	}
	for _, category := range Categories {
		n := len(generated[category])
		summary.PerCategory[category] = n
		summary.Total += n
	}
	for _, entry := range summary.Duplicates {
		for _, rename := range entry.Renames {
			g.logger.Info("Renamed duplicate icon",
				"original", entry.Original, "renamed", rename.RenamedTo, "category", rename.FromCategory)
		}
	}
	return summary, nil
}

// generateIcons writes every icon component through a bounded worker pool
// and returns, per category, the icons whose file was actually written, in
// scan order.
func (g *Generator) generateIcons(ctx context.Context, resolved map[string][]ResolvedIcon) (map[string][]ResolvedIcon, error) {
	generated := make(map[string][]ResolvedIcon, len(Categories))

	for _, category := range Categories {
		icons := resolved[category]
		if len(icons) == 0 {
			continue
		}
		g.logger.Info("Generating icons", "category", category, "count", len(icons))

		written := make([]bool, len(icons))
		var mu sync.Mutex

		eg, _ := errgroup.WithContext(ctx)
		eg.SetLimit(g.concurrency)
		for i, icon := range icons {
			i, icon := i, icon
			eg.Go(func() error {
				ok, err := g.generateIconComponent(icon.IconInfo, icon.FinalName)
				if err != nil {
					return err
				}
				mu.Lock()
				written[i] = ok
				mu.Unlock()
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}

		kept := make([]ResolvedIcon, 0, len(icons))
		for i, icon := range icons {
			if written[i] {
				kept = append(kept, icon)
			}
		}
		generated[category] = kept
	}
	return generated, nil
}
