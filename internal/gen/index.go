package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vuemdi/mdigen/internal/gen/format"
)

// generateIndexes writes one index.ts per category plus the root icons
// index. Category indexes are derived from the component files actually on
// disk, sorted in natural file-name order, so renamed duplicates land in
// their final position.
func (g *Generator) generateIndexes() error {
	for _, category := range Categories {
		if err := g.generateCategoryIndex(category); err != nil {
			return err
		}
	}
	return g.generateRootIndex()
}

func (g *Generator) generateCategoryIndex(category string) error {
	categoryDir := filepath.Join(g.srcDir, "icons", category)
	names, err := scanComponentFiles(categoryDir)
	if err != nil {
		g.logger.Warn("Cannot read category output directory", "category", category, "error", err)
		return nil
	}
	if len(names) == 0 {
		g.logger.Warn("No components found for category", "category", category)
		return nil
	}

	var b strings.Builder
	b.WriteString(fileHeader + "\n")
	for _, name := range names {
		fmt.Fprintf(&b, "export { %s } from './%s'\n", name, name)
	}

	if err := g.writeFormatted(filepath.Join(categoryDir, "index.ts"), b.String()); err != nil {
		return err
	}
	g.logger.Info("Generated category index", "category", category, "components", len(names))
	return nil
}

func (g *Generator) generateRootIndex() error {
	var b strings.Builder
	b.WriteString(fileHeader + "\n")
	for _, category := range Categories {
		fmt.Fprintf(&b, "export * from './%s'\n", category)
	}

	indexPath := filepath.Join(g.srcDir, "icons", "index.ts")
	if err := g.writeFormatted(indexPath, b.String()); err != nil {
		return err
	}
	g.logger.Info("Generated root index", "categories", len(Categories))
	return nil
}

// scanComponentFiles lists the generated .tsx component names in dir,
// excluding index files, in natural order.
func scanComponentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".tsx") || name == "index.tsx" {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".tsx"))
	}
	SortNatural(names)
	return names, nil
}

// writeFormatted runs text through the formatter and writes it, creating
// parent directories as needed. Formatting failures are fatal for the file.
func (g *Generator) writeFormatted(path, text string) error {
	formatted, err := g.formatter.Format(text, format.Options{Parser: "typescript"})
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
