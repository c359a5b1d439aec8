package gen

import (
	"io/fs"
	"log/slog"
	"path"
)

// Scanner discovers icons in the 4.0 asset tree. The filesystem is injected
// so tests can run against an in-memory tree.
type Scanner struct {
	fsys   fs.FS
	logger *slog.Logger
}

// NewScanner returns a scanner rooted at fsys, whose layout is
// {category}/{icon_name}/{variant_dir}/24px.svg.
func NewScanner(fsys fs.FS, logger *slog.Logger) *Scanner {
	return &Scanner{fsys: fsys, logger: logger}
}

// ScanAll scans every category in fixed order and returns the inventory as
// a category -> icons map. Iteration must follow Categories to stay
// deterministic.
func (s *Scanner) ScanAll() map[string][]IconInfo {
	all := make(map[string][]IconInfo, len(Categories))
	for _, category := range Categories {
		icons := s.ScanCategory(category)
		all[category] = icons
		s.logger.Info("Scanned category", "category", category, "icons", len(icons))
	}
	return all
}

// ScanCategory discovers all icons under one category, sorted by natural
// name order. A missing or unreadable category directory is not an error:
// it logs a warning and yields zero icons. Icons without at least one
// variant SVG are excluded.
func (s *Scanner) ScanCategory(category string) []IconInfo {
	entries, err := fs.ReadDir(s.fsys, category)
	if err != nil {
		s.logger.Warn("Cannot scan category", "category", category, "error", err)
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	SortNatural(names)

	var icons []IconInfo
	for _, name := range names {
		variants := s.scanVariants(category, name)
		if len(variants) == 0 {
			continue
		}
		icons = append(icons, IconInfo{
			Category: category,
			Name:     name,
			Variants: variants,
		})
	}
	return icons
}

// scanVariants finds which variant directories of one icon contain the
// 24px.svg leaf. Existence is checked by Stat only; content is read later
// by the component synthesizer.
func (s *Scanner) scanVariants(category, name string) map[IconVariant]string {
	iconDir := path.Join(category, name)
	entries, err := fs.ReadDir(s.fsys, iconDir)
	if err != nil {
		s.logger.Warn("Cannot read icon directory", "icon", iconDir, "error", err)
		return nil
	}

	variants := make(map[IconVariant]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		variant, ok := DirVariant(entry.Name())
		if !ok {
			continue
		}
		svgPath := path.Join(iconDir, entry.Name(), SVGFileName)
		if _, err := fs.Stat(s.fsys, svgPath); err != nil {
			continue
		}
		variants[variant] = svgPath
	}
	if len(variants) == 0 {
		return nil
	}
	return variants
}
