package gen

import (
	"log/slog"
	"strings"
)

// Rename records one duplicate-name resolution: the final name an icon was
// renamed to and the category it came from.
type Rename struct {
	RenamedTo    string
	FromCategory string
}

// NameResolver assigns a unique component identifier to every icon in a
// single generation run. The first icon to claim a name keeps it; later
// claims splice the capitalized category after the MDI prefix.
//
// The resolver only guarantees that a raw name never collides twice
// unresolved. A renamed name is registered but not itself re-checked, so a
// third category whose renamed form matches an existing registration would
// still clash. The upstream asset tree has never produced that case.
//
// Not safe for concurrent use: callers must resolve names sequentially, in
// deterministic scan order.
type NameResolver struct {
	logger     *slog.Logger
	registered map[string]string // final name -> first-claiming category
	duplicates map[string][]Rename
	order      []string // duplicate log keys in first-collision order
}

// NewNameResolver returns an empty resolver scoped to one generation run.
func NewNameResolver(logger *slog.Logger) *NameResolver {
	return &NameResolver{
		logger:     logger,
		registered: make(map[string]string),
		duplicates: make(map[string][]Rename),
	}
}

// Resolve registers componentName for category and returns the final unique
// identifier. A second call with an already-claimed name always takes the
// rename branch, even from the same category.
func (r *NameResolver) Resolve(componentName, category string) string {
	if _, ok := r.registered[componentName]; !ok {
		r.registered[componentName] = category
		return componentName
	}

	renamed := strings.Replace(componentName, "MDI", "MDI"+upperFirst(category), 1)
	r.registered[renamed] = category

	if _, ok := r.duplicates[componentName]; !ok {
		r.order = append(r.order, componentName)
	}
	r.duplicates[componentName] = append(r.duplicates[componentName], Rename{
		RenamedTo:    renamed,
		FromCategory: category,
	})

	r.logger.Warn("Duplicate icon name detected",
		"original", componentName, "renamed", renamed, "category", category)

	return renamed
}

// IsRegistered reports whether name has been claimed in this run.
func (r *NameResolver) IsRegistered(name string) bool {
	_, ok := r.registered[name]
	return ok
}

// DuplicateLog returns every rename decision keyed by the original name, in
// first-collision order.
func (r *NameResolver) DuplicateLog() []DuplicateEntry {
	entries := make([]DuplicateEntry, 0, len(r.order))
	for _, original := range r.order {
		entries = append(entries, DuplicateEntry{
			Original: original,
			Renames:  r.duplicates[original],
		})
	}
	return entries
}

// DuplicateEntry groups the renames triggered by one original name.
type DuplicateEntry struct {
	Original string
	Renames  []Rename
}

// Reset clears all registrations. Test use only.
func (r *NameResolver) Reset() {
	r.registered = make(map[string]string)
	r.duplicates = make(map[string][]Rename)
	r.order = nil
}
