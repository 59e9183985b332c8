package seed

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// ResolveActiveSources flattens the selected categories into the list of
// sources to ingest. Explicitly requested names keep their request order;
// selecting all categories iterates them in lexicographic name order so a
// run is deterministic. Referencing a category that is not configured is a
// configuration error and nothing is written.
func ResolveActiveSources(sel Selector, categories map[string]Category) ([]Source, error) {
	if !sel.Enabled() {
		return nil, nil
	}

	names := sel.Names()
	if sel.All() {
		names = maps.Keys(categories)
		slices.Sort(names)
	}

	var sources []Source
	for _, name := range names {
		category, ok := categories[name]
		if !ok {
			return nil, fmt.Errorf("seed category %q is not configured", name)
		}
		sources = append(sources, category.Sources...)
	}
	return sources, nil
}
