package menu

import (
	"fmt"

	"mastermenu/internal/manifest"
	"mastermenu/internal/registry"
	"mastermenu/pkg/logging"
)

// ModelCategory is one rendered category: resolved entries in declared order.
type ModelCategory struct {
	ID      string
	Name    string
	Entries []*manifest.AppManifest
}

// Model is the navigable menu handed to the presentation layer.
type Model struct {
	Categories []ModelCategory
}

// BuildModel resolves the menu configuration against a registry index.
// Categories and their entries keep exactly the declared order. Ids absent
// from the registry are dropped with a warning; the menu still renders with
// whatever resolves. Categories with zero resolved entries are kept — the
// presentation layer decides whether to show them.
func BuildModel(cfg *Config, idx *registry.Index) (*Model, []string) {
	model := &Model{}
	var warnings []string

	for _, cat := range cfg.Categories {
		mc := ModelCategory{ID: cat.ID, Name: cat.Name}
		for _, id := range cat.Items {
			m, ok := idx.Get(id)
			if !ok {
				warning := fmt.Sprintf("category %q references unknown tool %q", cat.ID, id)
				warnings = append(warnings, warning)
				logging.Warn("Menu", "%s", warning)
				continue
			}
			mc.Entries = append(mc.Entries, m)
		}
		model.Categories = append(model.Categories, mc)
	}

	return model, warnings
}
