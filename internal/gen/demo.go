package gen

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
)

const demoListTemplate = `{{header}}
import { defineComponent, type PropType } from 'vue';
import * as MDI from '@/index';
import type { IconVariant } from '@/index';

export default defineComponent({
  name: '{{.ListName}}',
  props: {
    variant: {
      type: String as PropType<IconVariant>,
      default: 'filled',
    },
  },
  setup(props) {
    return () => (<div class="icon-pane">
  <div class="icon-category">{{.Title}}</div>
  <ul>
{{- range .Items}}
<li>
  <MDI.{{.ComponentName}} variant={props.variant} />
  <span class="icon-name">{{.DisplayName}}</span>
</li>
{{- end}}
</ul>
</div>);
  },
});
`

const demoPanesTemplate = `{{header}}
import { defineComponent, ref } from 'vue';
import * as panes from './icons';
import type { IconVariant } from '@/index';

const VARIANTS: IconVariant[] = [{{variantNames}}];

export default defineComponent({
  name: 'IconPanes',
  setup() {
    const variant = ref<IconVariant>('filled');

    const handleVariantChange = (newVariant: IconVariant) => {
      variant.value = newVariant;
    };

    return () => (
      <div class="icon-panes">
        <div class="variant-selector">
          <span class="variant-label">Variant:</span>
          <div class="variant-buttons">
            {VARIANTS.map((v) => (
              <button
                key={v}
                class={['variant-btn', { active: variant.value === v }]}
                onClick={() => handleVariantChange(v)}
              >
                {v}
              </button>
            ))}
          </div>
        </div>
        <div class="icon-content">
{{- range .Lists}}
          <panes.{{.}} variant={variant.value} />
{{- end}}
        </div>
      </div>
    );
  },
});
`

var demoFuncs = template.FuncMap{
	"header": func() string { return fileHeader },
	"variantNames": func() string {
		quoted := make([]string, len(Variants))
		for i, v := range Variants {
			quoted[i] = "'" + string(v) + "'"
		}
		return strings.Join(quoted, ", ")
	},
}

var (
	demoListTmpl  = template.Must(template.New("demoList").Funcs(demoFuncs).Parse(demoListTemplate))
	demoPanesTmpl = template.Must(template.New("demoPanes").Funcs(demoFuncs).Parse(demoPanesTemplate))
)

type demoItem struct {
	ComponentName string
	DisplayName   string
}

// generateDemo emits the playground tree: one List{Category} component per
// category, an icons index re-exporting the lists, and the IconPanes
// aggregator wiring every list to a shared variant switcher.
func (g *Generator) generateDemo(resolved map[string][]ResolvedIcon) error {
	iconsDir := filepath.Join(g.demoDir, "views", "icons")

	for _, category := range Categories {
		icons := resolved[category]
		if len(icons) == 0 {
			g.logger.Warn("No icons found for demo list", "category", category)
			continue
		}

		items := make([]demoItem, 0, len(icons))
		for _, icon := range icons {
			items = append(items, demoItem{
				ComponentName: icon.FinalName,
				DisplayName:   DisplayName(icon.Name),
			})
		}

		data := struct {
			ListName string
			Title    string
			Items    []demoItem
		}{
			ListName: ListName(category),
			Title:    upperFirst(category),
			Items:    items,
		}

		var b strings.Builder
		if err := demoListTmpl.Execute(&b, data); err != nil {
			return fmt.Errorf("execute demo list template for %s: %w", category, err)
		}
		outPath := filepath.Join(iconsDir, ListName(category)+".tsx")
		if err := g.writeFormatted(outPath, b.String()); err != nil {
			return err
		}
	}

	if err := g.generateDemoIndex(iconsDir); err != nil {
		return err
	}
	return g.generateDemoPanes()
}

func (g *Generator) generateDemoIndex(iconsDir string) error {
	var b strings.Builder
	b.WriteString(fileHeader + "\n")
	for _, category := range Categories {
		listName := ListName(category)
		fmt.Fprintf(&b, "import %s from './%s';\nexport { %s };\n", listName, listName, listName)
	}
	return g.writeFormatted(filepath.Join(iconsDir, "index.ts"), b.String())
}

func (g *Generator) generateDemoPanes() error {
	lists := make([]string, 0, len(Categories))
	for _, category := range Categories {
		lists = append(lists, ListName(category))
	}

	var b strings.Builder
	if err := demoPanesTmpl.Execute(&b, struct{ Lists []string }{Lists: lists}); err != nil {
		return fmt.Errorf("execute panes template: %w", err)
	}
	return g.writeFormatted(filepath.Join(g.demoDir, "views", "IconPanes.tsx"), b.String())
}
