package gen

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/vuemdi/mdigen/internal/gen/format"
)

// fileHeader marks generated files. Kept free of timestamps so repeated
// runs over an unchanged tree are byte-identical.
const fileHeader = "// Generated by mdigen. DO NOT EDIT."

const iconComponentTemplate = `{{header}}
import { defineComponent, type PropType, type VNode } from 'vue'
import { MDIcon } from '../../components/MDIcon'

export type IconVariant = 'filled' | 'outlined' | 'round' | 'sharp' | 'twotone'

export const {{.ComponentName}} = defineComponent({
  name: '{{.ComponentName}}',
  props: {
    variant: {
      type: String as PropType<IconVariant>,
      default: '{{.DefaultVariant}}',
    },
  },
  setup(props) {
    const svgMap: Partial<Record<IconVariant, () => VNode>> = {
{{- range .Variants}}
      {{.Variant}}: () => ({{.SVG}}),
{{- end}}
    }

    const availableVariants: IconVariant[] = [{{variantList .Variants}}]

    return () => {
      const requestedVariant = props.variant
      const variant = availableVariants.includes(requestedVariant)
        ? requestedVariant
        : '{{.DefaultVariant}}'

      const className = variant === '{{filled}}'
        ? '{{.BaseClass}}'
        : ` + "`{{.BaseClass}}-${variant}`" + `

      const renderSvg = svgMap[variant]

      return (
        <MDIcon class={className}>
          {renderSvg ? renderSvg() : null}
        </MDIcon>
      )
    }
  },
})
`

type variantSVG struct {
	Variant IconVariant
	SVG     string
}

var iconTmpl = template.Must(template.New("icon").Funcs(template.FuncMap{
	"header": func() string { return fileHeader },
	"filled": func() string { return string(VariantFilled) },
	"variantList": func(vs []variantSVG) string {
		quoted := make([]string, len(vs))
		for i, v := range vs {
			quoted[i] = "'" + string(v.Variant) + "'"
		}
		return strings.Join(quoted, ", ")
	},
}).Parse(iconComponentTemplate))

// generateIconComponent reads and normalizes every available variant of one
// icon and writes its component file. Variants that fail to read or parse
// are dropped with a warning; if none survive, the icon is skipped entirely
// and no file is written.
func (g *Generator) generateIconComponent(icon IconInfo, finalName string) (bool, error) {
	variants := g.collectVariants(icon)
	if len(variants) == 0 {
		g.logger.Warn("Icon has no renderable variants", "icon", icon.Name, "category", icon.Category)
		return false, nil
	}

	data := struct {
		ComponentName  string
		BaseClass      string
		DefaultVariant IconVariant
		Variants       []variantSVG
	}{
		ComponentName:  finalName,
		BaseClass:      ClassName(icon.Name),
		DefaultVariant: defaultVariant(variants),
		Variants:       variants,
	}

	var b strings.Builder
	if err := iconTmpl.Execute(&b, data); err != nil {
		return false, fmt.Errorf("execute icon template for %s: %w", finalName, err)
	}

	formatted, err := g.formatter.Format(b.String(), format.Options{Parser: "typescript"})
	if err != nil {
		return false, fmt.Errorf("format %s: %w", finalName, err)
	}

	outDir := filepath.Join(g.srcDir, "icons", icon.Category)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return false, fmt.Errorf("create directory %s: %w", outDir, err)
	}
	outPath := filepath.Join(outDir, finalName+".tsx")
	if err := os.WriteFile(outPath, []byte(formatted), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", outPath, err)
	}
	return true, nil
}

// collectVariants reads each variant SVG in canonical order and normalizes
// it, dropping failures.
func (g *Generator) collectVariants(icon IconInfo) []variantSVG {
	var out []variantSVG
	for _, v := range Variants {
		svgPath, ok := icon.Variants[v]
		if !ok {
			continue
		}
		raw, err := fs.ReadFile(g.fsys, svgPath)
		if err != nil {
			g.logger.Warn("Cannot read SVG file", "path", svgPath, "error", err)
			continue
		}
		normalized, err := NormalizeSVG(string(raw))
		if err != nil {
			g.logger.Warn("Skipping invalid SVG", "path", svgPath, "error", err)
			continue
		}
		out = append(out, variantSVG{Variant: v, SVG: normalized})
	}
	return out
}

// defaultVariant prefers filled among the available variants, falling back
// to the first available one in canonical order.
func defaultVariant(variants []variantSVG) IconVariant {
	for _, v := range variants {
		if v.Variant == VariantFilled {
			return VariantFilled
		}
	}
	return variants[0].Variant
}
