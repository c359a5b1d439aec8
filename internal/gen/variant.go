// Package gen implements the icon component generator: it scans the
// Material Design Icons 4.0 asset tree, resolves component names across
// categories, and synthesizes Vue TSX components plus index and demo files.
package gen

// IconVariant is one of the five visual styles an icon can ship in.
type IconVariant string

const (
	VariantFilled   IconVariant = "filled"
	VariantOutlined IconVariant = "outlined"
	VariantRound    IconVariant = "round"
	VariantSharp    IconVariant = "sharp"
	VariantTwotone  IconVariant = "twotone"
)

// Variants lists all variants in their canonical order. The order matters:
// default-variant selection falls back to the first available entry.
var Variants = []IconVariant{
	VariantFilled,
	VariantOutlined,
	VariantRound,
	VariantSharp,
	VariantTwotone,
}

// variantDirs maps each variant to its on-disk source directory name.
var variantDirs = map[IconVariant]string{
	VariantFilled:   "materialicons",
	VariantOutlined: "materialiconsoutlined",
	VariantRound:    "materialiconsround",
	VariantSharp:    "materialiconssharp",
	VariantTwotone:  "materialiconstwotone",
}

// dirVariants is the inverse of variantDirs.
var dirVariants = func() map[string]IconVariant {
	m := make(map[string]IconVariant, len(variantDirs))
	for v, d := range variantDirs {
		m[d] = v
	}
	return m
}()

// VariantDir returns the source directory name for a variant.
func VariantDir(v IconVariant) (string, bool) {
	d, ok := variantDirs[v]
	return d, ok
}

// DirVariant maps a source directory name back to its variant.
func DirVariant(dir string) (IconVariant, bool) {
	v, ok := dirVariants[dir]
	return v, ok
}

// Categories is the fixed, ordered list of icon categories in the 4.0 asset
// tree. The order drives deterministic output ordering and duplicate-name
// resolution; do not sort or reorder.
var Categories = []string{
	"action",
	"alert",
	"av",
	"communication",
	"content",
	"device",
	"editor",
	"file",
	"hardware",
	"home",
	"image",
	"maps",
	"navigation",
	"notification",
	"places",
	"social",
	"toggle",
}

// SVGFileName is the single leaf file checked inside each variant directory.
const SVGFileName = "24px.svg"

// IconInfo describes one discovered icon before name resolution.
type IconInfo struct {
	Category string
	Name     string // raw snake_case directory name, may start with a digit
	Variants map[IconVariant]string
}
