package gen

import (
	"regexp"
	"strings"
)

var icWrapPattern = regexp.MustCompile(`ic_(.+)(_24px|_26x24px)`)

// NormalizeName strips the conventional ic_{name}_24px / ic_{name}_26x24px
// wrapping from a raw icon name. Names without the wrapping pass through
// unchanged.
func NormalizeName(name string) string {
	return icWrapPattern.ReplaceAllString(name, "$1")
}

// ComponentName derives the exported component identifier for a raw icon
// name, e.g. "3d_rotation" -> "MDI3dRotation". Leading digits are kept.
func ComponentName(name string) string {
	return "MDI" + toPascalCase(NormalizeName(name))
}

// ClassName derives the base CSS class for a raw icon name,
// e.g. "add_circle" -> "mdi-add-circle".
func ClassName(name string) string {
	return "mdi-" + strings.ReplaceAll(NormalizeName(name), "_", "-")
}

// CSSClassName derives the final CSS class for an icon variant. The filled
// variant uses the bare class; every other variant appends a suffix. All
// generated artifacts that print a class name must go through this function.
func CSSClassName(name string, variant IconVariant) string {
	base := ClassName(name)
	if variant == VariantFilled {
		return base
	}
	return base + "-" + string(variant)
}

// DisplayName derives a human-readable label for demo pages,
// e.g. "add_circle" -> "Add circle". Never used for identifiers.
func DisplayName(name string) string {
	return upperFirst(strings.ReplaceAll(NormalizeName(name), "_", " "))
}

// ListName derives the demo list component identifier for a category,
// e.g. "action" -> "ListAction".
func ListName(category string) string {
	return "List" + upperFirst(category)
}

func toPascalCase(s string) string {
	if s == "" {
		return ""
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})

	var b strings.Builder
	for _, word := range words {
		b.WriteString(strings.ToUpper(word[:1]))
		if len(word) > 1 {
			b.WriteString(word[1:])
		}
	}
	return b.String()
}

func upperFirst(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
