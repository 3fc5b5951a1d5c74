package tokenlint

import "strings"

// TokenCategory groups related design tokens
type TokenCategory string

// Token categories keyed off the --<category>-<variant> naming convention
const (
	CategoryColor      TokenCategory = "Color"
	CategorySpacing    TokenCategory = "Spacing"
	CategoryTypography TokenCategory = "Typography"
	CategoryMotion     TokenCategory = "Motion"
	CategoryRadius     TokenCategory = "Radius"
	CategoryShadow     TokenCategory = "Shadow"
	CategoryOther      TokenCategory = "Other"
)

// tokenCategories maps name prefixes (the first segment after "--") to
// categories
var tokenCategories = map[string]TokenCategory{
	"color": CategoryColor,

	"spacing": CategorySpacing,
	"space":   CategorySpacing,
	"gap":     CategorySpacing,

	"font":    CategoryTypography,
	"text":    CategoryTypography,
	"line":    CategoryTypography,
	"letter":  CategoryTypography,
	"leading": CategoryTypography,

	"transition": CategoryMotion,
	"duration":   CategoryMotion,
	"easing":     CategoryMotion,
	"animation":  CategoryMotion,

	"radius": CategoryRadius,
	"rounded": CategoryRadius,

	"shadow":    CategoryShadow,
	"elevation": CategoryShadow,
}

// CategorizeToken determines the category of a custom-property name
func CategorizeToken(name string) TokenCategory {
	name = strings.TrimPrefix(name, "--")
	segment, _, _ := strings.Cut(name, "-")
	if cat, exists := tokenCategories[segment]; exists {
		return cat
	}
	return CategoryOther
}

// CategorizeTokens counts the tokens of a scope per category
func CategorizeTokens(vars VariableMap) map[TokenCategory]int {
	counts := make(map[TokenCategory]int)
	for name := range vars {
		counts[CategorizeToken(name)]++
	}
	return counts
}
