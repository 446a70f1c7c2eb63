// Package sizing maps a product's category tags to the measurement fields
// that apply to it. Detection is a data-driven keyword table checked in a
// fixed priority order; the lookup always falls back to the generic field
// set and never fails.
package sizing

import "strings"

// Category is a detected measurement category.
type Category string

const (
	CategoryShirts   Category = "shirts"
	CategoryPants    Category = "pants"
	CategoryShoes    Category = "shoes"
	CategoryBelts    Category = "belts"
	CategoryDresses  Category = "dresses"
	CategoryJackets  Category = "jackets"
	CategoryPerfumes Category = "perfumes"
	CategoryGeneric  Category = "generic"
)

// Field describes one measurement input for a size.
type Field struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Unit        string `json:"unit"`
	Placeholder string `json:"placeholder"`
}

type rule struct {
	category Category
	keywords []string
}

// rules are checked in order; the first category with a matching keyword
// wins. Substring match, case-insensitive.
var rules = []rule{
	{CategoryShoes, []string{"shoe", "sneaker", "boot", "sandal", "loafer", "heel"}},
	{CategoryBelts, []string{"belt"}},
	{CategoryDresses, []string{"dress", "gown", "skirt"}},
	{CategoryJackets, []string{"jacket", "coat", "blazer", "hoodie"}},
	{CategoryPants, []string{"pant", "trouser", "jean", "short", "legging"}},
	{CategoryShirts, []string{"shirt", "top", "blouse", "tee", "polo"}},
	{CategoryPerfumes, []string{"perfume", "fragrance", "cologne"}},
}

// DetectCategory resolves a set of free-text tags to a measurement category.
// Pure and deterministic; unmatched tags yield the generic category.
func DetectCategory(tags []string) Category {
	for _, r := range rules {
		for _, tag := range tags {
			lower := strings.ToLower(tag)
			for _, kw := range r.keywords {
				if strings.Contains(lower, kw) {
					return r.category
				}
			}
		}
	}
	return CategoryGeneric
}

var genericFields = []Field{
	{"chest", "Chest", "cm", "e.g. 96"},
	{"waist", "Waist", "cm", "e.g. 78"},
	{"hip", "Hip", "cm", "e.g. 100"},
	{"frontLength", "Front Length", "cm", "e.g. 70"},
}

var fieldsByCategory = map[Category][]Field{
	CategoryShirts: {
		{"chest", "Chest", "cm", "e.g. 96"},
		{"shoulder", "Shoulder Width", "cm", "e.g. 44"},
		{"sleeveLength", "Sleeve Length", "cm", "e.g. 62"},
		{"frontLength", "Front Length", "cm", "e.g. 70"},
		{"backLength", "Back Length", "cm", "e.g. 72"},
	},
	CategoryPants: {
		{"waist", "Waist", "cm", "e.g. 78"},
		{"hip", "Hip", "cm", "e.g. 100"},
		{"inseam", "Inseam", "cm", "e.g. 79"},
		{"thigh", "Thigh Width", "cm", "e.g. 30"},
	},
	CategoryShoes: {
		{"shoeSizeUs", "US Size", "", "e.g. 9.5"},
		{"shoeSizeEu", "EU Size", "", "e.g. 43"},
		{"footLength", "Foot Length", "cm", "e.g. 27.5"},
		{"footWidth", "Foot Width", "cm", "e.g. 10"},
	},
	CategoryBelts: {
		{"beltLength", "Belt Length", "cm", "e.g. 110"},
		{"beltWidth", "Belt Width", "cm", "e.g. 3.5"},
	},
	CategoryDresses: {
		{"chest", "Chest", "cm", "e.g. 90"},
		{"waist", "Waist", "cm", "e.g. 72"},
		{"hip", "Hip", "cm", "e.g. 98"},
		{"frontLength", "Front Length", "cm", "e.g. 110"},
	},
	CategoryJackets: {
		{"chest", "Chest", "cm", "e.g. 104"},
		{"shoulder", "Shoulder Width", "cm", "e.g. 46"},
		{"sleeveLength", "Sleeve Length", "cm", "e.g. 64"},
		{"frontLength", "Front Length", "cm", "e.g. 68"},
	},
	// Perfumes carry no body measurements; sizes are volumes.
	CategoryPerfumes: {},
	CategoryGeneric:  genericFields,
}

// FieldsFor returns the ordered measurement fields for a category. Unknown
// categories fall back to the generic set.
func FieldsFor(category Category) []Field {
	if fields, ok := fieldsByCategory[category]; ok {
		return fields
	}
	return genericFields
}

// FieldsForTags is the composition used by the entry form: the schema for a
// product is exactly FieldsFor(DetectCategory(tags)).
func FieldsForTags(tags []string) []Field {
	return FieldsFor(DetectCategory(tags))
}
