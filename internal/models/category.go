package models

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is the spending category of an expense.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryHealth         Category = "Health"
	CategoryHousing        Category = "Housing"
	CategoryUtilities      Category = "Utilities"
	CategoryOther          Category = "Other"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealth,
	CategoryHousing,
	CategoryUtilities,
	CategoryOther,
}

func categoryNames() []string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, string(c))
	}
	return names
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	// A Caser is stateful and must not be shared
	c := Category(cases.Title(language.English).String(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w, got %q", ErrInvalidCategory, s)
	}

	return c, nil
}

// Valid reports if c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}
