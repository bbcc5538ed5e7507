package state

import (
	"fmt"
)

// Category of a token (an amphipod). It determines how much energy each step costs and
// which bay is its home.
//
// NoCategory is the null value, used for empty slots.
type Category uint8

const (
	NoCategory Category = iota
	Amber
	Bronze
	Copper
	Desert
	LastCategory
)

// NumCategories doesn't include NoCategory.
const NumCategories = int(LastCategory - 1)

var (
	CategoryLetters  = [LastCategory]rune{'.', 'A', 'B', 'C', 'D'}
	LetterToCategory = map[rune]Category{'A': Amber, 'B': Bronze, 'C': Copper, 'D': Desert}
	CategoryNames    = [LastCategory]string{"None", "Amber", "Bronze", "Copper", "Desert"}

	// Categories enumerates all the categories, skipping NoCategory.
	Categories = [NumCategories]Category{Amber, Bronze, Copper, Desert}

	unitCosts = [LastCategory]uint64{0, 1, 10, 100, 1000}
)

// String returns the long category name.
func (c Category) String() string {
	if c >= LastCategory {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return CategoryNames[c]
}

// Letter used for the category in the text board.
func (c Category) Letter() rune {
	return CategoryLetters[c]
}

// UnitCost is the energy spent by a token of this category for each step.
func (c Category) UnitCost() uint64 {
	return unitCosts[c]
}

// HomeBay returns the index of the bay where tokens of this category must end.
// It returns -1 for NoCategory.
func (c Category) HomeBay() int {
	return int(c) - 1
}

// HomeOf returns the category whose home is the given bay.
func HomeOf(bay int) Category {
	return Category(bay + 1)
}

// ParseCategory converts a board letter to its Category.
func ParseCategory(r rune) (Category, error) {
	c, ok := LetterToCategory[r]
	if !ok {
		return NoCategory, &ParseError{Msg: fmt.Sprintf("unknown category %q, valid are 'A', 'B', 'C', 'D'", r)}
	}
	return c, nil
}
