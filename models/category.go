package models

import "strconv"

// Category is a backend-owned image bucket. The client never mutates a
// category in place; create and delete are round-trips followed by a full
// re-fetch.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Filter sentinels used when requesting image lists. "All" and
// "uncategorised" are client-side selections, not backend category rows.
const (
	// FilterAll requests images from every category.
	FilterAll int64 = -1
	// FilterUncategorised requests images that belong to no category.
	FilterUncategorised int64 = 0

	// SelectionUncategorised is the string token the UI uses for the
	// uncategorised bucket.
	SelectionUncategorised = "uncategorised"
)

// CategoryFilterValue maps a UI category selection to the wire value the
// backend expects: empty selection ("All") becomes -1, the uncategorised
// token becomes 0, and a concrete id string is coerced to its numeric
// value. Unparseable ids fall back to FilterAll.
func CategoryFilterValue(selection string) int64 {
	switch selection {
	case "":
		return FilterAll
	case SelectionUncategorised:
		return FilterUncategorised
	default:
		id, err := strconv.ParseInt(selection, 10, 64)
		if err != nil {
			return FilterAll
		}
		return id
	}
}
