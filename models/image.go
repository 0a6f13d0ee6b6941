package models

// Image is a bookmarked image as reported by the backend. Display-only
// state (copy confirmation, armed delete) lives in the viewing screen and
// is never part of this model.
type Image struct {
	ID           int64  `json:"id"`
	URL          string `json:"url"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName,omitempty"`
}

// DisplayCategory returns the category name to show for the image,
// falling back to the uncategorised label when the backend sent none.
func (i Image) DisplayCategory() string {
	if i.CategoryName != "" {
		return i.CategoryName
	}
	return "Uncategorised"
}
