package models

// Request bodies for the backend endpoints. Every call is an HTTP POST
// with a JSON body except the file upload, which uses multipart form
// fields instead.

// RecordLoginRequest notifies the backend that a user has logged in.
type RecordLoginRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Method    string `json:"method"`
	AuthToken string `json:"authToken"`
}

// ListCategoriesRequest fetches every category owned by the user.
type ListCategoriesRequest struct {
	UserID int64 `json:"userId"`
}

// CreateCategoryRequest creates a new category.
type CreateCategoryRequest struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
}

// DeleteCategoryRequest removes a category by id.
type DeleteCategoryRequest struct {
	UserID     int64 `json:"userId"`
	CategoryID int64 `json:"categoryId"`
}

// ListImagesRequest fetches images filtered by category. CategoryID uses
// the filter sentinels: -1 for all, 0 for the uncategorised bucket.
type ListImagesRequest struct {
	UserID     int64 `json:"userId"`
	CategoryID int64 `json:"categoryId"`
}

// AddImageLinkRequest bookmarks an image by URL.
type AddImageLinkRequest struct {
	UserID     int64  `json:"userId"`
	CategoryID int64  `json:"categoryId"`
	ImageURL   string `json:"imageUrl"`
}

// DeleteImageRequest removes a bookmarked image.
type DeleteImageRequest struct {
	UserID  int64 `json:"userId"`
	ImageID int64 `json:"imageId"`
}

// ListTagsRequest fetches the tags attached to one image.
type ListTagsRequest struct {
	UserID  int64 `json:"userId"`
	ImageID int64 `json:"imageId"`
}

// CreateTagRequest attaches a tag to an image.
type CreateTagRequest struct {
	UserID  int64  `json:"userId"`
	ImageID int64  `json:"imageId"`
	Tag     string `json:"tag"`
}

// DeleteTagRequest detaches a tag by id.
type DeleteTagRequest struct {
	UserID int64 `json:"userId"`
	TagID  int64 `json:"tagId"`
}
