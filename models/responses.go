package models

// Envelope is the shared error envelope carried by every backend
// response. A response is a failure when the HTTP status is outside the
// success range OR Error is true, regardless of status. Description,
// when present, is the human-readable failure text.
type Envelope struct {
	Error       bool   `json:"error"`
	Description string `json:"description,omitempty"`
}

// Env exposes the embedded envelope to the response decoder.
func (e *Envelope) Env() *Envelope { return e }

// RecordLoginResponse is returned by the record-login endpoint. User,
// when present, is the backend's authoritative account record (it carries
// the backend-assigned id).
type RecordLoginResponse struct {
	Envelope
	User *User `json:"user,omitempty"`
}

// CategoriesResponse is returned by the category fetch-all endpoint.
type CategoriesResponse struct {
	Envelope
	Categories []Category `json:"categories"`
}

// CreateCategoryResponse is returned by the category create endpoint.
type CreateCategoryResponse struct {
	Envelope
	CategoryID int64 `json:"categoryId"`
}

// ImagesResponse is returned by the image fetch-all endpoint.
type ImagesResponse struct {
	Envelope
	Images []Image `json:"images"`
}

// TagsResponse is returned by the tag fetch-all endpoint.
type TagsResponse struct {
	Envelope
	Tags []Tag `json:"tags"`
}

// StatusResponse is returned by endpoints that report only success or
// failure (deletes, image adds).
type StatusResponse struct {
	Envelope
}
