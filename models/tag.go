package models

// Tag is a free-form label attached to exactly one image. Tags are
// created and deleted individually; ordering follows whatever the server
// returns.
type Tag struct {
	ID  int64  `json:"id"`
	Tag string `json:"tag"`
}
