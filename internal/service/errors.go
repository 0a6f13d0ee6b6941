package service

import "errors"

var (
	ErrEmptyCategoryName = errors.New("category name is empty")
	ErrInvalidImageURL   = errors.New("image URL must be an absolute http(s) URL")
	ErrNotAnImage        = errors.New("file is not an image")
	ErrEmptyTag          = errors.New("tag is empty")

	ErrSessionCommit = errors.New("could not persist session")
)
