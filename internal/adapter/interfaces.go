package adapter

import (
	"context"

	"github.com/gifcamp/gifcamp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter is the client's view of the GifCamp HTTP backend. Every
// method maps to one independently configured endpoint; calling a method
// whose endpoint is unconfigured returns [ErrFeatureNotConfigured].
//
// All real work (persistence, auth validation, image storage) happens on
// the backend; the adapter only encodes requests, decodes the shared
// response envelope, and classifies failures.
type BackendAdapter interface {
	// RecordLogin notifies the backend of a login. The returned user,
	// when non-nil, is the backend's authoritative account record.
	RecordLogin(ctx context.Context, req models.RecordLoginRequest) (*models.User, error)

	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	CreateCategory(ctx context.Context, userID int64, name string) (int64, error)
	DeleteCategory(ctx context.Context, userID, categoryID int64) error

	// ListImages fetches images filtered by category id using the
	// filter sentinels (-1 all, 0 uncategorised).
	ListImages(ctx context.Context, userID, categoryID int64) ([]models.Image, error)
	AddImageLink(ctx context.Context, userID, categoryID int64, imageURL string) error
	// AddImageFile uploads raw image bytes as a multipart form with the
	// fields userId, categoryId and image.
	AddImageFile(ctx context.Context, userID, categoryID int64, fileName string, data []byte) error
	DeleteImage(ctx context.Context, userID, imageID int64) error

	ListTags(ctx context.Context, userID, imageID int64) ([]models.Tag, error)
	CreateTag(ctx context.Context, userID, imageID int64, tag string) error
	DeleteTag(ctx context.Context, userID, tagID int64) error
}

// UserInfoFetcher retrieves the OAuth profile for a bearer access token.
type UserInfoFetcher interface {
	UserInfo(ctx context.Context, accessToken string) (models.GoogleUserInfo, error)
}
