package service

import (
	"context"

	"github.com/gifcamp/gifcamp/models"
)

// LoginRecordResult is the outcome of the detached login notification.
// User is the merged account record when the backend answered, nil when
// recording failed; Err carries the failure in that case.
type LoginRecordResult struct {
	User *models.User
	Err  error
}

// SessionService owns the client's authentication state. State changes
// follow a commit-then-notify order: the session is persisted locally
// first, then the backend is told about it in the background. A backend
// failure never rolls the local session back.
type SessionService interface {
	// Restore loads the persisted session from local storage. Missing
	// keys yield the anonymous session; a corrupted user record clears
	// both stored keys and also yields the anonymous session. Restore
	// never fails, storage problems are logged and treated as absence.
	// After Restore returns, Loading reports false.
	Restore(ctx context.Context) models.Session

	// Login commits the freshly authenticated user and token to local
	// storage and, only after the commit succeeded, dispatches the
	// fire-and-forget login notification to the backend. The returned
	// session reflects the local commit; the backend's answer arrives
	// later on the LoginRecorded channel.
	Login(ctx context.Context, info models.GoogleUserInfo, token string) (models.Session, error)

	// Logout clears the persisted session and returns to the anonymous
	// state. It performs no network calls and is safe to call when
	// already anonymous.
	Logout(ctx context.Context) error

	// Current returns the session as of the last state change.
	Current() models.Session

	// Loading reports true until the first Restore completes.
	Loading() bool

	// LoginRecorded delivers the outcome of the most recent login
	// notification. Results for logins superseded by a newer login or a
	// logout are discarded, not delivered.
	LoginRecorded() <-chan LoginRecordResult

	// Close stops the background notification worker and waits for it.
	Close()
}

// CategoryService manages the user's image categories on the backend.
type CategoryService interface {
	List(ctx context.Context, userID int64) ([]models.Category, error)

	// Create adds a category and returns its backend-assigned id. The
	// name is trimmed; an empty result is rejected with
	// ErrEmptyCategoryName.
	Create(ctx context.Context, userID int64, name string) (int64, error)

	Delete(ctx context.Context, userID, categoryID int64) error
}

// ImageService manages bookmarked images. List translates the UI's
// category selection string into the backend's numeric filter.
type ImageService interface {
	// List fetches images for the given selection: "" means all
	// categories, "uncategorised" means images without a category, any
	// numeric string selects that category id.
	List(ctx context.Context, userID int64, selection string) ([]models.Image, error)

	// AddLink bookmarks an image by URL. Only absolute http(s) URLs are
	// accepted.
	AddLink(ctx context.Context, userID, categoryID int64, imageURL string) error

	// AddFromFile uploads a local file. The content is sniffed and
	// rejected with ErrNotAnImage when it is not an image format.
	AddFromFile(ctx context.Context, userID, categoryID int64, path string) error

	Delete(ctx context.Context, userID, imageID int64) error
}

// TagService manages free-form tags attached to a single image.
type TagService interface {
	List(ctx context.Context, userID, imageID int64) ([]models.Tag, error)

	// Create attaches a tag to an image. The tag is trimmed; an empty
	// result is rejected with ErrEmptyTag.
	Create(ctx context.Context, userID, imageID int64, tag string) error

	Delete(ctx context.Context, userID, tagID int64) error
}
