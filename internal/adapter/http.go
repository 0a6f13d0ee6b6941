package adapter

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/gifcamp/gifcamp/internal/config"
	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/internal/utils"
	"github.com/gifcamp/gifcamp/models"
)

// httpBackendAdapter talks to the GifCamp backend over plain HTTP POST
// with JSON bodies (multipart for the file upload). Endpoints are full
// URLs configured one-per-feature, so the resty client carries no base
// URL.
type httpBackendAdapter struct {
	client    *resty.Client
	endpoints config.Endpoints
	ids       *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewHTTPBackendAdapter constructs a [BackendAdapter] from the endpoint
// configuration. Endpoints missing from cfg disable their feature: the
// corresponding method returns [ErrFeatureNotConfigured] and a warning is
// logged once here at startup.
func NewHTTPBackendAdapter(endpoints config.Endpoints, app config.ClientApp, log *logger.Logger) BackendAdapter {
	cli := resty.New().SetTimeout(app.RequestTimeout)

	warnMissing(log, map[string]string{
		"record-login":      endpoints.RecordLogin,
		"categories-all":    endpoints.CategoriesAll,
		"categories-create": endpoints.CategoriesCreate,
		"categories-delete": endpoints.CategoriesDelete,
		"images-all":        endpoints.ImagesAll,
		"images-add-link":   endpoints.ImagesAddLink,
		"images-add-blob":   endpoints.ImagesAddBlob,
		"images-delete":     endpoints.ImagesDelete,
		"tags-all":          endpoints.TagsAll,
		"tags-create":       endpoints.TagsCreate,
		"tags-delete":       endpoints.TagsDelete,
	})

	return &httpBackendAdapter{
		client:    cli,
		endpoints: endpoints,
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
	}
}

func warnMissing(log *logger.Logger, features map[string]string) {
	for feature, url := range features {
		if url == "" {
			log.Warn().Str("feature", feature).Msg("endpoint not configured, feature disabled")
		}
	}
}

func (h *httpBackendAdapter) RecordLogin(ctx context.Context, req models.RecordLoginRequest) (*models.User, error) {
	if h.endpoints.RecordLogin == "" {
		return nil, notConfigured("record-login")
	}

	var out models.RecordLoginResponse
	if err := h.postJSON(ctx, h.endpoints.RecordLogin, req, &out); err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}

	return out.User, nil
}

func (h *httpBackendAdapter) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	if h.endpoints.CategoriesAll == "" {
		return nil, notConfigured("categories-all")
	}

	var out models.CategoriesResponse
	req := models.ListCategoriesRequest{UserID: userID}
	if err := h.postJSON(ctx, h.endpoints.CategoriesAll, req, &out); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return out.Categories, nil
}

func (h *httpBackendAdapter) CreateCategory(ctx context.Context, userID int64, name string) (int64, error) {
	if h.endpoints.CategoriesCreate == "" {
		return 0, notConfigured("categories-create")
	}

	var out models.CreateCategoryResponse
	req := models.CreateCategoryRequest{UserID: userID, Name: name}
	if err := h.postJSON(ctx, h.endpoints.CategoriesCreate, req, &out); err != nil {
		return 0, fmt.Errorf("create category: %w", err)
	}

	return out.CategoryID, nil
}

func (h *httpBackendAdapter) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	if h.endpoints.CategoriesDelete == "" {
		return notConfigured("categories-delete")
	}

	var out models.StatusResponse
	req := models.DeleteCategoryRequest{UserID: userID, CategoryID: categoryID}
	if err := h.postJSON(ctx, h.endpoints.CategoriesDelete, req, &out); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	return nil
}

func (h *httpBackendAdapter) ListImages(ctx context.Context, userID, categoryID int64) ([]models.Image, error) {
	if h.endpoints.ImagesAll == "" {
		return nil, notConfigured("images-all")
	}

	var out models.ImagesResponse
	req := models.ListImagesRequest{UserID: userID, CategoryID: categoryID}
	if err := h.postJSON(ctx, h.endpoints.ImagesAll, req, &out); err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	return out.Images, nil
}

func (h *httpBackendAdapter) AddImageLink(ctx context.Context, userID, categoryID int64, imageURL string) error {
	if h.endpoints.ImagesAddLink == "" {
		return notConfigured("images-add-link")
	}

	var out models.StatusResponse
	req := models.AddImageLinkRequest{UserID: userID, CategoryID: categoryID, ImageURL: imageURL}
	if err := h.postJSON(ctx, h.endpoints.ImagesAddLink, req, &out); err != nil {
		return fmt.Errorf("add image link: %w", err)
	}

	return nil
}

func (h *httpBackendAdapter) AddImageFile(ctx context.Context, userID, categoryID int64, fileName string, data []byte) error {
	if h.endpoints.ImagesAddBlob == "" {
		return notConfigured("images-add-blob")
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", h.ids.Generate()).
		SetMultipartFormData(map[string]string{
			"userId":     strconv.FormatInt(userID, 10),
			"categoryId": strconv.FormatInt(categoryID, 10),
		}).
		SetFileReader("image", fileName, bytes.NewReader(data)).
		Post(h.endpoints.ImagesAddBlob)
	if err != nil {
		return fmt.Errorf("add image file request: %w", err)
	}

	var out models.StatusResponse
	if err = decodeResponse(resp, &out); err != nil {
		return fmt.Errorf("add image file: %w", err)
	}

	return nil
}

func (h *httpBackendAdapter) DeleteImage(ctx context.Context, userID, imageID int64) error {
	if h.endpoints.ImagesDelete == "" {
		return notConfigured("images-delete")
	}

	var out models.StatusResponse
	req := models.DeleteImageRequest{UserID: userID, ImageID: imageID}
	if err := h.postJSON(ctx, h.endpoints.ImagesDelete, req, &out); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}

	return nil
}

func (h *httpBackendAdapter) ListTags(ctx context.Context, userID, imageID int64) ([]models.Tag, error) {
	if h.endpoints.TagsAll == "" {
		return nil, notConfigured("tags-all")
	}

	var out models.TagsResponse
	req := models.ListTagsRequest{UserID: userID, ImageID: imageID}
	if err := h.postJSON(ctx, h.endpoints.TagsAll, req, &out); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return out.Tags, nil
}

func (h *httpBackendAdapter) CreateTag(ctx context.Context, userID, imageID int64, tag string) error {
	if h.endpoints.TagsCreate == "" {
		return notConfigured("tags-create")
	}

	var out models.StatusResponse
	req := models.CreateTagRequest{UserID: userID, ImageID: imageID, Tag: tag}
	if err := h.postJSON(ctx, h.endpoints.TagsCreate, req, &out); err != nil {
		return fmt.Errorf("create tag: %w", err)
	}

	return nil
}

func (h *httpBackendAdapter) DeleteTag(ctx context.Context, userID, tagID int64) error {
	if h.endpoints.TagsDelete == "" {
		return notConfigured("tags-delete")
	}

	var out models.StatusResponse
	req := models.DeleteTagRequest{UserID: userID, TagID: tagID}
	if err := h.postJSON(ctx, h.endpoints.TagsDelete, req, &out); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}

	return nil
}

// postJSON sends body as a JSON POST to url and decodes the shared
// envelope into out. Transport errors and classified backend errors are
// both returned as-is for the caller to wrap with its operation name.
func (h *httpBackendAdapter) postJSON(ctx context.Context, url string, body any, out envelopeHolder) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-Id", h.ids.Generate()).
		SetBody(body).
		Post(url)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}

	if err = decodeResponse(resp, out); err != nil {
		ev := h.logger.Warn().Str("url", url).Err(err)
		if be, ok := AsBackendError(err); ok {
			ev = ev.Int("status", be.Status)
		}
		ev.Msg("backend call failed")
		return err
	}

	return nil
}
