package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gifcamp/gifcamp/internal/adapter"
	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/models"
)

type imageService struct {
	adapter adapter.BackendAdapter
	logger  *logger.Logger
}

func NewImageService(backend adapter.BackendAdapter, log *logger.Logger) ImageService {
	return &imageService{adapter: backend, logger: log}
}

func (i *imageService) List(ctx context.Context, userID int64, selection string) ([]models.Image, error) {
	filter := models.CategoryFilterValue(selection)

	images, err := i.adapter.ListImages(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (i *imageService) AddLink(ctx context.Context, userID, categoryID int64, imageURL string) error {
	imageURL = strings.TrimSpace(imageURL)

	parsed, err := url.Parse(imageURL)
	if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return ErrInvalidImageURL
	}

	if err = i.adapter.AddImageLink(ctx, userID, categoryID, imageURL); err != nil {
		return fmt.Errorf("add image link: %w", err)
	}

	i.logger.Debug().Str("url", imageURL).Int64("categoryId", categoryID).Msg("image link added")
	return nil
}

func (i *imageService) AddFromFile(ctx context.Context, userID, categoryID int64, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image file: %w", err)
	}

	// DetectContentType looks at the first 512 bytes, enough to reject
	// anything that is not an image before the upload starts.
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return ErrNotAnImage
	}

	fileName := filepath.Base(path)
	if err = i.adapter.AddImageFile(ctx, userID, categoryID, fileName, data); err != nil {
		return fmt.Errorf("upload image file: %w", err)
	}

	i.logger.Debug().Str("file", fileName).Int64("categoryId", categoryID).Msg("image file uploaded")
	return nil
}

func (i *imageService) Delete(ctx context.Context, userID, imageID int64) error {
	if err := i.adapter.DeleteImage(ctx, userID, imageID); err != nil {
		return fmt.Errorf("delete image %d: %w", imageID, err)
	}
	return nil
}
