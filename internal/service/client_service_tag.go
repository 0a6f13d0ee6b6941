package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gifcamp/gifcamp/internal/adapter"
	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/models"
)

type tagService struct {
	adapter adapter.BackendAdapter
	logger  *logger.Logger
}

func NewTagService(backend adapter.BackendAdapter, log *logger.Logger) TagService {
	return &tagService{adapter: backend, logger: log}
}

func (t *tagService) List(ctx context.Context, userID, imageID int64) ([]models.Tag, error) {
	tags, err := t.adapter.ListTags(ctx, userID, imageID)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (t *tagService) Create(ctx context.Context, userID, imageID int64, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ErrEmptyTag
	}

	if err := t.adapter.CreateTag(ctx, userID, imageID, tag); err != nil {
		return fmt.Errorf("create tag: %w", err)
	}
	return nil
}

func (t *tagService) Delete(ctx context.Context, userID, tagID int64) error {
	if err := t.adapter.DeleteTag(ctx, userID, tagID); err != nil {
		return fmt.Errorf("delete tag %d: %w", tagID, err)
	}
	return nil
}
