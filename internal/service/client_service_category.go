package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gifcamp/gifcamp/internal/adapter"
	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/models"
)

type categoryService struct {
	adapter adapter.BackendAdapter
	logger  *logger.Logger
}

func NewCategoryService(backend adapter.BackendAdapter, log *logger.Logger) CategoryService {
	return &categoryService{adapter: backend, logger: log}
}

func (c *categoryService) List(ctx context.Context, userID int64) ([]models.Category, error) {
	categories, err := c.adapter.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *categoryService) Create(ctx context.Context, userID int64, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyCategoryName
	}

	id, err := c.adapter.CreateCategory(ctx, userID, name)
	if err != nil {
		return 0, err
	}

	c.logger.Debug().Int64("categoryId", id).Str("name", name).Msg("category created")
	return id, nil
}

func (c *categoryService) Delete(ctx context.Context, userID, categoryID int64) error {
	if err := c.adapter.DeleteCategory(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("delete category %d: %w", categoryID, err)
	}
	return nil
}
