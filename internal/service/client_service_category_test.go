package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/internal/mock"
	"github.com/gifcamp/gifcamp/models"
)

func TestCategoryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockAdapter.EXPECT().ListCategories(gomock.Any(), int64(7)).
		Return([]models.Category{{ID: 1, Name: "cats"}}, nil)

	svc := NewCategoryService(mockAdapter, logger.Nop())
	categories, err := svc.List(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "cats", categories[0].Name)
}

func TestCategoryService_Create_TrimsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockAdapter.EXPECT().CreateCategory(gomock.Any(), int64(7), "memes").Return(int64(3), nil)

	svc := NewCategoryService(mockAdapter, logger.Nop())
	id, err := svc.Create(context.Background(), 7, "  memes  ")

	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestCategoryService_Create_EmptyNameRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewCategoryService(mock.NewMockBackendAdapter(ctrl), logger.Nop())
	_, err := svc.Create(context.Background(), 7, "   ")

	assert.ErrorIs(t, err, ErrEmptyCategoryName)
}

func TestCategoryService_Delete_WrapsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backendErr := errors.New("not yours")
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockAdapter.EXPECT().DeleteCategory(gomock.Any(), int64(7), int64(3)).Return(backendErr)

	svc := NewCategoryService(mockAdapter, logger.Nop())
	err := svc.Delete(context.Background(), 7, 3)

	assert.ErrorIs(t, err, backendErr)
}
