package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/internal/mock"
	"github.com/gifcamp/gifcamp/models"
)

// gifHeader is a minimal valid GIF87a payload that DetectContentType
// recognises as image/gif.
var gifHeader = []byte("GIF87a\x01\x00\x01\x00\x80\x00\x00")

func TestImageService_List_TranslatesSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	svc := NewImageService(mockAdapter, logger.Nop())
	ctx := context.Background()

	tests := []struct {
		name      string
		selection string
		want      int64
	}{
		{name: "all categories", selection: "", want: models.FilterAll},
		{name: "uncategorised", selection: "uncategorised", want: models.FilterUncategorised},
		{name: "specific category", selection: "12", want: 12},
		{name: "garbage falls back to all", selection: "12abc", want: models.FilterAll},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAdapter.EXPECT().ListImages(gomock.Any(), int64(7), tt.want).
				Return([]models.Image{}, nil)

			_, err := svc.List(ctx, 7, tt.selection)
			assert.NoError(t, err)
		})
	}
}

func TestImageService_AddLink_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockAdapter.EXPECT().AddImageLink(gomock.Any(), int64(7), int64(2), "https://img/cat.gif").Return(nil)

	svc := NewImageService(mockAdapter, logger.Nop())

	assert.NoError(t, svc.AddLink(context.Background(), 7, 2, " https://img/cat.gif "))
}

func TestImageService_AddLink_RejectsBadURLs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewImageService(mock.NewMockBackendAdapter(ctrl), logger.Nop())
	ctx := context.Background()

	for _, bad := range []string{"", "not a url", "ftp://host/file.gif", "/relative/path.gif", "https://"} {
		assert.ErrorIs(t, svc.AddLink(ctx, 7, 2, bad), ErrInvalidImageURL, "url %q", bad)
	}
}

func TestImageService_AddFromFile_UploadsImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "cat.gif")
	require.NoError(t, os.WriteFile(path, gifHeader, 0o600))

	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockAdapter.EXPECT().AddImageFile(gomock.Any(), int64(7), int64(2), "cat.gif", gifHeader).Return(nil)

	svc := NewImageService(mockAdapter, logger.Nop())

	assert.NoError(t, svc.AddFromFile(context.Background(), 7, 2, path))
}

func TestImageService_AddFromFile_RejectsNonImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text, no pixels here"), 0o600))

	svc := NewImageService(mock.NewMockBackendAdapter(ctrl), logger.Nop())

	assert.ErrorIs(t, svc.AddFromFile(context.Background(), 7, 2, path), ErrNotAnImage)
}

func TestImageService_AddFromFile_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewImageService(mock.NewMockBackendAdapter(ctrl), logger.Nop())

	assert.Error(t, svc.AddFromFile(context.Background(), 7, 2, filepath.Join(t.TempDir(), "missing.gif")))
}

func TestImageService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockAdapter.EXPECT().DeleteImage(gomock.Any(), int64(7), int64(9)).Return(nil)

	svc := NewImageService(mockAdapter, logger.Nop())

	assert.NoError(t, svc.Delete(context.Background(), 7, 9))
}
