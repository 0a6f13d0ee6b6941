package service

import (
	"github.com/gifcamp/gifcamp/internal/adapter"
	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/internal/store"
)

type ClientServices struct {
	SessionService  SessionService
	CategoryService CategoryService
	ImageService    ImageService
	TagService      TagService
}

func NewClientServices(localStore *store.ClientStorages, backend adapter.BackendAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService:  NewSessionService(localStore.Sessions, backend, log),
		CategoryService: NewCategoryService(backend, log),
		ImageService:    NewImageService(backend, log),
		TagService:      NewTagService(backend, log),
	}
}
