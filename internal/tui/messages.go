package tui

import (
	"github.com/gifcamp/gifcamp/internal/service"
	"github.com/gifcamp/gifcamp/models"
)

type authURLMsg struct {
	url string
}

type authDoneMsg struct {
	session models.Session
	err     error
}

type loginRecordedMsg struct {
	result service.LoginRecordResult
}

// List messages carry the generation of the fetch that produced them.
// Results from a superseded fetch are dropped instead of overwriting a
// newer list.
type categoriesLoadedMsg struct {
	gen        int
	categories []models.Category
	err        error
}

type imagesLoadedMsg struct {
	gen    int
	images []models.Image
	err    error
}

type tagsLoadedMsg struct {
	gen  int
	tags []models.Tag
	err  error
}

type categorySavedMsg struct {
	err error
}

type categoryDeletedMsg struct {
	err error
}

type imageSavedMsg struct {
	err error
}

type imageDeletedMsg struct {
	err error
}

type tagSavedMsg struct {
	err error
}

type tagDeletedMsg struct {
	err error
}

// refreshMsg asks for a full reload of categories and images.
type refreshMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

// deleteRevertMsg disarms a pending delete confirmation. arm identifies
// which arming the timer belongs to, so an expired timer cannot disarm a
// later one.
type deleteRevertMsg struct {
	arm int
}
