// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GifCamp Authors

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/internal/mock"
	"github.com/gifcamp/gifcamp/internal/service"
	"github.com/gifcamp/gifcamp/models"
)

func testSession() models.Session {
	return models.Session{
		User:      models.User{ID: 7, Name: "Alice", Email: "alice@example.com", Method: "google"},
		AuthToken: "tok",
	}
}

// newTestAppModel wires real domain services over a mocked backend, so
// commands returned by Update can be executed inline.
func newTestAppModel(t *testing.T, ctrl *gomock.Controller) (appModel, *mock.MockBackendAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	log := logger.Nop()

	services := &service.ClientServices{
		CategoryService: service.NewCategoryService(mockAdapter, log),
		ImageService:    service.NewImageService(mockAdapter, log),
		TagService:      service.NewTagService(mockAdapter, log),
	}

	return newAppModel(context.Background(), services, nil, testSession()), mockAdapter
}

func pressKey(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(appModel)
	require.True(t, ok)
	return next, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ── category filter ─────────────────────────────────────────────────────────

func TestBrowseSelection_MapsFilters(t *testing.T) {
	m := newBrowseModel()
	m.categories = []models.Category{{ID: 5, Name: "cats"}, {ID: 9, Name: "dogs"}}

	m.catIdx = 0
	assert.Equal(t, "", m.selection())

	m.catIdx = 1
	assert.Equal(t, models.SelectionUncategorised, m.selection())

	m.catIdx = 2
	assert.Equal(t, "5", m.selection())

	m.catIdx = 3
	assert.Equal(t, "9", m.selection())
}

func TestBrowse_FilterMoveTriggersReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter := newTestAppModel(t, ctrl)
	m.browse.pane = paneCategories
	m.browse.categories = []models.Category{{ID: 5, Name: "cats"}}
	m.browse.loading = false
	genBefore := m.browse.imagesGen

	mockAdapter.EXPECT().ListImages(gomock.Any(), int64(7), models.FilterUncategorised).
		Return([]models.Image{{ID: 1, URL: "https://img/1.gif"}}, nil)

	m, cmd := pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.browse.catIdx)
	assert.Equal(t, genBefore+1, m.browse.imagesGen)
	assert.True(t, m.browse.loading)

	msg := execBatchForImages(t, cmd)
	m, _ = pressKey(t, m, msg)
	assert.False(t, m.browse.loading)
	require.Len(t, m.browse.images, 1)
}

// execBatchForImages runs the commands inside a batch and returns the
// imagesLoadedMsg one of them produced.
func execBatchForImages(t *testing.T, cmd tea.Cmd) imagesLoadedMsg {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case imagesLoadedMsg:
			return msg
		case tea.BatchMsg:
			for _, inner := range msg {
				queue = append(queue, inner)
			}
		}
	}
	t.Fatal("no imagesLoadedMsg produced")
	return imagesLoadedMsg{}
}

func TestImagesLoaded_StaleGenerationIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestAppModel(t, ctrl)
	m.browse.imagesGen = 2
	m.browse.images = []models.Image{{ID: 1, URL: "https://img/current.gif"}}
	m.browse.loading = true

	m, _ = pressKey(t, m, imagesLoadedMsg{gen: 1, images: []models.Image{{ID: 9, URL: "https://img/stale.gif"}}})

	require.Len(t, m.browse.images, 1)
	assert.Equal(t, int64(1), m.browse.images[0].ID)
	assert.True(t, m.browse.loading, "stale answer must not end the current fetch")

	m, _ = pressKey(t, m, imagesLoadedMsg{gen: 2, images: []models.Image{{ID: 3, URL: "https://img/fresh.gif"}}})
	assert.False(t, m.browse.loading)
	assert.Equal(t, int64(3), m.browse.images[0].ID)
}

func TestCategoriesLoaded_StaleGenerationIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestAppModel(t, ctrl)
	m.browse.categoriesGen = 3
	m.browse.categories = []models.Category{{ID: 5, Name: "cats"}}

	m, _ = pressKey(t, m, categoriesLoadedMsg{gen: 2, categories: []models.Category{{ID: 1, Name: "stale"}}})

	require.Len(t, m.browse.categories, 1)
	assert.Equal(t, "cats", m.browse.categories[0].Name)
}

func TestImagesLoaded_ErrorShownInline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestAppModel(t, ctrl)
	m.browse.imagesGen = 1
	m.browse.loading = true

	m, _ = pressKey(t, m, imagesLoadedMsg{gen: 1, err: errors.New("backend down")})

	assert.False(t, m.showError, "list errors stay inline")
	assert.Contains(t, m.browse.status, "backend down")
}

// ── lightbox delete confirmation ────────────────────────────────────────────

func TestLightbox_DeleteNeedsConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter := newTestAppModel(t, ctrl)
	m.currentScreen = screenLightbox
	m.lightbox = newLightboxModel(models.Image{ID: 9, URL: "https://img/9.gif"})

	m, cmd := pressKey(t, m, runeKey('d'))
	require.NotNil(t, cmd)
	assert.True(t, m.lightbox.deleteArmed)
	assert.Equal(t, 1, m.lightbox.armGen)

	mockAdapter.EXPECT().DeleteImage(gomock.Any(), int64(7), int64(9)).Return(nil)

	m, cmd = pressKey(t, m, runeKey('d'))
	require.NotNil(t, cmd)

	m, _ = pressKey(t, m, cmd())
	assert.Equal(t, screenBrowse, m.currentScreen)
	assert.False(t, m.lightbox.deleteArmed)
}

func TestLightbox_DeleteRevertsAfterWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestAppModel(t, ctrl)
	m.currentScreen = screenLightbox
	m.lightbox = newLightboxModel(models.Image{ID: 9, URL: "https://img/9.gif"})

	m, _ = pressKey(t, m, runeKey('d'))
	require.True(t, m.lightbox.deleteArmed)

	m, _ = pressKey(t, m, deleteRevertMsg{arm: m.lightbox.armGen})
	assert.False(t, m.lightbox.deleteArmed)
}

func TestLightbox_StaleRevertTimerIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestAppModel(t, ctrl)
	m.currentScreen = screenLightbox
	m.lightbox = newLightboxModel(models.Image{ID: 9, URL: "https://img/9.gif"})

	// Arm, disarm with esc-like revert, then arm again: the first
	// timer's message carries the old arm generation.
	m, _ = pressKey(t, m, runeKey('d'))
	firstArm := m.lightbox.armGen
	m, _ = pressKey(t, m, deleteRevertMsg{arm: firstArm})
	m, _ = pressKey(t, m, runeKey('d'))

	m, _ = pressKey(t, m, deleteRevertMsg{arm: firstArm})
	assert.True(t, m.lightbox.deleteArmed, "an expired timer must not disarm a newer confirmation")
}

func TestLightbox_EscLeavesAndDisarms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestAppModel(t, ctrl)
	m.currentScreen = screenLightbox
	m.lightbox = newLightboxModel(models.Image{ID: 9, URL: "https://img/9.gif"})

	m, _ = pressKey(t, m, runeKey('d'))
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenBrowse, m.currentScreen)
	assert.False(t, m.lightbox.deleteArmed)
}

// ── copy status ─────────────────────────────────────────────────────────────

func TestCopiedStatusSetAndCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestAppModel(t, ctrl)
	m.currentScreen = screenLightbox
	m.lightbox = newLightboxModel(models.Image{ID: 9, URL: "https://img/9.gif"})

	m, cmd := pressKey(t, m, copiedMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, "Link copied!", m.lightbox.status)

	m, _ = pressKey(t, m, clearStatusMsg{})
	assert.Empty(t, m.lightbox.status)
}

// ── auth flow ───────────────────────────────────────────────────────────────

func TestAuthDone_ErrorReturnsToWelcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestAppModel(t, ctrl)
	m.currentScreen = screenLogin

	m, _ = pressKey(t, m, authDoneMsg{err: errors.New("exchange failed")})

	assert.Equal(t, screenWelcome, m.currentScreen)
	assert.True(t, m.showError)
}

func TestAuthDone_CancelledStaysQuiet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestAppModel(t, ctrl)
	m.currentScreen = screenLogin

	m, _ = pressKey(t, m, authDoneMsg{err: context.Canceled})

	assert.Equal(t, screenWelcome, m.currentScreen)
	assert.False(t, m.showError)
}

func TestAuthDone_SuccessEntersBrowse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter := newTestAppModel(t, ctrl)
	m.services.SessionService = service.NewSessionService(mock.NewMockKVRepository(ctrl), mockAdapter, logger.Nop())
	m.currentScreen = screenLogin

	m, cmd := pressKey(t, m, authDoneMsg{session: testSession()})

	require.NotNil(t, cmd)
	assert.Equal(t, screenBrowse, m.currentScreen)
	assert.Equal(t, "Alice", m.session.User.Name)
}

func TestLoginRecorded_FailureShowsStatusOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestAppModel(t, ctrl)

	m, cmd := pressKey(t, m, loginRecordedMsg{result: service.LoginRecordResult{Err: errors.New("backend down")}})

	require.NotNil(t, cmd)
	assert.Contains(t, m.browse.status, "not recorded")
	assert.True(t, m.session.Valid(), "a failed notification must not log the user out")
}

func TestLoginRecorded_MergedUserApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter := newTestAppModel(t, ctrl)
	merged := models.User{ID: 42, Name: "Alice Smith", Email: "alice@example.com", Method: "google"}

	mockAdapter.EXPECT().ListCategories(gomock.Any(), int64(42)).Return(nil, nil).AnyTimes()
	mockAdapter.EXPECT().ListImages(gomock.Any(), int64(42), gomock.Any()).Return(nil, nil).AnyTimes()

	m, _ = pressKey(t, m, loginRecordedMsg{result: service.LoginRecordResult{User: &merged}})

	assert.Equal(t, int64(42), m.session.User.ID)
	assert.Contains(t, m.browse.status, "Alice Smith")
}

// ── logout ──────────────────────────────────────────────────────────────────

func TestBrowse_LogoutKeyQuitsWithLogoutFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestAppModel(t, ctrl)

	m, cmd := pressKey(t, m, runeKey('l'))

	require.NotNil(t, cmd)
	assert.True(t, m.logout)
}
