// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GifCamp Authors

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gifcamp/gifcamp/internal/service"
	"github.com/gifcamp/gifcamp/models"
)

// deleteConfirmWindow is how long an armed image delete stays armed
// before it reverts to the safe state.
const deleteConfirmWindow = 3 * time.Second

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenBrowse
	screenLightbox
	screenCategoryForm
	screenImageForm
	screenTagForm
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	auth     Authenticator

	currentScreen screen
	welcome       welcomeModel
	login         loginModel
	browse        browseModel
	lightbox      lightboxModel
	categoryForm  categoryFormModel
	imageForm     imageFormModel
	tagForm       tagFormModel

	session     models.Session
	loginCancel context.CancelFunc

	showError    bool
	errorOverlay errorOverlayModel

	showConfirm           bool
	confirm               confirmModel
	pendingDeleteCategory int64

	logout bool
	err    error
}

func newAppModel(ctx context.Context, services *service.ClientServices, auth Authenticator, session models.Session) appModel {
	m := appModel{
		ctx:      ctx,
		services: services,
		auth:     auth,
		session:  session,

		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		browse:        newBrowseModel(),
	}
	if session.Valid() {
		m.currentScreen = screenBrowse
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenBrowse {
		// The generation counters live on the model, so the initial
		// fetch goes through Update like every other one.
		return func() tea.Msg { return refreshMsg{} }
	}
	return nil
}

func (m appModel) userID() int64 {
	return m.session.User.ID
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDeleteCategory == 0 {
					return m, nil
				}
				return m, m.cmdDeleteCategory(m.pendingDeleteCategory)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDeleteCategory = 0
			}
			return m, nil
		}

	case authURLMsg:
		m.login.authURL = msg.url
		return m, nil

	case authDoneMsg:
		if m.currentScreen != screenLogin {
			return m, nil
		}
		m.loginCancel = nil
		if msg.err != nil {
			m.currentScreen = screenWelcome
			if !errors.Is(msg.err, context.Canceled) {
				m.showErrorf(msg.err.Error())
			}
			return m, nil
		}
		m.session = msg.session
		m.currentScreen = screenBrowse
		m.browse = newBrowseModel()
		return m, tea.Batch(
			m.browse.spinner.Tick,
			m.cmdLoadCategories(),
			m.reloadImagesCmd(),
			m.cmdAwaitLoginRecorded(),
		)

	case refreshMsg:
		return m, tea.Batch(m.browse.spinner.Tick, m.cmdLoadCategories(), m.reloadImagesCmd())

	case loginRecordedMsg:
		if msg.result.Err != nil {
			m.browse.status = "Offline, your login was not recorded."
			return m, cmdClearStatus()
		}
		if msg.result.User != nil {
			m.session.User = *msg.result.User
		}
		m.browse.status = "Signed in as " + m.session.User.Name
		return m, tea.Batch(m.cmdLoadCategories(), m.reloadImagesCmd(), cmdClearStatus())

	case categoriesLoadedMsg:
		if msg.gen != m.browse.categoriesGen {
			return m, nil
		}
		if msg.err != nil {
			m.browse.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.browse.categories = msg.categories
		m.browse.clampCatIdx()
		return m, nil

	case imagesLoadedMsg:
		if msg.gen != m.browse.imagesGen {
			return m, nil
		}
		m.browse.loading = false
		if msg.err != nil {
			m.browse.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.browse.images = msg.images
		m.browse.clampImageIdx()
		return m, nil

	case tagsLoadedMsg:
		if msg.gen != m.lightbox.tagsGen {
			return m, nil
		}
		m.lightbox.loadingTags = false
		if msg.err != nil {
			m.lightbox.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.lightbox.tags = msg.tags
		m.lightbox.clampTagIdx()
		return m, nil

	case categorySavedMsg:
		m.categoryForm.submitting = false
		if msg.err != nil {
			m.categoryForm.errText = msg.err.Error()
			return m, nil
		}
		m.currentScreen = screenBrowse
		return m, m.cmdLoadCategories()

	case categoryDeletedMsg:
		if msg.err != nil {
			m.browse.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.pendingDeleteCategory = 0
		m.browse.catIdx = 0
		return m, tea.Batch(m.cmdLoadCategories(), m.reloadImagesCmd())

	case imageSavedMsg:
		m.imageForm.submitting = false
		if msg.err != nil {
			m.imageForm.errText = msg.err.Error()
			return m, nil
		}
		m.currentScreen = screenBrowse
		return m, m.reloadImagesCmd()

	case imageDeletedMsg:
		m.lightbox.deleteArmed = false
		if msg.err != nil {
			m.lightbox.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.currentScreen = screenBrowse
		return m, m.reloadImagesCmd()

	case tagSavedMsg:
		m.tagForm.submitting = false
		if msg.err != nil {
			m.tagForm.errText = msg.err.Error()
			return m, nil
		}
		m.currentScreen = screenLightbox
		return m, m.reloadTagsCmd()

	case tagDeletedMsg:
		if msg.err != nil {
			m.lightbox.status = "Error: " + msg.err.Error()
			return m, nil
		}
		return m, m.reloadTagsCmd()

	case copiedMsg:
		status := "Link copied!"
		if msg.err != nil {
			status = "Error: " + msg.err.Error()
		}
		if m.currentScreen == screenLightbox {
			m.lightbox.status = status
		}
		m.browse.status = status
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.lightbox.status = ""
		m.browse.status = ""
		return m, nil

	case deleteRevertMsg:
		if m.lightbox.deleteArmed && msg.arm == m.lightbox.armGen {
			m.lightbox.deleteArmed = false
		}
		return m, nil

	case spinner.TickMsg:
		switch {
		case m.currentScreen == screenLogin:
			var cmd tea.Cmd
			m.login.spinner, cmd = m.login.spinner.Update(msg)
			return m, cmd
		case m.browse.loading:
			var cmd tea.Cmd
			m.browse.spinner, cmd = m.browse.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenBrowse:
		return m.updateBrowse(msg)
	case screenLightbox:
		return m.updateLightbox(msg)
	case screenCategoryForm:
		return m.updateCategoryForm(msg)
	case screenImageForm:
		return m.updateImageForm(msg)
	case screenTagForm:
		return m.updateTagForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenBrowse:
		body = m.browse.View(m.session.User.Name)
	case screenLightbox:
		body = m.lightbox.View()
	case screenCategoryForm:
		body = m.categoryForm.View()
	case screenImageForm:
		body = m.imageForm.View()
	case screenTagForm:
		body = m.tagForm.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// ── screen updates ──────────────────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.enter):
		return m.startLogin()
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) startLogin() (tea.Model, tea.Cmd) {
	m.login = newLoginModel()
	m.login.urls = make(chan string, 1)
	m.currentScreen = screenLogin

	loginCtx, cancel := context.WithCancel(m.ctx)
	m.loginCancel = cancel

	return m, tea.Batch(
		m.login.spinner.Tick,
		cmdWaitAuthURL(m.login.urls),
		m.cmdAuthorize(loginCtx, m.login.urls),
	)
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		if m.loginCancel != nil {
			m.loginCancel()
			m.loginCancel = nil
		}
		m.currentScreen = screenWelcome
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		if m.loginCancel != nil {
			m.loginCancel()
		}
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		if m.browse.pane == paneCategories {
			m.browse.pane = paneImages
		} else {
			m.browse.pane = paneCategories
		}

	case key.Matches(keyMsg, keys.up):
		if m.browse.pane == paneCategories {
			if m.browse.catIdx > 0 {
				m.browse.catIdx--
				return m, m.reloadImagesCmd()
			}
		} else if m.browse.imgIdx > 0 {
			m.browse.imgIdx--
		}

	case key.Matches(keyMsg, keys.down):
		if m.browse.pane == paneCategories {
			if m.browse.catIdx < m.browse.filterCount()-1 {
				m.browse.catIdx++
				return m, m.reloadImagesCmd()
			}
		} else if m.browse.imgIdx < len(m.browse.images)-1 {
			m.browse.imgIdx++
		}

	case key.Matches(keyMsg, keys.enter):
		if m.browse.pane == paneCategories {
			m.browse.pane = paneImages
			return m, nil
		}
		img, ok := m.browse.currentImage()
		if !ok {
			return m, nil
		}
		m.lightbox = newLightboxModel(img)
		m.currentScreen = screenLightbox
		return m, m.reloadTagsCmd()

	case key.Matches(keyMsg, keys.addImage):
		category := "Uncategorised"
		if cat, ok := m.browse.selectedCategory(); ok {
			category = cat.Name
		}
		m.imageForm = newImageFormModel(category)
		m.currentScreen = screenImageForm

	case key.Matches(keyMsg, keys.newCategory):
		m.categoryForm = newCategoryFormModel()
		m.currentScreen = screenCategoryForm

	case key.Matches(keyMsg, keys.delete):
		cat, ok := m.browse.selectedCategory()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = cat.Name
		m.pendingDeleteCategory = cat.ID

	case key.Matches(keyMsg, keys.refresh):
		return m, tea.Batch(m.cmdLoadCategories(), m.reloadImagesCmd())

	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateLightbox(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.lightbox.deleteArmed = false
		m.currentScreen = screenBrowse
		return m, nil

	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.lightbox.image.URL)

	case key.Matches(keyMsg, keys.delete):
		if !m.lightbox.deleteArmed {
			m.lightbox.deleteArmed = true
			m.lightbox.armGen++
			return m, cmdDeleteRevert(m.lightbox.armGen)
		}
		return m, m.cmdDeleteImage(m.lightbox.image.ID)

	case key.Matches(keyMsg, keys.addTag):
		m.tagForm = newTagFormModel()
		m.currentScreen = screenTagForm

	case key.Matches(keyMsg, keys.left):
		if m.lightbox.tagIdx > 0 {
			m.lightbox.tagIdx--
		}

	case key.Matches(keyMsg, keys.right):
		if m.lightbox.tagIdx < len(m.lightbox.tags)-1 {
			m.lightbox.tagIdx++
		}

	case key.Matches(keyMsg, keys.deleteTag):
		tag, ok := m.lightbox.currentTag()
		if !ok {
			return m, nil
		}
		return m, m.cmdDeleteTag(tag.ID)

	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateCategoryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenBrowse
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.categoryForm.submitting {
				return m, nil
			}
			m.categoryForm.submitting = true
			m.categoryForm.errText = ""
			return m, m.cmdCreateCategory(m.categoryForm.input.Value())
		}
	}

	var cmd tea.Cmd
	m.categoryForm.input, cmd = m.categoryForm.input.Update(msg)
	return m, cmd
}

func (m appModel) updateImageForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenBrowse
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.imageForm = focusNextImageForm(m.imageForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.imageForm.submitting {
				return m, nil
			}
			url, path := m.imageForm.url(), m.imageForm.path()
			if url == "" && path == "" {
				m.imageForm.errText = "Enter a URL or a file path."
				return m, nil
			}
			m.imageForm.submitting = true
			m.imageForm.errText = ""
			if url != "" {
				return m, m.cmdAddImageLink(m.browse.selectedCategoryID(), url)
			}
			return m, m.cmdAddImageFile(m.browse.selectedCategoryID(), path)
		}
	}

	var cmd tea.Cmd
	m.imageForm.inputs[m.imageForm.focus], cmd = m.imageForm.inputs[m.imageForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateTagForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenLightbox
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.tagForm.submitting {
				return m, nil
			}
			m.tagForm.submitting = true
			m.tagForm.errText = ""
			return m, m.cmdCreateTag(m.lightbox.image.ID, m.tagForm.input.Value())
		}
	}

	var cmd tea.Cmd
	m.tagForm.input, cmd = m.tagForm.input.Update(msg)
	return m, cmd
}

// ── commands ────────────────────────────────────────────────────────────────

func (m appModel) cmdAuthorize(ctx context.Context, urls chan string) tea.Cmd {
	auth := m.auth
	sessions := m.services.SessionService
	return func() tea.Msg {
		defer close(urls)

		info, token, err := auth.Authorize(ctx, func(u string) {
			select {
			case urls <- u:
			default:
			}
		})
		if err != nil {
			return authDoneMsg{err: err}
		}

		session, err := sessions.Login(ctx, info, token)
		return authDoneMsg{session: session, err: err}
	}
}

func cmdWaitAuthURL(urls chan string) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-urls
		if !ok {
			return nil
		}
		return authURLMsg{url: u}
	}
}

func (m appModel) cmdAwaitLoginRecorded() tea.Cmd {
	sessions := m.services.SessionService
	return func() tea.Msg {
		return loginRecordedMsg{result: <-sessions.LoginRecorded()}
	}
}

// reloadImagesCmd starts a fresh image fetch for the highlighted filter
// and bumps the generation so slower in-flight fetches are ignored.
func (m *appModel) reloadImagesCmd() tea.Cmd {
	m.browse.imagesGen++
	m.browse.loading = true

	gen := m.browse.imagesGen
	selection := m.browse.selection()
	ctx := m.ctx
	svc := m.services.ImageService
	userID := m.userID()
	return tea.Batch(m.browse.spinner.Tick, func() tea.Msg {
		images, err := svc.List(ctx, userID, selection)
		return imagesLoadedMsg{gen: gen, images: images, err: err}
	})
}

func (m *appModel) cmdLoadCategories() tea.Cmd {
	m.browse.categoriesGen++

	gen := m.browse.categoriesGen
	ctx := m.ctx
	svc := m.services.CategoryService
	userID := m.userID()
	return func() tea.Msg {
		categories, err := svc.List(ctx, userID)
		return categoriesLoadedMsg{gen: gen, categories: categories, err: err}
	}
}

func (m *appModel) reloadTagsCmd() tea.Cmd {
	m.lightbox.tagsGen++
	m.lightbox.loadingTags = true

	gen := m.lightbox.tagsGen
	ctx := m.ctx
	svc := m.services.TagService
	userID := m.userID()
	imageID := m.lightbox.image.ID
	return func() tea.Msg {
		tags, err := svc.List(ctx, userID, imageID)
		return tagsLoadedMsg{gen: gen, tags: tags, err: err}
	}
}

func (m appModel) cmdCreateCategory(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CategoryService
	userID := m.userID()
	return func() tea.Msg {
		_, err := svc.Create(ctx, userID, name)
		return categorySavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteCategory(categoryID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CategoryService
	userID := m.userID()
	return func() tea.Msg {
		err := svc.Delete(ctx, userID, categoryID)
		return categoryDeletedMsg{err: err}
	}
}

func (m appModel) cmdAddImageLink(categoryID int64, imageURL string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ImageService
	userID := m.userID()
	return func() tea.Msg {
		err := svc.AddLink(ctx, userID, categoryID, imageURL)
		return imageSavedMsg{err: err}
	}
}

func (m appModel) cmdAddImageFile(categoryID int64, path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ImageService
	userID := m.userID()
	return func() tea.Msg {
		err := svc.AddFromFile(ctx, userID, categoryID, path)
		return imageSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteImage(imageID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ImageService
	userID := m.userID()
	return func() tea.Msg {
		err := svc.Delete(ctx, userID, imageID)
		return imageDeletedMsg{err: err}
	}
}

func (m appModel) cmdCreateTag(imageID int64, tag string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TagService
	userID := m.userID()
	return func() tea.Msg {
		err := svc.Create(ctx, userID, imageID, tag)
		return tagSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteTag(tagID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TagService
	userID := m.userID()
	return func() tea.Msg {
		err := svc.Delete(ctx, userID, tagID)
		return tagDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdDeleteRevert(arm int) tea.Cmd {
	return tea.Tick(deleteConfirmWindow, func(time.Time) tea.Msg {
		return deleteRevertMsg{arm: arm}
	})
}
