package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/gifcamp/gifcamp/models"
)

type browsePane int

const (
	paneCategories browsePane = iota
	paneImages
)

// browseModel is the main screen: category filters on the left, the
// image list on the right. catIdx 0 is the All filter, 1 is
// Uncategorised, higher indexes map into categories.
type browseModel struct {
	categories []models.Category
	catIdx     int
	images     []models.Image
	imgIdx     int

	pane    browsePane
	loading bool
	spinner spinner.Model
	status  string

	// imagesGen and categoriesGen tag outstanding fetches so late
	// answers to an old filter cannot clobber the current list.
	imagesGen     int
	categoriesGen int
}

func newBrowseModel() browseModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return browseModel{spinner: s, loading: true, pane: paneImages}
}

// selection returns the category filter for the highlighted entry in the
// form the image service expects.
func (m browseModel) selection() string {
	switch m.catIdx {
	case 0:
		return ""
	case 1:
		return models.SelectionUncategorised
	default:
		i := m.catIdx - 2
		if i < 0 || i >= len(m.categories) {
			return ""
		}
		return strconv.FormatInt(m.categories[i].ID, 10)
	}
}

func (m browseModel) selectedCategory() (models.Category, bool) {
	i := m.catIdx - 2
	if i < 0 || i >= len(m.categories) {
		return models.Category{}, false
	}
	return m.categories[i], true
}

// selectedCategoryID is the id new images are filed under: the
// highlighted category, or 0 for All and Uncategorised.
func (m browseModel) selectedCategoryID() int64 {
	if cat, ok := m.selectedCategory(); ok {
		return cat.ID
	}
	return 0
}

func (m browseModel) currentImage() (models.Image, bool) {
	if len(m.images) == 0 || m.imgIdx < 0 || m.imgIdx >= len(m.images) {
		return models.Image{}, false
	}
	return m.images[m.imgIdx], true
}

func (m browseModel) filterCount() int {
	return len(m.categories) + 2
}

func (m *browseModel) clampImageIdx() {
	if m.imgIdx >= len(m.images) {
		m.imgIdx = len(m.images) - 1
	}
	if m.imgIdx < 0 {
		m.imgIdx = 0
	}
}

func (m *browseModel) clampCatIdx() {
	if m.catIdx >= m.filterCount() {
		m.catIdx = m.filterCount() - 1
	}
	if m.catIdx < 0 {
		m.catIdx = 0
	}
}

func (m browseModel) categoriesView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Categories"))
	b.WriteString("\n\n")

	names := append([]string{"All", "Uncategorised"}, make([]string, 0, len(m.categories))...)
	for _, cat := range m.categories {
		names = append(names, cat.Name)
	}
	for i, name := range names {
		line := cursorFor(i == m.catIdx && m.pane == paneCategories) + fitText(name, 24)
		if i == m.catIdx && m.pane != paneCategories {
			line = "* " + fitText(name, 24)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return paneStyle.Render(b.String())
}

func (m browseModel) imagesView(userName string) string {
	var b strings.Builder
	header := titleStyle.Render("Images")
	if userName != "" {
		header += helpStyle.Render("  " + userName)
	}
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.images) == 0:
		b.WriteString("Loading...\n")
	case len(m.images) == 0:
		b.WriteString("No images here yet. Press a to add one.\n")
	default:
		for i, img := range m.images {
			line := fmt.Sprintf("%s%s  %s",
				cursorFor(i == m.imgIdx && m.pane == paneImages),
				fitText(img.URL, 48),
				helpStyle.Render(img.DisplayCategory()))
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m browseModel) View(userName string) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.categoriesView(), m.imagesView(userName))

	if m.status != "" {
		body += "\n" + m.status + "\n"
	}

	help := joinHelp(
		"tab pane", "enter open", "a add image", "n new category",
		"d delete category", "r refresh", "l log out", "q quit",
	)
	return body + "\n" + help
}
