package tui

import (
	"fmt"
	"strings"

	"github.com/gifcamp/gifcamp/models"
)

// lightboxModel shows a single image with its tags. Deleting the image
// is a two-step confirmation: the first press arms the delete, a second
// press within the revert window performs it.
type lightboxModel struct {
	image  models.Image
	tags   []models.Tag
	tagIdx int

	loadingTags bool
	tagsGen     int

	deleteArmed bool
	// armGen distinguishes the current arming from timers started by
	// earlier ones.
	armGen int

	status string
}

func newLightboxModel(image models.Image) lightboxModel {
	return lightboxModel{image: image, loadingTags: true}
}

func (m lightboxModel) currentTag() (models.Tag, bool) {
	if len(m.tags) == 0 || m.tagIdx < 0 || m.tagIdx >= len(m.tags) {
		return models.Tag{}, false
	}
	return m.tags[m.tagIdx], true
}

func (m *lightboxModel) clampTagIdx() {
	if m.tagIdx >= len(m.tags) {
		m.tagIdx = len(m.tags) - 1
	}
	if m.tagIdx < 0 {
		m.tagIdx = 0
	}
}

func (m lightboxModel) tagsView() string {
	if m.loadingTags {
		return "Loading tags..."
	}
	if len(m.tags) == 0 {
		return helpStyle.Render("no tags")
	}

	parts := make([]string, 0, len(m.tags))
	for i, tag := range m.tags {
		label := "#" + tag.Tag
		if i == m.tagIdx {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func (m lightboxModel) View() string {
	out := titleStyle.Render("Image") + "\n\n"
	out += fmt.Sprintf("URL:       %s\n", m.image.URL)
	out += fmt.Sprintf("Category:  %s\n", m.image.DisplayCategory())
	out += fmt.Sprintf("Tags:      %s\n", m.tagsView())

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	deleteHint := "d delete"
	if m.deleteArmed {
		deleteHint = armedStyle.Render("d confirm delete")
	}
	out += "\n" + joinHelp(
		"c copy link", deleteHint, "t add tag",
		"left/right pick tag", "x remove tag", "esc back",
	)
	return out
}
