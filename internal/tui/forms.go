package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type categoryFormModel struct {
	input      textinput.Model
	submitting bool
	errText    string
}

func newCategoryFormModel() categoryFormModel {
	input := textinput.New()
	input.Placeholder = "category name"
	input.CharLimit = 64
	input.Width = 40
	input.Focus()
	return categoryFormModel{input: input}
}

func (m categoryFormModel) View() string {
	out := titleStyle.Render("New category") + "\n\n"
	out += "Name: [" + m.input.View() + "]\n"
	if m.submitting {
		out += "\nSaving...\n"
	}
	if m.errText != "" {
		out += "\n" + errorStyle.Render(m.errText) + "\n"
	}
	out += "\n" + joinHelp("enter save", "esc cancel")
	return out
}

// imageFormModel adds an image either by URL or from a local file,
// whichever of the two inputs is filled in.
type imageFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	category   string
	errText    string
}

func newImageFormModel(category string) imageFormModel {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://example.com/image.gif"
	urlInput.CharLimit = 2048
	urlInput.Width = 56
	urlInput.Focus()

	fileInput := textinput.New()
	fileInput.Placeholder = "/path/to/image.gif"
	fileInput.CharLimit = 1024
	fileInput.Width = 56

	return imageFormModel{
		inputs:   []textinput.Model{urlInput, fileInput},
		category: category,
	}
}

func (m imageFormModel) url() string  { return strings.TrimSpace(m.inputs[0].Value()) }
func (m imageFormModel) path() string { return strings.TrimSpace(m.inputs[1].Value()) }

func (m imageFormModel) View() string {
	out := titleStyle.Render("Add image") + "\n\n"
	out += "Category: " + m.category + "\n\n"
	out += "URL:   [" + m.inputs[0].View() + "]\n"
	out += "File:  [" + m.inputs[1].View() + "]\n"
	if m.submitting {
		out += "\nSaving...\n"
	}
	if m.errText != "" {
		out += "\n" + errorStyle.Render(m.errText) + "\n"
	}
	out += "\n" + joinHelp("tab switch field", "enter save", "esc cancel")
	return out
}

func focusNextImageForm(m imageFormModel) imageFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

type tagFormModel struct {
	input      textinput.Model
	submitting bool
	errText    string
}

func newTagFormModel() tagFormModel {
	input := textinput.New()
	input.Placeholder = "tag"
	input.CharLimit = 64
	input.Width = 40
	input.Focus()
	return tagFormModel{input: input}
}

func (m tagFormModel) View() string {
	out := titleStyle.Render("Add tag") + "\n\n"
	out += "Tag: [" + m.input.View() + "]\n"
	if m.submitting {
		out += "\nSaving...\n"
	}
	if m.errText != "" {
		out += "\n" + errorStyle.Render(m.errText) + "\n"
	}
	out += "\n" + joinHelp("enter save", "esc cancel")
	return out
}
