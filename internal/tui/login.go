package tui

import "github.com/charmbracelet/bubbles/spinner"

// loginModel shows the OAuth hand-off: the consent URL to visit and a
// spinner while the browser round-trip is in flight.
type loginModel struct {
	spinner spinner.Model
	authURL string
	urls    chan string
}

func newLoginModel() loginModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return loginModel{spinner: s}
}

func (m loginModel) View() string {
	out := titleStyle.Render("Sign in with Google") + "\n\n"
	out += m.spinner.View() + " Waiting for the browser...\n\n"
	if m.authURL != "" {
		out += "Open this URL to continue:\n\n  " + m.authURL + "\n"
	}
	out += "\n" + joinHelp("esc cancel", "q quit")
	return out
}
