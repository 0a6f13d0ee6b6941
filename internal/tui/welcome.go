package tui

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Sign in with Google"}}
}

func (m welcomeModel) View() string {
	out := titleStyle.Render("GifCamp") + "\n\nBookmark the internet's best GIFs.\n\n"
	for i, item := range m.items {
		out += cursorFor(i == m.idx) + item + "\n"
	}
	out += "\n" + joinHelp("enter sign in", "q quit")
	return out
}
