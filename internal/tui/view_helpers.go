package tui

import "strings"

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func cursorFor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func joinHelp(parts ...string) string {
	return helpStyle.Render(strings.Join(parts, "  "))
}
