package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Delete message from \"" + m.message + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
