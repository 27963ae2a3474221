package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.message + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

// unsavedFormModel is the three way dialog shown when leaving a form whose
// fields differ from the snapshot taken on entry.
type unsavedFormModel struct{}

func (m unsavedFormModel) View() string {
	content := "This form has unsaved changes.\n\n"
	content += "s save and go back    d discard changes    esc keep editing"
	return overlayBoxStyle.Render(content)
}

type quitConfirmModel struct {
	path string
}

func (m quitConfirmModel) View() string {
	content := "The configuration has unsaved changes.\n"
	content += "Write to " + m.path + " before quitting?\n\n"
	content += "y write and quit    n quit without writing    esc cancel"
	return overlayBoxStyle.Render(content)
}

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n"
	content += m.message + "\n\n"
	content += "enter close"
	return overlayBoxStyle.Render(content)
}
