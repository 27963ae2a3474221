package tui

type fileSavedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
