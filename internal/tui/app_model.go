package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vtaptools/vtapcfg/internal/configfile"
	"github.com/vtaptools/vtapcfg/models"
)

type screen int

const (
	screenMenu screen = iota
	screenVASList
	screenVASForm
	screenSTList
	screenSTForm
	screenDFList
	screenDFForm
	screenKBForm
	screenNFCForm
	screenFBForm
	screenPreview
)

type appModel struct {
	cfg              *models.Config
	comment          string
	outputPath       string
	disableClipboard bool

	currentScreen screen

	// dirty is set whenever a form save or delete mutates cfg and cleared
	// when the file is written.
	dirty bool

	menu    menuModel
	vasList vasListModel
	vasForm vasFormModel
	stList  stListModel
	stForm  stFormModel
	dfList  dfListModel
	dfForm  dfFormModel
	kbForm  kbFormModel
	nfcForm nfcFormModel
	fbForm  feedbackFormModel
	preview previewModel

	showError    bool
	errorOverlay errorOverlayModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete screen

	// showUnsaved is the three way dialog raised when esc is pressed on a
	// form whose fields differ from their entry snapshot.
	showUnsaved bool

	showQuitConfirm bool
	quitConfirm     quitConfirmModel
	quitAfterWrite  bool

	err error
}

func newAppModel(cfg *models.Config, comment, outputPath string, disableClipboard bool) appModel {
	return appModel{
		cfg:              cfg,
		comment:          comment,
		outputPath:       outputPath,
		disableClipboard: disableClipboard,
		currentScreen:    screenMenu,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
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
			return m.updateDeleteConfirm(msg)
		}
		if m.showUnsaved {
			return m.updateUnsavedDialog(msg)
		}
		if m.showQuitConfirm {
			return m.updateQuitConfirm(msg)
		}
	case fileSavedMsg:
		if msg.err != nil {
			m.quitAfterWrite = false
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.dirty = false
		if m.quitAfterWrite {
			return m, tea.Quit
		}
		m.setStatus("Written to " + msg.path)
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.preview.status = "copy failed: " + msg.err.Error()
		} else {
			m.preview.status = "Copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.setStatus("")
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenVASList:
		return m.updateVASList(msg)
	case screenVASForm:
		return m.updateVASForm(msg)
	case screenSTList:
		return m.updateSTList(msg)
	case screenSTForm:
		return m.updateSTForm(msg)
	case screenDFList:
		return m.updateDFList(msg)
	case screenDFForm:
		return m.updateDFForm(msg)
	case screenKBForm:
		return m.updateKBForm(msg)
	case screenNFCForm:
		return m.updateNFCForm(msg)
	case screenFBForm:
		return m.updateFBForm(msg)
	case screenPreview:
		return m.updatePreview(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenMenu:
		body = m.menu.view(m.cfg, m.outputPath, m.dirty)
	case screenVASList:
		body = m.vasList.view(m.cfg)
	case screenVASForm:
		body = m.vasForm.View()
	case screenSTList:
		body = m.stList.view(m.cfg)
	case screenSTForm:
		body = m.stForm.View()
	case screenDFList:
		body = m.dfList.view(m.cfg)
	case screenDFForm:
		body = m.dfForm.View()
	case screenKBForm:
		body = m.kbForm.View()
	case screenNFCForm:
		body = m.nfcForm.View()
	case screenFBForm:
		body = m.fbForm.View()
	case screenPreview:
		body = m.preview.view(m.cfg, m.comment, m.outputPath)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showUnsaved {
		body += "\n\n" + unsavedFormModel{}.View()
	}
	if m.showQuitConfirm {
		body += "\n\n" + m.quitConfirm.View()
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

func (m *appModel) setStatus(status string) {
	m.menu.status = status
	m.vasList.status = status
	m.stList.status = status
	m.dfList.status = status
	m.preview.status = status
}

// slotCollisionHint reports key slots shared by more than one merchant.
// Sharing is legal but usually a configuration mistake.
func slotCollisionHint(cfg *models.Config) string {
	used := cfg.UsedKeySlots()
	slots := make([]int, 0, len(used))
	for slot := range used {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	for _, slot := range slots {
		if len(used[slot]) > 1 {
			return fmt.Sprintf("note: key slot %d is shared by %s",
				slot, strings.Join(used[slot], ", "))
		}
	}
	return ""
}

// ── overlays ────────────────────────────────────────────────────────────────

func (m appModel) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.yes) {
		m.showConfirm = false
		var err error
		switch m.pendingDelete {
		case screenVASList:
			err = m.cfg.RemoveVAS(m.vasList.idx)
			if m.vasList.idx >= len(m.cfg.VAS) && m.vasList.idx > 0 {
				m.vasList.idx--
			}
		case screenSTList:
			err = m.cfg.RemoveSmartTap(m.stList.idx)
			if m.stList.idx >= len(m.cfg.SmartTap) && m.stList.idx > 0 {
				m.stList.idx--
			}
		case screenDFList:
			if m.cfg.DESFire != nil {
				err = m.cfg.DESFire.RemoveApp(m.dfList.idx)
				if len(m.cfg.DESFire.Apps) == 0 {
					m.cfg.DESFire = nil
				} else if m.dfList.idx >= len(m.cfg.DESFire.Apps) && m.dfList.idx > 0 {
					m.dfList.idx--
				}
			}
		}
		if err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		m.dirty = true
		return m, nil
	}
	if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
		m.showConfirm = false
	}
	return m, nil
}

func (m appModel) updateUnsavedDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.save):
		m.showUnsaved = false
		return m.saveCurrentForm()
	case key.Matches(msg, keys.discard):
		m.showUnsaved = false
		m.currentScreen = backFromForm(m.currentScreen)
		return m, nil
	case key.Matches(msg, keys.esc):
		m.showUnsaved = false
	}
	return m, nil
}

func (m appModel) updateQuitConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showQuitConfirm = false
		m.quitAfterWrite = true
		return m, m.cmdWriteFile()
	case key.Matches(msg, keys.no):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.showQuitConfirm = false
	}
	return m, nil
}

func (m appModel) requestQuit() (tea.Model, tea.Cmd) {
	if !m.dirty {
		return m, tea.Quit
	}
	m.showQuitConfirm = true
	m.quitConfirm = quitConfirmModel{path: m.outputPath}
	return m, nil
}

func backFromForm(s screen) screen {
	switch s {
	case screenVASForm:
		return screenVASList
	case screenSTForm:
		return screenSTList
	case screenDFForm:
		return screenDFList
	}
	return screenMenu
}

// ── menu ────────────────────────────────────────────────────────────────────

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(menuItems)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.openMenuItem()
	case key.Matches(keyMsg, keys.preview):
		m.menu.idx = menuPreview
		return m.openMenuItem()
	case key.Matches(keyMsg, keys.write):
		return m, m.cmdWriteFile()
	case key.Matches(keyMsg, keys.quit):
		return m.requestQuit()
	}
	return m, nil
}

func (m appModel) openMenuItem() (tea.Model, tea.Cmd) {
	switch m.menu.idx {
	case menuVAS:
		m.vasList = vasListModel{}
		m.currentScreen = screenVASList
	case menuSmartTap:
		m.stList = stListModel{}
		m.currentScreen = screenSTList
	case menuKeyboard:
		m.kbForm = newKBFormModel(m.cfg.Keyboard)
		m.currentScreen = screenKBForm
	case menuNFC:
		m.nfcForm = newNFCFormModel(m.cfg.NFC)
		m.currentScreen = screenNFCForm
	case menuDESFire:
		m.dfList = dfListModel{}
		m.currentScreen = screenDFList
	case menuFeedback:
		m.fbForm = newFeedbackFormModel(m.cfg.Feedback)
		m.currentScreen = screenFBForm
	case menuPreview:
		m.preview.status = ""
		m.currentScreen = screenPreview
	}
	return m, nil
}

// ── lists ───────────────────────────────────────────────────────────────────

func (m appModel) updateVASList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.vasList.idx > 0 {
			m.vasList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.vasList.idx < len(m.cfg.VAS)-1 {
			m.vasList.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		if len(m.cfg.VAS) >= models.MaxVASEntries {
			m.showErrorf(models.ErrTooManyVAS.Error())
			return m, nil
		}
		m.vasForm = newVASFormModel(nil, len(m.cfg.VAS))
		m.currentScreen = screenVASForm
	case key.Matches(keyMsg, keys.edit):
		if m.vasList.idx < len(m.cfg.VAS) {
			m.vasForm = newVASFormModel(&m.cfg.VAS[m.vasList.idx], m.vasList.idx)
			m.currentScreen = screenVASForm
		}
	case key.Matches(keyMsg, keys.delete):
		if m.vasList.idx < len(m.cfg.VAS) {
			m.showConfirm = true
			m.confirm = confirmModel{message: m.cfg.VAS[m.vasList.idx].MerchantID}
			m.pendingDelete = screenVASList
		}
	case key.Matches(keyMsg, keys.quit):
		return m.requestQuit()
	}
	return m, nil
}

func (m appModel) updateSTList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.stList.idx > 0 {
			m.stList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.stList.idx < len(m.cfg.SmartTap)-1 {
			m.stList.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		if len(m.cfg.SmartTap) >= models.MaxSmartTapEntries {
			m.showErrorf(models.ErrTooManySmartTap.Error())
			return m, nil
		}
		m.stForm = newSTFormModel(nil, len(m.cfg.SmartTap))
		m.currentScreen = screenSTForm
	case key.Matches(keyMsg, keys.edit):
		if m.stList.idx < len(m.cfg.SmartTap) {
			m.stForm = newSTFormModel(&m.cfg.SmartTap[m.stList.idx], m.stList.idx)
			m.currentScreen = screenSTForm
		}
	case key.Matches(keyMsg, keys.delete):
		if m.stList.idx < len(m.cfg.SmartTap) {
			m.showConfirm = true
			m.confirm = confirmModel{message: m.cfg.SmartTap[m.stList.idx].CollectorID}
			m.pendingDelete = screenSTList
		}
	case key.Matches(keyMsg, keys.quit):
		return m.requestQuit()
	}
	return m, nil
}

func (m appModel) updateDFList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	apps := 0
	if m.cfg.DESFire != nil {
		apps = len(m.cfg.DESFire.Apps)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.dfList.idx > 0 {
			m.dfList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dfList.idx < apps-1 {
			m.dfList.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		if apps >= models.MaxDESFireApps {
			m.showErrorf(models.ErrTooManyDESFireApps.Error())
			return m, nil
		}
		m.dfForm = newDFFormModel(nil, apps)
		m.currentScreen = screenDFForm
	case key.Matches(keyMsg, keys.edit):
		if m.dfList.idx < apps {
			m.dfForm = newDFFormModel(&m.cfg.DESFire.Apps[m.dfList.idx], m.dfList.idx)
			m.currentScreen = screenDFForm
		}
	case key.Matches(keyMsg, keys.delete):
		if m.dfList.idx < apps {
			m.showConfirm = true
			m.confirm = confirmModel{message: m.cfg.DESFire.Apps[m.dfList.idx].AppID}
			m.pendingDelete = screenDFList
		}
	case key.Matches(keyMsg, keys.quit):
		return m.requestQuit()
	}
	return m, nil
}

// ── forms ───────────────────────────────────────────────────────────────────

// saveCurrentForm applies the current screen's form to the config. On a
// validation error the form stays open with the error overlay shown.
func (m appModel) saveCurrentForm() (tea.Model, tea.Cmd) {
	switch m.currentScreen {
	case screenVASForm:
		entry, err := m.vasForm.toEntry()
		if err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		if m.vasForm.editing {
			err = m.cfg.ReplaceVAS(m.vasForm.index, entry)
		} else {
			err = m.cfg.AddVAS(entry)
		}
		if err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
	case screenSTForm:
		entry, err := m.stForm.toEntry()
		if err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		if m.stForm.editing {
			err = m.cfg.ReplaceSmartTap(m.stForm.index, entry)
		} else {
			err = m.cfg.AddSmartTap(entry)
		}
		if err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
	case screenDFForm:
		entry, err := m.dfForm.toEntry()
		if err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		if m.cfg.DESFire == nil {
			m.cfg.DESFire = &models.DESFire{Separator: models.DefaultDESFireSeparator}
		}
		if m.dfForm.editing {
			err = m.cfg.DESFire.ReplaceApp(m.dfForm.index, entry)
		} else {
			err = m.cfg.DESFire.AddApp(entry)
		}
		if err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
	case screenKBForm:
		kb, err := m.kbForm.toSection()
		if err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		m.cfg.Keyboard = kb
	case screenNFCForm:
		nfc, err := m.nfcForm.toSection()
		if err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		m.cfg.NFC = nfc
	case screenFBForm:
		fb, err := m.fbForm.toSection()
		if err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		m.cfg.Feedback = fb
	}

	m.dirty = true
	m.currentScreen = backFromForm(m.currentScreen)
	if hint := slotCollisionHint(m.cfg); hint != "" {
		m.setStatus(hint)
		return m, cmdClearStatus()
	}
	return m, nil
}

func (m appModel) leaveForm(dirty bool) (tea.Model, tea.Cmd) {
	if dirty {
		m.showUnsaved = true
		return m, nil
	}
	m.currentScreen = backFromForm(m.currentScreen)
	return m, nil
}

func (m appModel) updateVASForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.leaveForm(m.vasForm.dirty())
		case key.Matches(keyMsg, keys.tab):
			m.vasForm = focusNextVASForm(m.vasForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.vasForm = focusPrevVASForm(m.vasForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.saveCurrentForm()
		}
	}

	var cmd tea.Cmd
	m.vasForm.inputs[m.vasForm.focus], cmd = m.vasForm.inputs[m.vasForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSTForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.leaveForm(m.stForm.dirty())
		case key.Matches(keyMsg, keys.tab):
			m.stForm = focusNextSTForm(m.stForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.stForm = focusPrevSTForm(m.stForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.saveCurrentForm()
		}
	}

	var cmd tea.Cmd
	m.stForm.inputs[m.stForm.focus], cmd = m.stForm.inputs[m.stForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDFForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.leaveForm(m.dfForm.dirty())
		case key.Matches(keyMsg, keys.tab):
			m.dfForm = focusNextDFForm(m.dfForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.dfForm = focusPrevDFForm(m.dfForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.saveCurrentForm()
		}
	}

	var cmd tea.Cmd
	m.dfForm.inputs[m.dfForm.focus], cmd = m.dfForm.inputs[m.dfForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateKBForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+d":
			m.cfg.Keyboard = nil
			m.dirty = true
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			return m.leaveForm(m.kbForm.dirty())
		case key.Matches(keyMsg, keys.tab):
			m.kbForm = focusNextKBForm(m.kbForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.kbForm = focusPrevKBForm(m.kbForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.saveCurrentForm()
		}
	}

	var cmd tea.Cmd
	m.kbForm.inputs[m.kbForm.focus], cmd = m.kbForm.inputs[m.kbForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateNFCForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+d":
			m.cfg.NFC = nil
			m.dirty = true
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			return m.leaveForm(m.nfcForm.dirty())
		case key.Matches(keyMsg, keys.tab):
			m.nfcForm = focusNextNFCForm(m.nfcForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.nfcForm = focusPrevNFCForm(m.nfcForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.saveCurrentForm()
		}
	}

	var cmd tea.Cmd
	m.nfcForm.inputs[m.nfcForm.focus], cmd = m.nfcForm.inputs[m.nfcForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFBForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+d":
			m.cfg.Feedback = nil
			m.dirty = true
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			return m.leaveForm(m.fbForm.dirty())
		case key.Matches(keyMsg, keys.tab):
			m.fbForm = focusNextFBForm(m.fbForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.fbForm = focusPrevFBForm(m.fbForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.saveCurrentForm()
		}
	}

	var cmd tea.Cmd
	m.fbForm.inputs[m.fbForm.focus], cmd = m.fbForm.inputs[m.fbForm.focus].Update(msg)
	return m, cmd
}

// ── preview ─────────────────────────────────────────────────────────────────

func (m appModel) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.template):
		m.preview.template = !m.preview.template
	case key.Matches(keyMsg, keys.copy):
		if m.disableClipboard {
			m.preview.status = "clipboard disabled"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(m.preview.render(m.cfg, m.comment))
	case key.Matches(keyMsg, keys.write):
		return m, m.cmdWriteFile()
	case key.Matches(keyMsg, keys.quit):
		return m.requestQuit()
	}
	return m, nil
}

// ── commands ────────────────────────────────────────────────────────────────

func (m appModel) cmdWriteFile() tea.Cmd {
	text := m.preview.render(m.cfg, m.comment)
	path := m.outputPath
	cfg := m.cfg
	return func() tea.Msg {
		if err := cfg.Validate(); err != nil {
			return fileSavedMsg{path: path, err: err}
		}
		return fileSavedMsg{path: path, err: configfile.WriteText(path, text)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
