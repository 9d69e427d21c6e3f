package gallery

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/loom/internal/prefs"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.reloading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		m.toaster.Prune(time.Time(msg))
		return m, tickCmd()

	case NavChangedMsg:
		m.syncCursor()
		m.log.WithFields(map[string]any{
			"story":   string(msg.State.Current),
			"history": len(msg.State.History),
		}).Debug("story history changed")
		if m.prefs != nil {
			m.prefs.Update(func(p *prefs.Preferences) { p.LastStory = string(msg.State.Current) })
		}
		return m, waitForNav(m.navEvents)

	case ThemeReloadedMsg:
		m.reloading = false
		if msg.Err != nil {
			m.log.Error(msg.Err, "theme reload failed")
			m.toast(components.ToastVariantError, "Theme reload failed: "+msg.Err.Error())
			return m, nil
		}
		previous := m.doc
		m.doc = msg.Doc
		if err := m.rebuildTheme(); err != nil {
			m.doc = previous
			m.log.Error(err, "theme build failed")
			m.toast(components.ToastVariantError, "Theme build failed: "+err.Error())
			return m, nil
		}
		m.log.Info("theme reloaded")
		m.toast(components.ToastVariantSuccess, fmt.Sprintf("Theme %q reloaded", m.doc.Name))
		return m, nil

	case prefsSavedMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "failed to save preferences")
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	if m.drawer.IsOpen() {
		return m.handleDrawerKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Open):
		if id := m.Highlighted(); id != "" {
			m.nav.Open(id)
		}

	case key.Matches(msg, m.keys.Back):
		m.nav.Back()
		m.syncCursor()

	case key.Matches(msg, m.keys.Forward):
		m.nav.Forward()
		m.syncCursor()

	case key.Matches(msg, m.keys.NextPane):
		m.tabs.Next()

	case key.Matches(msg, m.keys.Mode):
		m.mode = m.mode.Next()
		if err := m.rebuildTheme(); err != nil {
			m.toast(components.ToastVariantError, err.Error())
			return m, nil
		}
		if m.prefs != nil {
			m.prefs.Update(func(p *prefs.Preferences) { p.Mode = m.mode.String() })
		}
		m.toast(components.ToastVariantInfo, "Theme mode: "+m.mode.String())

	case key.Matches(msg, m.keys.Reload):
		if m.themePath == "" {
			m.toast(components.ToastVariantWarning, "Built-in theme has no file to reload")
			return m, nil
		}
		if m.reloading {
			return m, nil
		}
		m.reloading = true
		return m, tea.Batch(m.spinner.Tick, reloadThemeCmd(m.themePath))

	case key.Matches(msg, m.keys.Drawer):
		m.drawer.Open()
		m.publishDrawerHint()

	case key.Matches(msg, m.keys.Dismiss):
		if m.showError {
			m.showError = false
			m.errorMsg = ""
			return m, nil
		}
		if visible := m.toaster.Visible(1); len(visible) > 0 {
			m.toaster.Dismiss(visible[0].ID)
		}

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}

	return m, nil
}

func (m Model) handleDrawerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.StepNext):
		m.drawer.Next()
	case key.Matches(msg, m.keys.StepBack), key.Matches(msg, m.keys.Back):
		m.drawer.Back()
	case key.Matches(msg, m.keys.Forward):
		m.drawer.Forward()
	case key.Matches(msg, m.keys.Close):
		m.drawer.Close()
		return m, nil
	}
	m.publishDrawerHint()
	return m, nil
}

// publishDrawerHint keeps the drawer's bottom panel in step with the page.
func (m Model) publishDrawerHint() {
	hint := "n next · esc close"
	switch {
	case m.drawer.Current() == stepConfirm:
		hint = "b back · esc close"
	case m.drawer.CanGoBack():
		hint = "n next · b back · esc close"
	}
	m.drawer.Panel().Publish("hint", components.MutedText(hint))
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.prefs == nil {
		return m, tea.Quit
	}
	m.prefs.Update(func(p *prefs.Preferences) {
		p.LastStory = string(m.nav.Current())
		p.Mode = m.mode.String()
	})
	return m, tea.Sequence(savePrefsCmd(m.prefs), tea.Quit)
}
