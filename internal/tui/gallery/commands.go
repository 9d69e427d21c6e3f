package gallery

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/loom/internal/pagination"
	"github.com/alexisbeaulieu97/loom/internal/prefs"
	"github.com/alexisbeaulieu97/loom/internal/story"
	"github.com/alexisbeaulieu97/loom/internal/theme"
)

// tickCmd schedules the next toast expiry check.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForNav delivers the next history change.
func waitForNav(events <-chan pagination.State[story.ID]) tea.Cmd {
	return func() tea.Msg {
		return NavChangedMsg{State: <-events}
	}
}

// reloadThemeCmd loads and validates the theme file at path.
func reloadThemeCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := theme.Load(path)
		if err == nil {
			err = theme.Validate(doc)
		}
		if err != nil {
			return ThemeReloadedMsg{Err: err}
		}
		return ThemeReloadedMsg{Doc: doc}
	}
}

// savePrefsCmd writes preferences to disk.
func savePrefsCmd(store *prefs.Store) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return prefsSavedMsg{}
		}
		return prefsSavedMsg{Err: store.Save()}
	}
}
