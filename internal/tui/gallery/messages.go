package gallery

import (
	"time"

	"github.com/alexisbeaulieu97/loom/internal/pagination"
	"github.com/alexisbeaulieu97/loom/internal/story"
	"github.com/alexisbeaulieu97/loom/internal/theme"
)

// ThemeReloadedMsg carries a reloaded theme document, or the error that
// stopped the reload. The file watcher sends it through tea.Program.Send.
type ThemeReloadedMsg struct {
	Doc *theme.Document
	Err error
}

// NavChangedMsg reports a story history change.
type NavChangedMsg struct {
	State pagination.State[story.ID]
}

// tickMsg drives toast expiry.
type tickMsg time.Time

// prefsSavedMsg reports the result of persisting preferences.
type prefsSavedMsg struct {
	Err error
}
