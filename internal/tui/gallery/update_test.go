package gallery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/loom/internal/prefs"
	"github.com/alexisbeaulieu97/loom/internal/story"
	"github.com/alexisbeaulieu97/loom/internal/theme"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.False(t, m.showError)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 15})
	assert.True(t, m.showError)
	assert.Contains(t, m.errorMsg, "Terminal too small")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.False(t, m.showError)
	assert.Empty(t, m.errorMsg)
}

func TestUpdate_OpenBackForward(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	ids := m.registry.IDs()

	m = press(t, m, "j", "enter")
	assert.Equal(t, ids[1], m.Current())
	assert.Equal(t, []story.ID{ids[0], ids[1]}, m.History())

	m = press(t, m, "j", "enter")
	assert.Equal(t, []story.ID{ids[0], ids[1], ids[2]}, m.History())

	m = press(t, m, "[")
	assert.Equal(t, ids[1], m.Current())
	assert.Equal(t, ids[1], m.Highlighted())

	m = press(t, m, "alt+left")
	assert.Equal(t, ids[0], m.Current())

	m = press(t, m, "alt+left")
	assert.Equal(t, ids[0], m.Current())

	m = press(t, m, "]", "alt+right")
	assert.Equal(t, ids[2], m.Current())

	// Opening a new story after going back drops the forward entries.
	m = press(t, m, "[", "[", "k", "enter")
	last := ids[len(ids)-1]
	assert.Equal(t, last, m.Current())
	assert.Equal(t, []story.ID{ids[0], last}, m.History())
}

func TestUpdate_ReopeningVisitedStoryJumpsToFirstVisit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	ids := m.registry.IDs()

	m = press(t, m, "j", "enter", "j", "enter")
	m = press(t, m, "k", "k", "enter")

	assert.Equal(t, ids[0], m.Current())
	assert.Equal(t, []story.ID{ids[0], ids[1], ids[2], ids[0]}, m.History())
	m = press(t, m, "]")
	assert.Equal(t, ids[1], m.Current())
}

func TestUpdate_NavChangedRecordsLastStory(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	ids := m.registry.IDs()

	m = press(t, m, "j", "enter")

	msg := waitForNav(m.navEvents)()
	changed, ok := msg.(NavChangedMsg)
	require.True(t, ok)
	assert.Equal(t, ids[1], changed.State.Current)
	assert.True(t, changed.State.CanGoBack)

	m, cmd := update(t, m, changed)
	assert.NotNil(t, cmd)
	assert.Equal(t, string(ids[1]), m.prefs.Get().LastStory)
}

func TestUpdate_OpenSameStoryDoesNotNotify(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m = press(t, m, "enter")

	assert.Empty(t, m.navEvents)
	assert.Len(t, m.History(), 1)
}

func TestUpdate_NavBurstDoesNotBlock(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	ids := m.registry.IDs()
	require.GreaterOrEqual(t, len(ids), 2)

	for i := range 2 * cap(m.navEvents) {
		m.nav.Open(ids[1+i%(len(ids)-1)])
		m.nav.Open(ids[0])
	}

	assert.Len(t, m.navEvents, cap(m.navEvents))
	assert.Equal(t, ids[0], m.Current())
	first, ok := m.registry.Get(ids[0])
	require.True(t, ok)
	assert.Contains(t, m.View(), "["+first.Title+"]")
}

func TestUpdate_ModeCycles(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})

	m = press(t, m, "t")
	assert.Equal(t, theme.ModeLight, m.Mode())
	assert.Equal(t, "light", m.prefs.Get().Mode)
	assert.Equal(t, "#3b82f6", m.theme.Palette.Primary.Base.Dark)

	m = press(t, m, "t")
	assert.Equal(t, theme.ModeDark, m.Mode())
	assert.Equal(t, "#60a5fa", m.theme.Palette.Primary.Base.Light)

	m = press(t, m, "t")
	assert.Equal(t, theme.ModeAuto, m.Mode())
	assert.Equal(t, 3, m.toaster.Len())
}

func TestUpdate_DrawerDemo(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	before := m.Highlighted()

	m = press(t, m, "d")
	require.True(t, m.drawer.IsOpen())
	assert.Equal(t, stepWelcome, m.drawer.Current())

	m = press(t, m, "n", "n", "n")
	assert.Equal(t, stepConfirm, m.drawer.Current())

	// Sidebar keys are ignored while the drawer is open.
	m = press(t, m, "j")
	assert.Equal(t, before, m.Highlighted())

	m = press(t, m, "b")
	assert.Equal(t, stepProfile, m.drawer.Current())
	assert.True(t, m.drawer.CanGoForward())

	m = press(t, m, "]")
	assert.Equal(t, stepConfirm, m.drawer.Current())

	assert.Contains(t, m.View(), "Step 3 of 3")

	m = press(t, m, "esc")
	assert.False(t, m.drawer.IsOpen())
	assert.Equal(t, stepWelcome, m.drawer.Current())

	m = press(t, m, "d", "d")
	assert.False(t, m.drawer.IsOpen())
}

func TestUpdate_ThemeReloaded(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})

	doc := theme.Default()
	doc.Name = "reloaded"
	m, _ = update(t, m, ThemeReloadedMsg{Doc: doc})
	assert.Equal(t, "reloaded", m.theme.Name)
	assert.False(t, m.reloading)

	visible := m.toaster.Visible(1)
	require.Len(t, visible, 1)
	assert.Equal(t, components.ToastVariantSuccess, visible[0].Variant)

	m, _ = update(t, m, ThemeReloadedMsg{Err: errors.New("bad yaml")})
	assert.Equal(t, "reloaded", m.theme.Name)
	visible = m.toaster.Visible(1)
	require.Len(t, visible, 1)
	assert.Equal(t, components.ToastVariantError, visible[0].Variant)
	assert.Contains(t, visible[0].Message, "bad yaml")
}

func TestUpdate_ThemeReloadedWithUnbuildableDocument(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})

	broken := &theme.Document{Version: "1.0.0", Name: "broken", Light: map[string]any{"a": "{{ missing }}"}}
	m, _ = update(t, m, ThemeReloadedMsg{Doc: broken})

	assert.Equal(t, "default", m.theme.Name)
	assert.Equal(t, "default", m.doc.Name)
}

func TestUpdate_Reload(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Nil(t, cmd)
	assert.False(t, m.reloading)
	assert.Equal(t, 1, m.toaster.Len())

	path := filepath.Join(t.TempDir(), "theme.yaml")
	data, err := theme.Encode(theme.Default(), theme.FormatYAML)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	m = newTestModel(t, Options{ThemePath: path})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.NotNil(t, cmd)
	assert.True(t, m.reloading)
	assert.Contains(t, m.View(), "reloading")

	msg := reloadThemeCmd(path)()
	reloaded, ok := msg.(ThemeReloadedMsg)
	require.True(t, ok)
	require.NoError(t, reloaded.Err)
	assert.Equal(t, "default", reloaded.Doc.Name)

	_, ok = reloadThemeCmd(filepath.Join(t.TempDir(), "missing.yaml"))().(ThemeReloadedMsg)
	require.True(t, ok)
}

func TestUpdate_SpinnerOnlyTicksWhileReloading(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	_, cmd := update(t, m, spinner.TickMsg{})
	assert.Nil(t, cmd)

	m.reloading = true
	_, cmd = update(t, m, m.spinner.Tick())
	assert.NotNil(t, cmd)
}

func TestUpdate_TickPrunesToasts(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m = press(t, m, "t")
	require.Equal(t, 1, m.toaster.Len())

	m, cmd := update(t, m, tickMsg(time.Now().Add(time.Hour)))
	assert.NotNil(t, cmd)
	assert.Equal(t, 0, m.toaster.Len())
}

func TestUpdate_DismissAndHelp(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m = press(t, m, "t", "t")
	require.Equal(t, 2, m.toaster.Len())

	m = press(t, m, "x")
	assert.Equal(t, 1, m.toaster.Len())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	m = press(t, m, "x")
	assert.False(t, m.showError)
	assert.Equal(t, 1, m.toaster.Len())

	m = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
	m = press(t, m, "?")
	assert.False(t, m.help.ShowAll)
}

func TestUpdate_TabCyclesPanes(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	assert.Equal(t, PanePreview, m.Pane())

	m = press(t, m, "tab")
	assert.Equal(t, PaneDocs, m.Pane())
	m = press(t, m, "tab")
	assert.Equal(t, PaneTokens, m.Pane())
	m = press(t, m, "tab")
	assert.Equal(t, PanePreview, m.Pane())
}

func TestUpdate_QuitSavesPreferences(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.json")
	store, err := prefs.NewStore(path)
	require.NoError(t, err)

	m := newTestModel(t, Options{Prefs: store})
	m = press(t, m, "j", "enter", "t")

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)

	got := store.Get()
	assert.Equal(t, string(m.Current()), got.LastStory)
	assert.Equal(t, "light", got.Mode)

	msg := savePrefsCmd(store)()
	saved, ok := msg.(prefsSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.Err)

	reloaded, err := prefs.NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, got.LastStory, reloaded.Get().LastStory)
}

func TestUpdate_QuitWithoutPreferences(t *testing.T) {
	t.Parallel()

	m, err := NewModel(Options{Registry: story.Catalog()})
	require.NoError(t, err)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
