// Package gallery is the interactive story browser behind `loom gallery`.
package gallery

import (
	"errors"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/loom/internal/logger"
	"github.com/alexisbeaulieu97/loom/internal/pagination"
	"github.com/alexisbeaulieu97/loom/internal/prefs"
	"github.com/alexisbeaulieu97/loom/internal/story"
	"github.com/alexisbeaulieu97/loom/internal/theme"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
)

const (
	minWidth  = 60
	minHeight = 20

	toastTTL     = 4 * time.Second
	tickInterval = 500 * time.Millisecond
)

type onboardingStep string

const (
	stepWelcome onboardingStep = "welcome"
	stepProfile onboardingStep = "profile"
	stepConfirm onboardingStep = "confirm"
)

// Pane is a tab of the main area.
type Pane int

const (
	PanePreview Pane = iota
	PaneDocs
	PaneTokens
)

// Options configures a gallery model.
type Options struct {
	Registry *story.Registry
	Document *theme.Document
	// ThemePath enables manual reloads with r. Empty means the document is
	// not backed by a file.
	ThemePath  string
	Mode       theme.Mode
	StartStory story.ID
	Prefs      *prefs.Store
	Logger     *logger.Logger
}

// Model is the gallery state.
type Model struct {
	registry *story.Registry
	stories  []story.Story
	cursor   int

	nav       *pagination.Store[story.ID]
	navEvents chan pagination.State[story.ID]

	doc       *theme.Document
	themePath string
	mode      theme.Mode
	theme     components.Theme

	tabs    *components.Tabs
	drawer  *components.Drawer[onboardingStep]
	toaster *components.Toaster

	spinner   spinner.Model
	reloading bool
	help      help.Model
	keys      KeyMap
	showHelp  bool

	prefs *prefs.Store
	log   *logger.Logger

	showError bool
	errorMsg  string

	width  int
	height int
}

// NewModel builds the gallery. The first story opened is StartStory, then
// the last story saved in preferences, then the first story in the registry.
func NewModel(opts Options) (Model, error) {
	if opts.Registry == nil || opts.Registry.Len() == 0 {
		return Model{}, errors.New("gallery: no stories registered")
	}
	doc := opts.Document
	if doc == nil {
		doc = theme.Default()
	}
	mode := opts.Mode
	if mode == "" {
		mode = theme.ModeAuto
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	built, err := theme.BuildMode(doc, mode)
	if err != nil {
		return Model{}, err
	}

	stories := opts.Registry.List()
	start := stories[0].ID
	for _, candidate := range []story.ID{opts.StartStory, lastStory(opts.Prefs)} {
		if _, ok := opts.Registry.Get(candidate); ok && candidate != "" {
			start = candidate
			break
		}
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		registry:  opts.Registry,
		stories:   stories,
		nav:       pagination.NewStore(start),
		navEvents: make(chan pagination.State[story.ID], 16),
		doc:       doc,
		themePath: opts.ThemePath,
		mode:      mode,
		theme:     built,
		tabs:      components.NewTabs("Preview", "Docs", "Tokens"),
		drawer:    newOnboardingDrawer(),
		toaster:   components.NewToaster(3),
		spinner:   s,
		help:      help.New(),
		keys:      DefaultKeys(),
		prefs:     opts.Prefs,
		log:       log.Component("gallery"),
		width:     100,
		height:    30,
	}

	events := m.navEvents
	m.nav.Subscribe(func(state pagination.State[story.ID]) {
		// A full buffer drops the event; View always reads m.nav directly.
		select {
		case events <- state:
		default:
		}
	})
	m.syncCursor()

	return m, nil
}

func lastStory(store *prefs.Store) story.ID {
	if store == nil {
		return ""
	}
	return story.ID(store.Get().LastStory)
}

func newOnboardingDrawer() *components.Drawer[onboardingStep] {
	return components.NewDrawer("Onboarding", stepWelcome).
		AddPage(stepWelcome, "Welcome", components.NewText("loom themes every component from one token file.")).
		AddPage(stepProfile, "Profile", components.NewText("Pick a default mode: auto, light or dark.")).
		AddPage(stepConfirm, "Confirm", components.NewText("All set. Press esc to close.")).
		WithWidth(52)
}

// Init starts the toast clock and listens for history changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForNav(m.navEvents))
}

// Current returns the open story.
func (m Model) Current() story.ID { return m.nav.Current() }

// History returns the story history.
func (m Model) History() []story.ID { return m.nav.Snapshot().History }

// Mode returns the active theme mode.
func (m Model) Mode() theme.Mode { return m.mode }

// Pane returns the active main-area tab.
func (m Model) Pane() Pane { return Pane(m.tabs.Active()) }

// Highlighted returns the story under the sidebar cursor.
func (m Model) Highlighted() story.ID {
	if m.cursor < 0 || m.cursor >= len(m.stories) {
		return ""
	}
	return m.stories[m.cursor].ID
}

func (m *Model) moveCursor(delta int) {
	if len(m.stories) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.stories)) % len(m.stories)
}

// syncCursor moves the sidebar cursor onto the open story.
func (m *Model) syncCursor() {
	current := m.nav.Current()
	if i := slices.IndexFunc(m.stories, func(s story.Story) bool { return s.ID == current }); i >= 0 {
		m.cursor = i
	}
}

func (m *Model) rebuildTheme() error {
	built, err := theme.BuildMode(m.doc, m.mode)
	if err != nil {
		return err
	}
	m.theme = built
	return nil
}

func (m *Model) toast(variant components.ToastVariant, message string) {
	m.toaster.Push(variant, message, toastTTL)
}

func (m Model) renderContext(width int) components.RenderContext {
	return components.DefaultContext().
		WithTheme(m.theme).
		WithConstraints(components.WithMaxWidth(width))
}
