package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/loom/internal/config"
	"github.com/alexisbeaulieu97/loom/internal/prefs"
	"github.com/alexisbeaulieu97/loom/internal/story"
	"github.com/alexisbeaulieu97/loom/internal/theme"
	"github.com/alexisbeaulieu97/loom/internal/tui/gallery"
)

var errNotTerminal = errors.New("stdout is not a terminal")

// isTerminal is replaced in tests.
var isTerminal = func(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

type galleryOptions struct {
	story string
}

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	opts := galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the component gallery",
		Long: `Browse every component story in an interactive terminal gallery.

Stories you open are kept in a history you can walk with [ and ]. With
--watch, edits to the theme file are picked up while the gallery runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.story, "story", "", "Story to open first, e.g. overlays/dialog")

	return cmd
}

func runGallery(cmd *cobra.Command, flags *rootFlags, opts galleryOptions) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("start gallery", "checking output", errNotTerminal, "Run loom from an interactive terminal, or use 'loom stories' to list stories.")
	}

	cfg, err := loadSettings(cmd, flags)
	if err != nil {
		return newCommandError("start gallery", "loading settings", err, "Fix the settings file or pass --config with a valid path.")
	}

	log, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return newCommandError("start gallery", "opening log", err, "Check --log-file permissions and try again.")
	}
	defer closeLog()
	log = log.Component("gallery")

	doc, err := loadDocument(cfg)
	if err != nil {
		return newCommandError("start gallery", "loading theme", err, "Run 'loom validate' on the theme file for details.")
	}

	store, err := openPrefs(cfg)
	if err != nil {
		// Preferences are optional; run without persistence.
		log.Warn(fmt.Sprintf("preferences disabled: %v", err))
		store = nil
	}

	mode, err := galleryMode(cmd, cfg, store)
	if err != nil {
		return newCommandError("start gallery", "reading mode", err, "Use --mode auto, light or dark.")
	}

	start := story.ID(cfg.StartStory)
	if opts.story != "" {
		start = story.ID(opts.story)
	}

	m, err := gallery.NewModel(gallery.Options{
		Registry:   story.Catalog(),
		Document:   doc,
		ThemePath:  cfg.Theme,
		Mode:       mode,
		StartStory: start,
		Prefs:      store,
		Logger:     log,
	})
	if err != nil {
		return newCommandError("start gallery", "building gallery", err, "Check the theme document and try again.")
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	if cfg.Watch && cfg.Theme != "" {
		watcher, err := theme.NewWatcher(cfg.Theme, func(doc *theme.Document, err error) {
			p.Send(gallery.ThemeReloadedMsg{Doc: doc, Err: err})
		}, log)
		if err != nil {
			return newCommandError("start gallery", "watching theme", err, "Run without --watch or check the theme path.")
		}
		watcher.Start()
		defer watcher.Stop()
	}

	log.WithFields(map[string]any{"mode": mode.String(), "start": string(start)}).Info("gallery started")
	if _, err := p.Run(); err != nil {
		log.Error(err, "gallery exited")
		return fmt.Errorf("failed to run gallery: %w", err)
	}
	log.Info("gallery closed")

	return nil
}

func openPrefs(cfg *config.Config) (*prefs.Store, error) {
	path := cfg.PrefsFile
	if path == "" {
		defaultPath, err := prefs.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	return prefs.NewStore(path)
}

// galleryMode prefers --mode, then the mode saved by the last session, then
// the settings file.
func galleryMode(cmd *cobra.Command, cfg *config.Config, store *prefs.Store) (theme.Mode, error) {
	if flagChanged(cmd, "mode") {
		return theme.ParseMode(cfg.Mode)
	}
	if store != nil {
		if saved := store.Get().Mode; saved != "" {
			if mode, err := theme.ParseMode(saved); err == nil {
				return mode, nil
			}
		}
	}
	return theme.ParseMode(cfg.Mode)
}
