package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/loom/internal/config"
	"github.com/alexisbeaulieu97/loom/internal/logger"
	"github.com/alexisbeaulieu97/loom/internal/theme"
)

// loadSettings reads the settings file and applies flags that were set on
// the command line.
func loadSettings(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	path := flags.configPath
	if path == "" {
		if defaultPath, err := config.DefaultPath(); err == nil {
			path = defaultPath
		}
	}

	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.ParseConfig(path)
	} else {
		cfg, err = config.LoadOrDefault(path)
	}
	if err != nil {
		return nil, err
	}

	changed := func(name string) bool { return flagChanged(cmd, name) }
	if changed("theme") {
		cfg.Theme = flags.theme
	}
	if changed("mode") {
		cfg.Mode = flags.mode
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if changed("prefs") {
		cfg.PrefsFile = flags.prefsFile
	}
	if changed("watch") {
		cfg.Watch = flags.watch
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// flagChanged also sees persistent flags declared on parent commands.
func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flag(name)
	return flag != nil && flag.Changed
}

// loadDocument returns the configured theme, or the built-in one.
func loadDocument(cfg *config.Config) (*theme.Document, error) {
	if cfg.Theme == "" {
		return theme.Default(), nil
	}

	doc, err := theme.Load(cfg.Theme)
	if err != nil {
		return nil, err
	}
	if err := theme.Validate(doc); err != nil {
		return nil, fmt.Errorf("theme %s: %w", cfg.Theme, err)
	}
	return doc, nil
}

// newLogger writes to the log file when one is set and to fallback
// otherwise. The returned close function is always safe to call.
func newLogger(cfg *config.Config, fallback io.Writer) (*logger.Logger, func() error, error) {
	writer := fallback
	closeFn := func() error { return nil }
	humanReadable := true

	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer = file
		closeFn = file.Close
		humanReadable = false
	}

	log, err := logger.New(logger.Options{Level: cfg.LogLevel, HumanReadable: humanReadable, Writer: writer})
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return log, closeFn, nil
}
