package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/loom/internal/theme"
	"github.com/alexisbeaulieu97/loom/pkg/diff"
)

type diffOptions struct {
	mode string
	rev  string
}

// themeSource is a theme file, optionally at a git revision, or the
// built-in theme when path is "default".
type themeSource struct {
	path string
	rev  string
}

func (s themeSource) String() string {
	if s.rev == "" {
		return s.path
	}
	return s.path + "@" + s.rev
}

func newDiffCmd() *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <base-theme> [other-theme]",
		Short: "Compare the resolved tokens of two themes",
		Long: `Compare the resolved tokens of two theme documents.

Use "default" in place of a path for the built-in theme. With --rev, a
single theme file is compared against its version committed at that git
revision. Exits with an error when the themes differ, like diff(1).`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.rev != "" {
				if len(args) != 1 {
					return errors.New("--rev takes exactly one theme file")
				}
				return runDiff(cmd, opts, themeSource{path: args[0], rev: opts.rev}, themeSource{path: args[0]})
			}
			if len(args) != 2 {
				return errors.New("diff needs two themes, or one with --rev")
			}
			return runDiff(cmd, opts, themeSource{path: args[0]}, themeSource{path: args[1]})
		},
	}

	cmd.Flags().StringVar(&opts.mode, "as", "light", "Mode to compare: light or dark")
	cmd.Flags().StringVar(&opts.rev, "rev", "", "Compare against the theme committed at this git revision, e.g. HEAD")

	return cmd
}

var errThemesDiffer = errors.New("themes differ")

func runDiff(cmd *cobra.Command, opts *diffOptions, base, other themeSource) error {
	mode, err := theme.ParseMode(opts.mode)
	if err != nil {
		return newCommandError("compare themes", "reading mode", err, "Use --as light or dark.")
	}

	before, err := tokenListing(base, mode)
	if err != nil {
		return newCommandError("compare themes", "loading "+base.String(), err, "Run 'loom validate' on the theme file for details.")
	}
	after, err := tokenListing(other, mode)
	if err != nil {
		return newCommandError("compare themes", "loading "+other.String(), err, "Run 'loom validate' on the theme file for details.")
	}

	result := diff.Unified([]byte(before), []byte(after), base.String(), other.String())
	if result.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "No differences.")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), result.Text)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d added, %d removed\n", result.Added, result.Removed)
	return errThemesDiffer
}

// tokenListing renders resolved tokens as sorted "key: value" lines.
func tokenListing(src themeSource, mode theme.Mode) (string, error) {
	doc, err := loadSource(src)
	if err != nil {
		return "", err
	}

	tokens, err := doc.Resolve(mode)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, key := range tokens.Keys() {
		fmt.Fprintf(&b, "%s: %s\n", key, tokens[key])
	}
	return b.String(), nil
}

func loadSource(src themeSource) (*theme.Document, error) {
	if src.path == "default" && src.rev == "" {
		return theme.Default(), nil
	}

	var (
		doc *theme.Document
		err error
	)
	if src.rev != "" {
		doc, err = theme.LoadRevision(src.path, src.rev)
	} else {
		doc, err = theme.Load(src.path)
	}
	if err != nil {
		return nil, err
	}
	if err := theme.Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
