package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/loom/internal/theme"
)

type tokensOptions struct {
	format string
	prefix string
}

func newTokensCmd(flags *rootFlags) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the resolved design tokens",
		Long: `Print every token of the active theme with references resolved.

The css format writes custom properties such as --loom-palette-primary-base.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "css", "Output format: css, yaml or toml")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "loom", "CSS variable prefix")

	return cmd
}

func runTokens(cmd *cobra.Command, flags *rootFlags, opts *tokensOptions) error {
	cfg, err := loadSettings(cmd, flags)
	if err != nil {
		return newCommandError("print tokens", "loading settings", err, "Fix the settings file or pass --config with a valid path.")
	}

	log, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return newCommandError("print tokens", "opening log", err, "Check --log-file permissions and try again.")
	}
	defer closeLog()
	log = log.Component("tokens")

	doc, err := loadDocument(cfg)
	if err != nil {
		return newCommandError("print tokens", "loading theme", err, "Run 'loom validate' on the theme file for details.")
	}

	mode, err := theme.ParseMode(cfg.Mode)
	if err != nil {
		return newCommandError("print tokens", "reading mode", err, "Use --mode auto, light or dark.")
	}

	// Auto has no terminal background to follow here and prints light values.
	tokens, err := doc.Resolve(mode)
	if err != nil {
		return newCommandError("print tokens", "resolving tokens", err, "Fix the reference named in the error.")
	}

	log.WithFields(map[string]any{"theme": doc.Name, "mode": mode.String(), "count": len(tokens)}).Debug("tokens resolved")

	out, err := renderTokens(tokens, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func renderTokens(tokens theme.Tokens, opts *tokensOptions) (string, error) {
	switch strings.ToLower(opts.format) {
	case "css":
		return ":root {\n" + indent(tokens.CSSVariables(opts.prefix)) + "}\n", nil
	case "yaml", "yml":
		data, err := yaml.Marshal(map[string]string(tokens))
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return string(data), nil
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(map[string]string(tokens)); err != nil {
			return "", fmt.Errorf("encode toml: %w", err)
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("unknown format %q (want css, yaml or toml)", opts.format)
	}
}

func indent(block string) string {
	if block == "" {
		return ""
	}
	lines := strings.SplitAfter(block, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		b.WriteString("  ")
		b.WriteString(line)
	}
	return b.String()
}
