package theme

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"dario.cat/mergo"

	loomerrors "github.com/alexisbeaulieu97/loom/pkg/errors"
)

// Tokens maps dot paths such as palette.primary.base to raw values.
type Tokens map[string]string

var referencePattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.\-]+)\s*\}\}`)

// Flatten turns a nested token tree into dot paths. Leaves are formatted with
// fmt.Sprint.
func Flatten(tree map[string]any) Tokens {
	out := make(Tokens)
	flattenInto(out, "", tree)
	return out
}

func flattenInto(out Tokens, prefix string, node any) {
	join := func(key string) string {
		if prefix == "" {
			return key
		}
		return prefix + "." + key
	}

	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			flattenInto(out, join(key), child)
		}
	case map[any]any:
		for key, child := range v {
			flattenInto(out, join(fmt.Sprint(key)), child)
		}
	case nil:
		if prefix != "" {
			out[prefix] = ""
		}
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(v)
		}
	}
}

// Merge deep merges override onto base and returns a new tree. Neither input
// is modified.
func Merge(base, override map[string]any) (map[string]any, error) {
	dst := cloneTree(base)
	if dst == nil {
		dst = map[string]any{}
	}
	if len(override) == 0 {
		return dst, nil
	}
	if err := mergo.Merge(&dst, cloneTree(override), mergo.WithOverride); err != nil {
		return nil, err
	}
	return dst, nil
}

func cloneTree(tree map[string]any) map[string]any {
	if tree == nil {
		return nil
	}
	out := make(map[string]any, len(tree))
	for key, value := range tree {
		switch v := value.(type) {
		case map[string]any:
			out[key] = cloneTree(v)
		case map[any]any:
			converted := make(map[string]any, len(v))
			for k, child := range v {
				converted[fmt.Sprint(k)] = child
			}
			out[key] = cloneTree(converted)
		default:
			out[key] = v
		}
	}
	return out
}

// Resolve expands every {{ path }} reference. References resolve
// recursively; a reference to a missing token or a cycle fails with a
// TokenError naming the token being resolved.
func Resolve(tokens Tokens) (Tokens, error) {
	r := resolver{
		raw:      tokens,
		done:     make(Tokens, len(tokens)),
		visiting: make(map[string]bool),
	}

	for _, key := range tokens.Keys() {
		if _, err := r.resolve(key, nil); err != nil {
			return nil, err
		}
	}
	return r.done, nil
}

type resolver struct {
	raw      Tokens
	done     Tokens
	visiting map[string]bool
}

func (r *resolver) resolve(key string, chain []string) (string, error) {
	if value, ok := r.done[key]; ok {
		return value, nil
	}

	chain = append(chain, key)
	if r.visiting[key] {
		return "", loomerrors.NewTokenError(chain[0], "reference cycle: "+strings.Join(chain, " -> "), nil)
	}

	raw, ok := r.raw[key]
	if !ok {
		if len(chain) > 1 {
			return "", loomerrors.NewTokenError(chain[len(chain)-2], fmt.Sprintf("unknown reference %q", key), nil)
		}
		return "", loomerrors.NewTokenError(key, "unknown token", nil)
	}

	r.visiting[key] = true
	defer delete(r.visiting, key)

	var firstErr error
	value := referencePattern.ReplaceAllStringFunc(raw, func(match string) string {
		if firstErr != nil {
			return match
		}
		ref := referencePattern.FindStringSubmatch(match)[1]
		resolved, err := r.resolve(ref, chain)
		if err != nil {
			firstErr = err
			return match
		}
		return resolved
	})
	if firstErr != nil {
		return "", firstErr
	}

	r.done[key] = value
	return value, nil
}

// Keys returns the token paths in sorted order.
func (t Tokens) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}

// Lookup returns the value at path.
func (t Tokens) Lookup(path string) (string, bool) {
	value, ok := t[path]
	return value, ok
}

// CSSVariables renders the tokens as CSS custom property declarations, one
// per line in path order: --<prefix>-palette-primary-base: #3b82f6;
func (t Tokens) CSSVariables(prefix string) string {
	var b strings.Builder
	for _, key := range t.Keys() {
		name := strings.NewReplacer(".", "-", "_", "-").Replace(key)
		if prefix != "" {
			name = prefix + "-" + name
		}
		fmt.Fprintf(&b, "--%s: %s;\n", name, t[key])
	}
	return b.String()
}
