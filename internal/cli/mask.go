package cli

import (
	"regexp"

	"github.com/aretw0/envschema"
	"github.com/aretw0/envschema/pkg/schema"
)

// Mask is the replacement for masked values.
const Mask = "***"

// DefaultSecretPatterns match keys or variable names whose values are not
// printed by default.
var DefaultSecretPatterns = []string{`(?i)secret`, `(?i)password|passwd`, `(?i)token`, `(?i)private`, `(?i)credential`}

// masker hides the values of keys, or of the variables behind them,
// matching its patterns.
type masker struct {
	patterns []*regexp.Regexp
	// variables maps dotted key paths to the variable each leaf reads.
	variables map[string]string
}

func newMasker(patternStrings []string, bindings ...envschema.Binding) *masker {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	variables := make(map[string]string, len(bindings))
	for _, b := range bindings {
		variables[b.Path] = b.Variable
	}
	return &masker{patterns: patterns, variables: variables}
}

// mask returns a deep copy of m with matching leaves replaced by Mask.
// A nested map under a matching key is masked as a whole.
func (k *masker) mask(m map[string]any) map[string]any {
	return k.maskAt(m, "")
}

func (k *masker) maskAt(m map[string]any, path string) map[string]any {
	out := make(map[string]any, len(m))
	for key, v := range m {
		at := schema.JoinPath(path, key)
		if k.matches(key) || k.matches(k.variables[at]) {
			out[key] = Mask
			continue
		}
		if sub, ok := v.(map[string]any); ok {
			out[key] = k.maskAt(sub, at)
			continue
		}
		out[key] = v
	}
	return out
}

func (k *masker) matches(key string) bool {
	if key == "" {
		return false
	}
	for _, p := range k.patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}
