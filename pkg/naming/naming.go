// Package naming derives environment variable names from schema keys.
package naming

import (
	"strings"
	"unicode"
)

// Formatter maps a schema key to a variable name.
type Formatter func(key string) string

// UpperSnake converts camelCase and PascalCase keys to UPPER_SNAKE_CASE by
// splitting before every ASCII capital: "AccessKeyId" becomes
// "ACCESS_KEY_ID". A dot directly before a capital is consumed as the
// separator. Other letters are uppercased without splitting.
func UpperSnake(key string) string {
	runes := []rune(key)
	var b strings.Builder
	b.Grow(len(key) + 4)

	dotSplit := false
	for i, r := range runes {
		if r == '.' && i+1 < len(runes) && isCapital(runes[i+1]) {
			b.WriteByte('_')
			dotSplit = true
			continue
		}
		if i > 0 && isCapital(r) && !dotSplit {
			b.WriteByte('_')
		}
		dotSplit = false
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func isCapital(r rune) bool { return 'A' <= r && r <= 'Z' }

// Verbatim uses the key unchanged.
func Verbatim(key string) string { return key }

// WithPrefix prepends prefix to every name produced by f.
func WithPrefix(prefix string, f Formatter) Formatter {
	if f == nil {
		f = UpperSnake
	}
	return func(key string) string {
		return prefix + f(key)
	}
}
