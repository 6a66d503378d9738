package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// --- Built-in Validators ---

// String accepts any present value, stringified, as long as it is not empty.
func String() Validator { return Transform(toString, isNonEmptyString) }

// Bool accepts true/1/yes and false/0/no in any letter case.
// Values that are already booleans pass through.
func Bool() Validator { return Transform(toBool, Is[bool]()) }

// Number coerces the value to a finite float64.
func Number() Validator { return Transform(toNumber, isFinite) }

// Date coerces the value to a time.Time. Numeric values are epoch
// milliseconds; anything else is parsed as a date string.
func Date() Validator { return Transform(toDate, Is[time.Time]()) }

// Int coerces the value to an int. Decimal, 0x, 0o and 0b forms are accepted.
func Int() Validator { return Transform(toInt, Is[int]()) }

// Duration coerces the value to a time.Duration ("90s", "1h30m").
func Duration() Validator { return Transform(toDuration, Is[time.Duration]()) }

// URL coerces the value to an absolute *url.URL with a host.
func URL() Validator { return Transform(toURL, isAbsoluteURL) }

// OneOf accepts one of the given values, compared case-sensitively.
func OneOf(values ...string) Validator {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return Transform(toString, func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, ok = allowed[s]
		return ok
	})
}

// JSON parses the value as a JSON document and checks it with pred.
// A nil pred accepts any well-formed document.
func JSON(pred func(any) bool) Validator {
	return func(raw any) Result {
		data, ok := jsonBytes(raw)
		if !ok {
			return Invalid(raw)
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return Invalid(raw)
		}
		if pred != nil && !pred(doc) {
			return Invalid(doc)
		}
		return Valid(doc)
	}
}

// JSONOf decodes the value as JSON into a T.
func JSONOf[T any]() Validator {
	return func(raw any) Result {
		if v, ok := raw.(T); ok {
			return Valid(v)
		}
		data, ok := jsonBytes(raw)
		if !ok {
			return Invalid(raw)
		}
		var out T
		if err := json.Unmarshal(data, &out); err != nil {
			return Invalid(raw)
		}
		return Valid(out)
	}
}

// List splits a comma separated value and validates each item with elem.
// Blank items are dropped; an empty list is rejected.
func List(elem Validator) Validator {
	return func(raw any) Result {
		items, ok := listItems(raw)
		if !ok || len(items) == 0 {
			return Invalid(raw)
		}
		out := make([]any, len(items))
		valid := true
		for i, item := range items {
			r := elem(item)
			out[i] = r.Value
			valid = valid && r.OK
		}
		return Result{Value: out, OK: valid}
	}
}

// --- Type names ---

// TypeResolver maps type names found in definition files to validators.
type TypeResolver interface {
	Lookup(name string) (Validator, bool)
}

type builtinTypes struct{}

func (builtinTypes) Lookup(name string) (Validator, bool) {
	v, err := ParseType(name)
	return v, err == nil
}

// BuiltinTypes resolves the names understood by ParseType.
func BuiltinTypes() TypeResolver { return builtinTypes{} }

var builtins = map[string]func() Validator{
	"string":   String,
	"bool":     Bool,
	"boolean":  Bool,
	"number":   Number,
	"int":      Int,
	"date":     Date,
	"duration": Duration,
	"url":      URL,
	"json":     func() Validator { return JSON(nil) },
}

// ParseType converts a type name to a built-in Validator.
// Supports "string", "bool", "number", "int", "date", "duration", "url",
// "json" and list forms such as "[int]".
func ParseType(name string) (Validator, error) {
	name = strings.TrimSpace(name)
	if inner, ok := ListElem(name); ok {
		elem, err := ParseType(inner)
		if err != nil {
			return nil, err
		}
		return List(elem), nil
	}

	if factory, ok := builtins[strings.ToLower(name)]; ok {
		return factory(), nil
	}
	return nil, fmt.Errorf("unsupported type: %s", name)
}

// ListElem reports whether name has the "[elem]" list form and returns elem.
func ListElem(name string) (string, bool) {
	if len(name) > 2 && name[0] == '[' && name[len(name)-1] == ']' {
		return strings.TrimSpace(name[1 : len(name)-1]), true
	}
	return "", false
}

// TypeNames returns the built-in type names, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- Transforms and predicates ---

func toString(v any) any {
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

func isNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

func toBool(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return v
}

func toNumber(v any) any {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return v
		}
		if f, ok := parseNumeric(s); ok {
			return f
		}
		return v
	case bool:
		return v
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return v
	}
	return f
}

func isFinite(v any) bool {
	f, ok := v.(float64)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// maxEpochMillis bounds numeric dates to ±100,000,000 days around the epoch.
const maxEpochMillis = 8.64e15

func toDate(v any) any {
	if t, ok := v.(time.Time); ok {
		return t
	}
	if f := toNumber(v); isFinite(f) {
		ms := f.(float64)
		if math.Abs(ms) > maxEpochMillis {
			return v
		}
		return time.UnixMilli(int64(ms)).UTC()
	}
	s, ok := v.(string)
	if !ok {
		return v
	}
	t, err := cast.ToTimeE(strings.TrimSpace(s))
	if err != nil {
		return v
	}
	return t
}

// parseNumeric reads decimal and exponent forms plus unsigned 0x, 0o and 0b
// integers. Digit separators and signed base prefixes are rejected.
func parseNumeric(s string) (float64, bool) {
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	if base := basePrefix(s); base != 0 {
		u, err := strconv.ParseUint(s[2:], base, 64)
		if err != nil {
			return 0, false
		}
		return float64(u), true
	}
	if unsigned := strings.TrimLeft(s, "+-"); basePrefix(unsigned) != 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func basePrefix(s string) int {
	if len(s) < 2 || s[0] != '0' {
		return 0
	}
	switch s[1] {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

func toInt(v any) any {
	switch x := v.(type) {
	case int:
		return x
	case bool:
		return v
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return v
		}
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return v
		}
		if i, err := strconv.ParseInt(s, 10, 0); err == nil {
			return int(i)
		}
		if f, ok := parseNumeric(s); ok && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int(f)
		}
		return v
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return v
	}
	return i
}

func toDuration(v any) any {
	switch x := v.(type) {
	case time.Duration:
		return x
	case bool:
		return v
	case string:
		d, err := time.ParseDuration(strings.TrimSpace(x))
		if err != nil {
			return v
		}
		return d
	}
	d, err := cast.ToDurationE(v)
	if err != nil {
		return v
	}
	return d
}

func toURL(v any) any {
	if u, ok := v.(*url.URL); ok {
		return u
	}
	s, ok := v.(string)
	if !ok {
		return v
	}
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return v
	}
	return u
}

func isAbsoluteURL(v any) bool {
	u, ok := v.(*url.URL)
	return ok && u.IsAbs() && u.Host != ""
}

func jsonBytes(v any) ([]byte, bool) {
	switch x := v.(type) {
	case string:
		return []byte(x), true
	case []byte:
		return x, true
	}
	return nil, false
}

func listItems(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, true
	case string:
		var out []any
		for _, part := range strings.Split(x, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, true
	}
	return nil, false
}
