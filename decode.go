package envschema

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/envschema/pkg/schema"
)

// Decode copies a Result into target, which must be a pointer to a struct
// or map. Fields match keys case-insensitively or by `mapstructure` tag.
func Decode(result Result, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(result.plain()); err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}
	return nil
}

// Load resolves s and decodes the result into a T.
func Load[T any](s schema.Schema, opts ...Option) (T, error) {
	var out T
	r, err := Resolve(s, opts...)
	if err != nil {
		return out, err
	}
	if err := Decode(r, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (r Result) plain() map[string]any {
	m := make(map[string]any, len(r))
	for k, v := range r {
		if child, ok := v.(Result); ok {
			m[k] = child.plain()
			continue
		}
		m[k] = v
	}
	return m
}
