package ports

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunValueSourceContract runs a suite of tests to verify that a ValueSource
// implementation adheres to the interface contract. fixtures lists variables
// the source is expected to hold, with their values in string form.
func RunValueSourceContract(t *testing.T, src ValueSource, fixtures map[string]string) {
	t.Helper()

	t.Run("Lookup Present", func(t *testing.T) {
		for name, want := range fixtures {
			got, ok := src.Lookup(name, "")
			require.True(t, ok, "variable %s should be present", name)
			assert.Equal(t, want, fmt.Sprint(got), "variable %s", name)
		}
	})

	t.Run("Lookup Absent", func(t *testing.T) {
		got, ok := src.Lookup("ENVSCHEMA_CONTRACT_SURELY_ABSENT_VARIABLE", "")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("Key Does Not Change Result", func(t *testing.T) {
		for name := range fixtures {
			a, okA := src.Lookup(name, "")
			b, okB := src.Lookup(name, "SomeKey")
			assert.Equal(t, okA, okB)
			assert.Equal(t, a, b)
		}
	})

	t.Run("Repeatable", func(t *testing.T) {
		for name := range fixtures {
			a, _ := src.Lookup(name, "")
			b, _ := src.Lookup(name, "")
			assert.Equal(t, a, b)
		}
	})
}
