//go:build unit

package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	ref := New("reference")

	t.Run("sees marks", func(t *testing.T) {
		marked := Mark(errors.New("cause"), ref)

		assert.True(t, Is(marked, ref))
		// Marks live outside the Unwrap chain, which is why the standard
		// library matcher cannot be used on marked errors.
		assert.False(t, errors.Is(marked, ref))
	})

	t.Run("sees wrapped causes", func(t *testing.T) {
		assert.True(t, Is(Wrap(ref, "context"), ref))
	})

	t.Run("mark on nil is the mark itself", func(t *testing.T) {
		assert.True(t, Is(Mark(nil, ref), ref))
	})

	t.Run("unrelated errors do not match", func(t *testing.T) {
		assert.False(t, Is(New("other"), ref))
	})
}
