package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickFreeSlug(t *testing.T) {
	t.Run("should use the base slug when it is free", func(t *testing.T) {
		assert.Equal(t, "john-doe", pickFreeSlug("john-doe", nil))
	})

	t.Run("should ignore slugs that only share the prefix", func(t *testing.T) {
		assert.Equal(t, "john-doe", pickFreeSlug("john-doe", []string{"john-doe-smith"}))
	})

	t.Run("should append -1 on the first collision", func(t *testing.T) {
		assert.Equal(t, "john-doe-1", pickFreeSlug("john-doe", []string{"john-doe"}))
	})

	t.Run("should pick the first free suffix with multiple collisions", func(t *testing.T) {
		taken := []string{"john-doe", "john-doe-1", "john-doe-2"}
		assert.Equal(t, "john-doe-3", pickFreeSlug("john-doe", taken))
	})

	t.Run("should fill a gap in the suffix sequence", func(t *testing.T) {
		taken := []string{"john-doe", "john-doe-2"}
		assert.Equal(t, "john-doe-1", pickFreeSlug("john-doe", taken))
	})
}
