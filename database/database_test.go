package database

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	t.Run("unique violation", func(t *testing.T) {
		err := errors.New(`ERROR: duplicate key value violates unique constraint "categories_title_key" (SQLSTATE 23505)`)
		assert.True(t, IsDuplicateKeyError(err))
	})
	t.Run("other error", func(t *testing.T) {
		assert.False(t, IsDuplicateKeyError(errors.New("some other error")))
	})
}
