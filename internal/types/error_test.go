package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Run("message includes category", func(t *testing.T) {
		err := NewErrorf(ParseError, "bad body")
		assert.Equal(t, "parse: bad body", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewError(TransportError, cause)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("category survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("failed to fetch: %w", NewErrorf(HttpStatusError, "unexpected status 502"))
		assert.Equal(t, HttpStatusError, CategoryOf(err))
	})

	t.Run("unclassified errors default to transport", func(t *testing.T) {
		assert.Equal(t, TransportError, CategoryOf(errors.New("boom")))
	})

	t.Run("malformed entry detection", func(t *testing.T) {
		err := fmt.Errorf("cycle aborted: %w", NewErrorf(MalformedEntryError, "entry 3 is missing stake"))
		require.True(t, IsMalformedEntryError(err))
		assert.False(t, IsMalformedEntryError(errors.New("boom")))
	})
}
