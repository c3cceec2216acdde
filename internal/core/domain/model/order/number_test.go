package order_test

import (
	"testing"

	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber(t *testing.T) {
	t.Run("formats with zero-padded base", func(t *testing.T) {
		n, err := order.NewNumber(1, 1)

		require.NoError(t, err)
		assert.Equal(t, "OS0001-1", n.String())
		assert.Equal(t, 1, n.Base())
		assert.Equal(t, 1, n.Revision())
	})

	t.Run("accepts the base ceiling", func(t *testing.T) {
		n, err := order.NewNumber(9999, 12)

		require.NoError(t, err)
		assert.Equal(t, "OS9999-12", n.String())
	})

	t.Run("rejects out-of-range bases", func(t *testing.T) {
		for _, base := range []int{0, -1, 10000} {
			_, err := order.NewNumber(base, 1)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("rejects non-positive revisions", func(t *testing.T) {
		_, err := order.NewNumber(1, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseNumber(t *testing.T) {
	t.Run("round trips the canonical form", func(t *testing.T) {
		original, err := order.NewNumber(123, 4)
		require.NoError(t, err)

		parsed, err := order.ParseNumber(original.String())

		require.NoError(t, err)
		assert.True(t, original.IsEqual(parsed))
	})

	t.Run("rejects malformed inputs", func(t *testing.T) {
		for _, input := range []string{"", "OS1-1", "XX0001-1", "OS0001", "OS0001-", "os0001-1"} {
			t.Run(input, func(t *testing.T) {
				_, err := order.ParseNumber(input)
				require.Error(t, err)
			})
		}
	})
}

func TestNextNumber(t *testing.T) {
	t.Run("increments the highest base and starts revisions at 1", func(t *testing.T) {
		n, err := order.NextNumber(41, 0)

		require.NoError(t, err)
		assert.Equal(t, "OS0042-1", n.String())
	})

	t.Run("continues an existing revision sequence", func(t *testing.T) {
		n, err := order.NextNumber(41, 2)

		require.NoError(t, err)
		assert.Equal(t, "OS0042-3", n.String())
	})

	t.Run("fails with ErrSequenceExhausted at the ceiling", func(t *testing.T) {
		_, err := order.NextNumber(9999, 0)
		require.ErrorIs(t, err, order.ErrSequenceExhausted)
	})
}

func TestNumber_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var n order.Number
		require.Error(t, n.Validate())
	})
}
