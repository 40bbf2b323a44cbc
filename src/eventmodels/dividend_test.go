package eventmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDividend(t *testing.T) {
	t.Run("parses date and amount", func(t *testing.T) {
		d, err := NewDividend("2020-08-11", "0.3")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2020, time.August, 11, 0, 0, 0, 0, time.UTC), d.Date)
		require.NotNil(t, d.Dividend)
		assert.Equal(t, 0.3, *d.Dividend)
	})

	t.Run("empty amount yields a date-only event", func(t *testing.T) {
		d, err := NewDividend("2020-08-11", "")
		require.NoError(t, err)

		assert.Nil(t, d.Dividend)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := NewDividend("11/08/2020", "0.3")
		require.Error(t, err)

		assert.ErrorIs(t, err, InvalidDateFormatErr)
		assert.Contains(t, err.Error(), DateFormat)
		assert.Contains(t, err.Error(), "11/08/2020")
	})

	t.Run("malformed amount", func(t *testing.T) {
		_, err := NewDividend("2020-08-11", "abc")
		require.Error(t, err)

		assert.Contains(t, err.Error(), "abc")
	})
}

func TestDividendEqual(t *testing.T) {
	newDividend := func(dateStr, dividendStr string) *Dividend {
		d, err := NewDividend(dateStr, dividendStr)
		require.NoError(t, err)
		return d
	}

	t.Run("same date and amount", func(t *testing.T) {
		assert.True(t, newDividend("2020-08-11", "0.3").Equal(newDividend("2020-08-11", "0.3")))
	})

	t.Run("different date", func(t *testing.T) {
		assert.False(t, newDividend("2020-08-11", "0.3").Equal(newDividend("2020-08-12", "0.3")))
	})

	t.Run("different amount", func(t *testing.T) {
		assert.False(t, newDividend("2020-08-11", "0.3").Equal(newDividend("2020-08-11", "0.4")))
	})

	t.Run("both amounts missing", func(t *testing.T) {
		assert.True(t, newDividend("2020-08-11", "").Equal(newDividend("2020-08-11", "")))
	})

	t.Run("one amount missing", func(t *testing.T) {
		assert.False(t, newDividend("2020-08-11", "0.3").Equal(newDividend("2020-08-11", "")))
		assert.False(t, newDividend("2020-08-11", "").Equal(newDividend("2020-08-11", "0.3")))
	})

	t.Run("nil other", func(t *testing.T) {
		assert.False(t, newDividend("2020-08-11", "0.3").Equal(nil))
	})
}
