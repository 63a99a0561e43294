package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasTerminator(t *testing.T) {
	eval := NewEvaluator()

	t.Run("count bounds the rule", func(t *testing.T) {
		bounded, err := eval.HasTerminator("FREQ=DAILY;COUNT=5")
		require.NoError(t, err)
		assert.True(t, bounded)
	})

	t.Run("until bounds the rule", func(t *testing.T) {
		bounded, err := eval.HasTerminator("FREQ=DAILY;UNTIL=20240303T100000Z")
		require.NoError(t, err)
		assert.True(t, bounded)
	})

	t.Run("plain frequency is unbounded", func(t *testing.T) {
		bounded, err := eval.HasTerminator("FREQ=WEEKLY")
		require.NoError(t, err)
		assert.False(t, bounded)
	})

	t.Run("garbage does not parse", func(t *testing.T) {
		_, err := eval.HasTerminator("EVERY=TUESDAY")
		assert.ErrorIs(t, err, ErrInvalidRule)
	})
}

func TestOccurrences(t *testing.T) {
	eval := NewEvaluator()
	dtstart := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	t.Run("first occurrence is dtstart itself", func(t *testing.T) {
		instants, err := eval.Occurrences("FREQ=DAILY;COUNT=3", dtstart, dtstart.Add(10*day))
		require.NoError(t, err)
		require.NotEmpty(t, instants)
		assert.Equal(t, dtstart, instants[0])
	})

	t.Run("count wins over a looser horizon", func(t *testing.T) {
		instants, err := eval.Occurrences("FREQ=DAILY;COUNT=5", dtstart, dtstart.Add(10*day))
		require.NoError(t, err)

		require.Len(t, instants, 5)
		assert.Equal(t, dtstart.Add(4*day), instants[4])
	})

	t.Run("until wins over a looser horizon", func(t *testing.T) {
		instants, err := eval.Occurrences("FREQ=DAILY;UNTIL=20240303T100000Z", dtstart, dtstart.Add(5*day))
		require.NoError(t, err)

		// Inclusive UNTIL: March 1, 2 and 3.
		require.Len(t, instants, 3)
		assert.Equal(t, time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC), instants[2])
	})

	t.Run("horizon wins over a looser count", func(t *testing.T) {
		instants, err := eval.Occurrences("FREQ=DAILY;COUNT=10", dtstart, dtstart.Add(2*day))
		require.NoError(t, err)

		// Inclusive bounds: March 1, 2 and 3 at 10:00.
		require.Len(t, instants, 3)
		assert.Equal(t, dtstart.Add(2*day), instants[2])
	})

	t.Run("zero until leaves the rule to bound itself", func(t *testing.T) {
		instants, err := eval.Occurrences("FREQ=WEEKLY;COUNT=4", dtstart, time.Time{})
		require.NoError(t, err)

		require.Len(t, instants, 4)
		assert.Equal(t, dtstart.Add(21*day), instants[3])
	})

	t.Run("garbage does not parse", func(t *testing.T) {
		_, err := eval.Occurrences("EVERY=TUESDAY", dtstart, dtstart.Add(day))
		assert.ErrorIs(t, err, ErrInvalidRule)
	})
}
