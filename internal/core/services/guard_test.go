package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/teampulse/internal/core/domain"
)

func TestHasSubmittedToday(t *testing.T) {
	sydney, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)

	log := []domain.Record{
		{Timestamp: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC), Name: "Alice", Rating: 4},
		{Timestamp: time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC), Name: "Bob", Rating: 3},
	}

	t.Run("same day same name", func(t *testing.T) {
		now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
		assert.True(t, HasSubmittedToday(log, "Alice", now, time.UTC))
	})

	t.Run("same day different name", func(t *testing.T) {
		now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
		assert.False(t, HasSubmittedToday(log, "Bob", now, time.UTC))
	})

	t.Run("name matching is case-sensitive", func(t *testing.T) {
		now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
		assert.False(t, HasSubmittedToday(log, "alice", now, time.UTC))
	})

	t.Run("next day clears the guard", func(t *testing.T) {
		now := time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC)
		assert.False(t, HasSubmittedToday(log, "Alice", now, time.UTC))
	})

	t.Run("civil day decided in the configured zone", func(t *testing.T) {
		// Alice's 08:00 UTC record is 19:00 Sydney, Jan 5. A check at
		// 14:00 UTC the same UTC day is already Jan 6 in Sydney.
		now := time.Date(2024, 1, 5, 14, 0, 0, 0, time.UTC)
		assert.True(t, HasSubmittedToday(log, "Alice", now, time.UTC))
		assert.False(t, HasSubmittedToday(log, "Alice", now, sydney))
	})

	t.Run("empty log", func(t *testing.T) {
		assert.False(t, HasSubmittedToday(nil, "Alice", time.Now(), time.UTC))
	})
}
