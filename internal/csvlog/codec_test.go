package csvlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/teampulse/internal/core/domain"
)

func mustCodec(t *testing.T, schema Schema, loc *time.Location) *Codec {
	t.Helper()
	c, err := New(schema, loc)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("rejects unknown schema", func(t *testing.T) {
		_, err := New(Schema("xml"), time.UTC)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects nil location", func(t *testing.T) {
		_, err := New(SchemaTimestamp, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCodec_Decode_Timestamp(t *testing.T) {
	c := mustCodec(t, SchemaTimestamp, time.UTC)

	t.Run("empty input decodes to empty log", func(t *testing.T) {
		assert.Empty(t, c.Decode(""))
	})

	t.Run("header-only input decodes to empty log", func(t *testing.T) {
		assert.Empty(t, c.Decode("timestamp,name,rating,reason\n"))
	})

	t.Run("rows map positionally", func(t *testing.T) {
		text := "timestamp,name,rating,reason\n" +
			"2024-01-05T08:30:00Z,Alice,4,good standup\n" +
			"2024-01-05T09:00:00Z,Bob,3,\n"

		records := c.Decode(text)
		require.Len(t, records, 2)

		assert.Equal(t, "Alice", records[0].Name)
		assert.Equal(t, 4, records[0].Rating)
		assert.Equal(t, "good standup", records[0].Reason)
		assert.Equal(t, time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC), records[0].Timestamp)

		assert.Equal(t, "Bob", records[1].Name)
		assert.Empty(t, records[1].Reason)
	})

	t.Run("row without reason column still decodes", func(t *testing.T) {
		records := c.Decode("timestamp,name,rating,reason\n2024-01-05T08:30:00Z,Alice,4\n")
		require.Len(t, records, 1)
		assert.Equal(t, "Alice", records[0].Name)
	})

	t.Run("unparseable timestamp skips the row", func(t *testing.T) {
		text := "timestamp,name,rating,reason\n" +
			"not-a-time,Alice,4,\n" +
			"2024-01-05T08:30:00Z,Bob,3,\n"
		records := c.Decode(text)
		require.Len(t, records, 1)
		assert.Equal(t, "Bob", records[0].Name)
	})

	t.Run("unparseable rating keeps the row with rating zero", func(t *testing.T) {
		records := c.Decode("timestamp,name,rating,reason\n2024-01-05T08:30:00Z,Alice,great,\n")
		require.Len(t, records, 1)
		assert.Equal(t, 0, records[0].Rating)
		assert.False(t, records[0].HasRating())
	})

	t.Run("windows line endings", func(t *testing.T) {
		records := c.Decode("timestamp,name,rating,reason\r\n2024-01-05T08:30:00Z,Alice,4,\r\n")
		require.Len(t, records, 1)
	})
}

func TestCodec_Decode_DateTime(t *testing.T) {
	sydney, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)
	c := mustCodec(t, SchemaDateTime, sydney)

	t.Run("civil date and time parse in the configured zone", func(t *testing.T) {
		records := c.Decode("date,time,name,rating\n2024-01-06,07:30:00,Alice,5\n")
		require.Len(t, records, 1)

		// 07:30 Sydney on Jan 6 is 20:30 UTC on Jan 5 (UTC+11 in January).
		assert.Equal(t, time.Date(2024, 1, 5, 20, 30, 0, 0, time.UTC), records[0].Timestamp)
		assert.Equal(t, "Alice", records[0].Name)
		assert.Equal(t, 5, records[0].Rating)
	})

	t.Run("short row skipped", func(t *testing.T) {
		assert.Empty(t, c.Decode("date,time,name,rating\n2024-01-06,07:30:00\n"))
	})
}

func TestCodec_Encode(t *testing.T) {
	t.Run("timestamp schema", func(t *testing.T) {
		c := mustCodec(t, SchemaTimestamp, time.UTC)
		records := []domain.Record{
			{
				Timestamp: time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC),
				Name:      "Alice",
				Rating:    4,
				Reason:    "good standup",
			},
		}

		want := "timestamp,name,rating,reason\n2024-01-05T08:30:00Z,Alice,4,good standup\n"
		assert.Equal(t, want, c.Encode(records))
	})

	t.Run("datetime schema renders civil fields", func(t *testing.T) {
		sydney, err := time.LoadLocation("Australia/Sydney")
		require.NoError(t, err)
		c := mustCodec(t, SchemaDateTime, sydney)

		records := []domain.Record{
			{
				Timestamp: time.Date(2024, 1, 5, 20, 30, 0, 0, time.UTC),
				Name:      "Alice",
				Rating:    5,
			},
		}

		want := "date,time,name,rating\n2024-01-06,07:30:00,Alice,5\n"
		assert.Equal(t, want, c.Encode(records))
	})

	t.Run("delimiters stripped from text fields", func(t *testing.T) {
		c := mustCodec(t, SchemaTimestamp, time.UTC)
		records := []domain.Record{
			{
				Timestamp: time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC),
				Name:      "Alice",
				Rating:    2,
				Reason:    "late,\nagain",
			},
		}

		out := c.Encode(records)
		decoded := c.Decode(out)
		require.Len(t, decoded, 1)
		assert.Equal(t, "late  again", decoded[0].Reason)
	})

	t.Run("empty log encodes to header only", func(t *testing.T) {
		c := mustCodec(t, SchemaTimestamp, time.UTC)
		assert.Equal(t, c.InitialContent(), c.Encode(nil))
	})
}

func TestCodec_RoundTrip(t *testing.T) {
	records := []domain.Record{
		{Timestamp: time.Date(2024, 1, 3, 22, 15, 0, 0, time.UTC), Name: "Alice", Rating: 3, Reason: "ok"},
		{Timestamp: time.Date(2024, 1, 4, 1, 0, 0, 0, time.UTC), Name: "Bob", Rating: 5, Reason: ""},
		{Timestamp: time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC), Name: "Carol", Rating: 1, Reason: "rough retro"},
	}

	t.Run("timestamp schema", func(t *testing.T) {
		c := mustCodec(t, SchemaTimestamp, time.UTC)
		assert.Equal(t, records, c.Decode(c.Encode(records)))
	})

	t.Run("datetime schema", func(t *testing.T) {
		sydney, err := time.LoadLocation("Australia/Sydney")
		require.NoError(t, err)
		c := mustCodec(t, SchemaDateTime, sydney)

		// The legacy schema has no reason column, so compare without it.
		stripped := make([]domain.Record, len(records))
		copy(stripped, records)
		for i := range stripped {
			stripped[i].Reason = ""
		}
		assert.Equal(t, stripped, c.Decode(c.Encode(stripped)))
	})
}
