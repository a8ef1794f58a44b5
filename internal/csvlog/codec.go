// Package csvlog encodes and decodes the append-only rating log to and
// from its CSV representation.
//
// Two schemas exist in deployed data. The current schema stores a full
// RFC 3339 UTC instant per row:
//
//	timestamp,name,rating,reason
//
// The legacy schema stores a civil date and time local to the
// deployment timezone:
//
//	date,time,name,rating
//
// The schema is a configuration choice, never auto-detected: a codec is
// constructed for exactly one of them.
package csvlog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/teampulse/internal/core/domain"
)

// Schema selects the column layout of the backing CSV file.
type Schema string

// Available schemas.
const (
	// SchemaTimestamp is "timestamp,name,rating,reason" with RFC 3339
	// UTC instants.
	SchemaTimestamp Schema = "timestamp"

	// SchemaDateTime is the legacy "date,time,name,rating" layout with
	// civil date and time in the codec's location.
	SchemaDateTime Schema = "datetime"
)

// IsValid returns true if the schema is recognised.
func (s Schema) IsValid() bool {
	return s == SchemaTimestamp || s == SchemaDateTime
}

const (
	headerTimestamp = "timestamp,name,rating,reason"
	headerDateTime  = "date,time,name,rating"

	timeOfDayFormat = "15:04:05"
)

// Codec converts between []domain.Record and the CSV text blob.
type Codec struct {
	schema Schema
	loc    *time.Location
}

// New creates a codec for the given schema. The location is used to
// render and parse civil dates for the legacy schema; it must not be
// nil.
func New(schema Schema, loc *time.Location) (*Codec, error) {
	if !schema.IsValid() {
		return nil, fmt.Errorf("csvlog: unknown schema %q: %w", schema, domain.ErrInvalidInput)
	}
	if loc == nil {
		return nil, fmt.Errorf("csvlog: nil location: %w", domain.ErrInvalidInput)
	}
	return &Codec{schema: schema, loc: loc}, nil
}

// Header returns the header line for the codec's schema, without a
// trailing newline.
func (c *Codec) Header() string {
	if c.schema == SchemaDateTime {
		return headerDateTime
	}
	return headerTimestamp
}

// InitialContent returns the content a freshly initialized log file
// should carry: the header line and nothing else.
func (c *Codec) InitialContent() string {
	return c.Header() + "\n"
}

// Decode parses a CSV blob into records. It fails soft: empty or
// header-only input decodes to an empty slice. Rows whose timestamp
// cannot be parsed are skipped; rows whose rating cannot be parsed are
// kept with Rating 0 so aggregation can exclude them without losing
// the submission itself.
func (c *Codec) Decode(text string) []domain.Record {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	// Drop the header: the first non-empty line.
	rows := lines
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			rows = lines[i+1:]
			break
		}
	}

	records := make([]domain.Record, 0, len(rows))
	for _, line := range rows {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, ok := c.decodeRow(line)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func (c *Codec) decodeRow(line string) (domain.Record, bool) {
	fields := strings.Split(line, ",")

	if c.schema == SchemaDateTime {
		if len(fields) < 4 {
			return domain.Record{}, false
		}
		ts, err := time.ParseInLocation(
			domain.DayFormat+" "+timeOfDayFormat,
			strings.TrimSpace(fields[0])+" "+strings.TrimSpace(fields[1]),
			c.loc,
		)
		if err != nil {
			return domain.Record{}, false
		}
		return domain.Record{
			Timestamp: ts.UTC(),
			Name:      strings.TrimSpace(fields[2]),
			Rating:    parseRating(fields[3]),
		}, true
	}

	if len(fields) < 3 {
		return domain.Record{}, false
	}
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(fields[0]))
	if err != nil {
		return domain.Record{}, false
	}
	rec := domain.Record{
		Timestamp: ts.UTC(),
		Name:      strings.TrimSpace(fields[1]),
		Rating:    parseRating(fields[2]),
	}
	if len(fields) > 3 {
		rec.Reason = strings.TrimSpace(fields[3])
	}
	return rec, true
}

// Encode renders records as a CSV blob: header, one line per record in
// order, trailing newline. Delimiter characters are stripped from text
// fields so a stray comma can never corrupt the column count.
func (c *Codec) Encode(records []domain.Record) string {
	var b strings.Builder
	b.WriteString(c.Header())
	b.WriteByte('\n')

	for _, rec := range records {
		if c.schema == SchemaDateTime {
			local := rec.Timestamp.In(c.loc)
			b.WriteString(local.Format(domain.DayFormat))
			b.WriteByte(',')
			b.WriteString(local.Format(timeOfDayFormat))
			b.WriteByte(',')
			b.WriteString(sanitizeField(rec.Name))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(rec.Rating))
		} else {
			b.WriteString(rec.Timestamp.UTC().Format(time.RFC3339))
			b.WriteByte(',')
			b.WriteString(sanitizeField(rec.Name))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(rec.Rating))
			b.WriteByte(',')
			b.WriteString(sanitizeField(rec.Reason))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// parseRating returns 0 for anything that is not a plain integer.
// Out-of-range values pass through; domain.Record.HasRating decides
// what counts.
func parseRating(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

var fieldSanitizer = strings.NewReplacer(",", " ", "\n", " ", "\r", " ")

func sanitizeField(s string) string {
	return strings.TrimSpace(fieldSanitizer.Replace(s))
}
