// Package daterange turns caller supplied day inputs into inclusive calendar-day
// predicates that the persistence layer can apply to a planned_date column.
//
// Every endpoint is reduced to a YYYY-MM-DD token in UTC, so the same instant
// maps to the same day no matter where the server runs.
package daterange

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DayLayout is the canonical calendar-day token format.
const DayLayout = "2006-01-02"

// Mode tells the persistence layer how to compare planned dates.
type Mode string

const (
	// ModeExact matches a single day with an equality comparison.
	ModeExact Mode = "EXACT"
	// ModeRange matches every day between Start and End, both inclusive.
	ModeRange Mode = "RANGE"
)

// ErrInvalidDateInput is returned (wrapped) when an endpoint is not a calendar day.
var ErrInvalidDateInput = errors.New("invalid date input")

// InvalidDateInputError names the endpoint that failed to parse.
type InvalidDateInputError struct {
	Field string
	Input string
}

func (e *InvalidDateInputError) Error() string {
	return fmt.Sprintf("%s: %q is not a calendar day (expected YYYY-MM-DD)", e.Field, e.Input)
}

// Is lets errors.Is match ErrInvalidDateInput.
func (e *InvalidDateInputError) Is(target error) bool {
	return target == ErrInvalidDateInput
}

// Predicate is a resolved inclusive day range.
type Predicate struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Mode  Mode   `json:"mode"`
}

// Contains reports whether day (a canonical token) falls inside the predicate.
func (p Predicate) Contains(day string) bool {
	if p.Mode == ModeExact {
		return day == p.Start
	}
	return day >= p.Start && day <= p.End
}

func (p Predicate) String() string {
	if p.Mode == ModeExact {
		return p.Start
	}
	return p.Start + ".." + p.End
}

// accepted lists the layouts tried, in order, for string inputs. Layouts
// without an offset are read as UTC.
var accepted = []string{
	DayLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Resolve builds a predicate from two string endpoints. An empty endpoint
// means the range is not fully selected yet and yields (nil, nil).
func Resolve(from, to string) (*Predicate, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return nil, nil
	}

	start, err := parseField("from", from)
	if err != nil {
		return nil, err
	}
	end, err := parseField("to", to)
	if err != nil {
		return nil, err
	}
	return build(start, end), nil
}

// ResolveTimes builds a predicate from two instants; a nil endpoint yields (nil, nil).
func ResolveTimes(from, to *time.Time) (*Predicate, error) {
	if from == nil || to == nil {
		return nil, nil
	}
	start, ok := dayOf(*from)
	if !ok {
		return nil, &InvalidDateInputError{Field: "from", Input: from.Format(time.RFC3339)}
	}
	end, ok := dayOf(*to)
	if !ok {
		return nil, &InvalidDateInputError{Field: "to", Input: to.Format(time.RFC3339)}
	}
	return build(start, end), nil
}

// ParseDay returns the canonical day token for a single string input.
func ParseDay(s string) (string, error) {
	return parseField("date", strings.TrimSpace(s))
}

// Day returns the UTC calendar day of t.
func Day(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

func parseField(field, input string) (string, error) {
	for _, layout := range accepted {
		t, err := time.Parse(layout, input)
		if err != nil {
			continue
		}
		if day, ok := dayOf(t); ok {
			return day, nil
		}
		break
	}
	return "", &InvalidDateInputError{Field: field, Input: input}
}

// dayOf is Day restricted to four-digit UTC years, so tokens stay
// YYYY-MM-DD and compare correctly as strings.
func dayOf(t time.Time) (string, bool) {
	if y := t.UTC().Year(); y < 0 || y > 9999 {
		return "", false
	}
	return Day(t), true
}

// build orders the tokens so that swapped endpoints resolve identically.
func build(start, end string) *Predicate {
	if end < start {
		start, end = end, start
	}
	if start == end {
		return &Predicate{Start: start, End: end, Mode: ModeExact}
	}
	return &Predicate{Start: start, End: end, Mode: ModeRange}
}
