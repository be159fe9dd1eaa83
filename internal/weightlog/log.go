// Package weightlog holds the append-only list of weight samples recorded
// during one session.
package weightlog

import (
	"errors"
	"fmt"
)

// ErrInvalidWeight is returned when a logged weight is not positive.
var ErrInvalidWeight = errors.New("weight_kg must be greater than 0")

// Entry is one logged weight sample.
type Entry struct {
	Date     Date    `json:"date"      db:"date"`
	WeightKG float64 `json:"weight_kg" db:"weight_kg"`
}

// Log is ordered by insertion. Entries are never edited or removed, and
// several entries may share a date.
type Log []Entry

// Validate checks a weight before it is logged.
func Validate(weightKG float64) error {
	if weightKG <= 0 {
		return fmt.Errorf("%w, got %g", ErrInvalidWeight, weightKG)
	}
	return nil
}

// Append returns a new log with (date, weightKG) added at the end. The input
// log is never modified, so callers holding it keep a consistent view.
func Append(log Log, date Date, weightKG float64) (Log, error) {
	if err := Validate(weightKG); err != nil {
		return log, err
	}
	next := make(Log, len(log), len(log)+1)
	copy(next, log)
	return append(next, Entry{Date: date, WeightKG: weightKG}), nil
}

// Series returns the entries for charting in the order they were logged.
// Entries are not sorted by date: a back-dated entry appears where it was
// added.
func Series(log Log) []Entry {
	out := make([]Entry, len(log))
	copy(out, log)
	return out
}
