// Package wheel contains the balance wheel domain model: the fixed
// category set, per-category ratings and notes, snapshots, and the
// insertion-ordered history they live in.
package wheel

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Category is one of the six fixed life areas tracked by the wheel.
type Category string

// The six categories. Iteration over the wheel always follows this
// declaration order; the color rule and the chart depend on it.
const (
	Physical     Category = "Physical"
	Emotional    Category = "Emotional"
	Professional Category = "Professional"
	Creativity   Category = "Creativity"
	Financial    Category = "Financial"
	Adventures   Category = "Adventures"
)

// categories holds the fixed iteration order.
var categories = []Category{
	Physical,
	Emotional,
	Professional,
	Creativity,
	Financial,
	Adventures,
}

// Categories returns the six categories in their fixed order.
// The returned slice is a copy and safe to mutate.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Known reports whether c is one of the six wheel categories.
func Known(c Category) bool {
	for _, k := range categories {
		if k == c {
			return true
		}
	}
	return false
}

// Rating bounds and the default shown before any snapshot exists.
const (
	MinRating     = 0
	MaxRating     = 10
	DefaultRating = 5
)

// TimestampLayout is the history key format. String-sorting keys in
// this zero-padded layout yields chronological order.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one category's rating and free-form note.
type Record struct {
	Rating int    `json:"rating" validate:"min=0,max=10"`
	Note   string `json:"note"`
}

// Snapshot maps every category to its record at one point in time.
type Snapshot map[Category]Record

// Entry pairs a snapshot with the history key it was saved under.
type Entry struct {
	Timestamp string   `json:"timestamp"`
	Snapshot  Snapshot `json:"snapshot"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultSnapshot returns the snapshot presented before anything has
// been saved: rating 5, empty note, for every category.
func DefaultSnapshot() Snapshot {
	s := make(Snapshot, len(categories))
	for _, c := range categories {
		s[c] = Record{Rating: DefaultRating}
	}
	return s
}

// BuildSnapshot assembles a snapshot from parallel per-category rating
// and note inputs. Missing notes default to empty. All six categories
// must be rated and no unknown categories are accepted.
func BuildSnapshot(ratings map[Category]int, notes map[Category]string) (Snapshot, error) {
	for c := range ratings {
		if !Known(c) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrUnknownCategory, c)
		}
	}
	for c := range notes {
		if !Known(c) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrUnknownCategory, c)
		}
	}
	s := make(Snapshot, len(categories))
	for _, c := range categories {
		r, ok := ratings[c]
		if !ok {
			return nil, fmt.Errorf("%w: missing rating for %q", ErrInvalidSnapshot, c)
		}
		s[c] = Record{Rating: r, Note: notes[c]}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the snapshot invariant: exactly the six known
// categories, each rating within [0, 10].
func (s Snapshot) Validate() error {
	if len(s) != len(categories) {
		return fmt.Errorf("%w: got %d categories, want %d", ErrInvalidSnapshot, len(s), len(categories))
	}
	for _, c := range categories {
		rec, ok := s[c]
		if !ok {
			return fmt.Errorf("%w: missing category %q", ErrInvalidSnapshot, c)
		}
		if err := validate.Struct(rec); err != nil {
			return fmt.Errorf("%w: %q rating out of range: %w", ErrInvalidSnapshot, c, err)
		}
	}
	return nil
}

// Ratings returns the six ratings in category order. Categories absent
// from a malformed snapshot read as zero.
func (s Snapshot) Ratings() []int {
	out := make([]int, len(categories))
	for i, c := range categories {
		out[i] = s[c].Rating
	}
	return out
}

// Notes returns the six notes in category order.
func (s Snapshot) Notes() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = s[c].Note
	}
	return out
}
