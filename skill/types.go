package skill

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph construction, validation and solver admission.
var (
	// ErrMalformedCatalogue indicates a bad record at catalogue load.
	ErrMalformedCatalogue = errors.New("skill: malformed catalogue")

	// ErrCycleDetected indicates that some skill is its own transitive prerequisite.
	ErrCycleDetected = errors.New("skill: cycle detected")

	// ErrDanglingPrerequisite indicates a prerequisite id that is not in the graph.
	ErrDanglingPrerequisite = errors.New("skill: dangling prerequisite")

	// ErrUnknownSkill indicates an operation referenced a non-existent skill.
	ErrUnknownSkill = errors.New("skill: unknown skill")

	// ErrSizeLimitExceeded indicates a brute-force component was asked to
	// enumerate more elements than its bound allows.
	ErrSizeLimitExceeded = errors.New("skill: size limit exceeded")

	// ErrGraphNotValidated indicates a solver was invoked on a graph that has
	// not passed Validate.
	ErrGraphNotValidated = errors.New("skill: graph not validated")
)

// Category is the derived classification of a skill.
type Category int

const (
	// Basic skills have no prerequisites.
	Basic Category = iota

	// Senior skills draw every prerequisite from a single layer:
	// all Basic or all non-Basic.
	Senior

	// Hybrid skills depend on both Basic and non-Basic skills.
	Hybrid
)

// String returns the lower-case label used in catalogue files.
func (c Category) String() string {
	switch c {
	case Basic:
		return "basic"
	case Senior:
		return "senior"
	case Hybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// MarshalText encodes the label, so Category keys read well in JSON maps.
func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// ParseCategory maps a catalogue label to a Category (case-insensitive).
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return Basic, true
	case "senior":
		return Senior, true
	case "hybrid":
		return Hybrid, true
	}

	return 0, false
}

// Record is one raw row of the catalogue table, before graph construction.
// Category is optional; when set it must agree with the prerequisite set.
type Record struct {
	ID            string
	Name          string
	Value         float64
	TimeCost      float64
	Complexity    int
	Prerequisites []string
	Category      string
}

// Skill is an immutable catalogue entry held by a Graph.
type Skill struct {
	// ID uniquely identifies the skill within its Graph.
	ID string

	// Name is a display label; no algorithm reads it.
	Name string

	// Value is the positive market value score.
	Value float64

	// TimeCost is the positive number of hours needed to acquire the skill.
	// It is paid once regardless of how many dependents need it.
	TimeCost float64

	// Complexity is the positive ordinal difficulty.
	Complexity int

	// Prerequisites holds the sorted ids this skill depends on.
	Prerequisites []string

	// Category is derived once at load from the prerequisite set.
	Category Category
}

// Basic reports whether s has no prerequisites.
func (s Skill) Basic() bool { return len(s.Prerequisites) == 0 }

// clone returns a copy of s whose Prerequisites slice is not shared.
func (s Skill) clone() Skill {
	s.Prerequisites = append([]string(nil), s.Prerequisites...)

	return s
}

// RecordError describes why a catalogue row was rejected.
type RecordError struct {
	Index  int    // zero-based row index
	ID     string // id of the row, possibly empty
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("skill: malformed catalogue: row %d (%q): %s", e.Index, e.ID, e.Reason)
}

// Unwrap exposes ErrMalformedCatalogue to errors.Is.
func (e *RecordError) Unwrap() error { return ErrMalformedCatalogue }

// CycleError reports the exact loop found by the validator. Cycle is closed:
// Cycle[0] == Cycle[len(Cycle)-1], and every consecutive pair is an edge
// skill → prerequisite.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return "skill: cycle detected: " + strings.Join(e.Cycle, " -> ")
}

// Unwrap exposes ErrCycleDetected to errors.Is.
func (e *CycleError) Unwrap() error { return ErrCycleDetected }

// DanglingError reports a prerequisite id that is not a key of the graph.
type DanglingError struct {
	Skill   string // the skill declaring the prerequisite
	Missing string // the absent prerequisite id
}

func (e *DanglingError) Error() string {
	return fmt.Sprintf("skill: dangling prerequisite: %s requires %s", e.Skill, e.Missing)
}

// Unwrap exposes ErrDanglingPrerequisite to errors.Is.
func (e *DanglingError) Unwrap() error { return ErrDanglingPrerequisite }

// SizeError reports which component refused an oversized input.
type SizeError struct {
	Component string
	Size      int
	Limit     int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("skill: size limit exceeded: %s got %d elements, limit %d", e.Component, e.Size, e.Limit)
}

// Unwrap exposes ErrSizeLimitExceeded to errors.Is.
func (e *SizeError) Unwrap() error { return ErrSizeLimitExceeded }

// CheckSize returns a *SizeError when size exceeds limit, nil otherwise.
func CheckSize(component string, size, limit int) error {
	if size > limit {
		return &SizeError{Component: component, Size: size, Limit: limit}
	}

	return nil
}

// UnknownError wraps ErrUnknownSkill with the offending id.
func UnknownError(id string) error {
	return fmt.Errorf("%w: %q", ErrUnknownSkill, id)
}
