package models

import (
	derrors "a11ycheck/pkg/domain-errors"
)

// Level is a WCAG conformance level.
type Level string

const (
	LevelA   Level = "A"
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// IsValid checks if the level is one of the supported enum values.
func (l Level) IsValid() bool {
	switch l {
	case LevelA, LevelAA, LevelAAA:
		return true
	}
	return false
}

// String returns the string representation.
func (l Level) String() string {
	return string(l)
}

// ParseLevel creates a Level from a string, validating it.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return "", derrors.New(derrors.CodeBadRequest, "conformance level cannot be empty")
	}
	l := Level(s)
	if !l.IsValid() {
		return "", derrors.Newf(derrors.CodeBadRequest, "invalid conformance level %q: must be one of A, AA, AAA", s)
	}
	return l, nil
}
