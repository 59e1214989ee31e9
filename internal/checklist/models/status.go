package models

import (
	derrors "a11ycheck/pkg/domain-errors"
)

// Status is the audit outcome recorded for a single guideline.
type Status string

const (
	StatusPass          Status = "pass"
	StatusFail          Status = "fail"
	StatusNotApplicable Status = "not_applicable"
	StatusUnknown       Status = "unknown"
)

// IsValid checks if the status is one of the supported enum values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPass, StatusFail, StatusNotApplicable, StatusUnknown:
		return true
	}
	return false
}

// String returns the string representation.
func (s Status) String() string {
	return string(s)
}

// ParseStatus creates a Status from a string, validating it.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return "", derrors.New(derrors.CodeBadRequest, "status cannot be empty")
	}
	st := Status(s)
	if !st.IsValid() {
		return "", derrors.Newf(derrors.CodeBadRequest, "invalid status %q: must be one of pass, fail, not_applicable, unknown", s)
	}
	return st, nil
}
