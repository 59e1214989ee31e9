// Package schema validates persisted checklist records. Validation runs in
// two phases: structural predicates first (required fields, enum
// membership), then business rules (fail requires a reason, no duplicate
// guideline ids). A record is either accepted whole or rejected with the
// offending field paths; there is no partial acceptance.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"a11ycheck/internal/checklist/models"
	derrors "a11ycheck/pkg/domain-errors"
)

// FieldError pins a violation to a field path within the record.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (f FieldError) String() string {
	return fmt.Sprintf("%s: %s", f.Path, f.Message)
}

// Error aggregates every violation found in one validation pass.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.String()
	}
	return "invalid checklist record: " + strings.Join(msgs, "; ")
}

// check is one composable validation predicate. Predicates append to the
// shared violation list instead of failing fast so the caller sees every
// problem at once.
type check func(rec *models.Record, violations *[]FieldError)

var structuralChecks = []check{
	checkRequiredFields,
	checkItemShape,
}

var ruleChecks = []check{
	checkFailRequiresReason,
	checkDuplicateGuidelines,
}

// Validate enforces the record invariants. The returned error wraps *Error
// and carries the validation domain code.
func Validate(rec *models.Record) error {
	if rec == nil {
		return derrors.New(derrors.CodeValidation, "checklist record is nil")
	}

	var violations []FieldError
	for _, c := range structuralChecks {
		c(rec, &violations)
	}
	// Rule checks assume a structurally sound record.
	if len(violations) == 0 {
		for _, c := range ruleChecks {
			c(rec, &violations)
		}
	}
	if len(violations) > 0 {
		return derrors.Wrap(&Error{Fields: violations}, derrors.CodeValidation, "checklist record failed validation")
	}
	return nil
}

// Decode parses raw JSON into a record and validates it.
func Decode(raw []byte) (*models.Record, error) {
	var rec models.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, derrors.Wrap(err, derrors.CodeValidation, "checklist record is not valid JSON")
	}
	if err := Validate(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Encode validates a record and serializes it human-diffably.
func Encode(rec *models.Record) ([]byte, error) {
	if err := Validate(rec); err != nil {
		return nil, err
	}
	return json.MarshalIndent(rec, "", "  ")
}

func checkRequiredFields(rec *models.Record, violations *[]FieldError) {
	if rec.SchemaVersion == "" {
		*violations = append(*violations, FieldError{Path: "schemaVersion", Message: "is required"})
	}
	if rec.ComponentID == "" {
		*violations = append(*violations, FieldError{Path: "componentIdentity", Message: "is required"})
	}
	if rec.ComponentPath == "" {
		*violations = append(*violations, FieldError{Path: "componentPath", Message: "is required"})
	}
	if rec.Results == nil {
		*violations = append(*violations, FieldError{Path: "results", Message: "is required"})
	}
}

func checkItemShape(rec *models.Record, violations *[]FieldError) {
	for i, item := range rec.Results {
		if item.GuidelineID == "" {
			*violations = append(*violations, FieldError{
				Path:    fmt.Sprintf("results[%d].guidelineId", i),
				Message: "is required",
			})
		}
		if !item.Level.IsValid() {
			*violations = append(*violations, FieldError{
				Path:    fmt.Sprintf("results[%d].conformanceLevel", i),
				Message: fmt.Sprintf("%q is not one of A, AA, AAA", item.Level),
			})
		}
		if !item.Status.IsValid() {
			*violations = append(*violations, FieldError{
				Path:    fmt.Sprintf("results[%d].status", i),
				Message: fmt.Sprintf("%q is not one of pass, fail, not_applicable, unknown", item.Status),
			})
		}
	}
}

// checkFailRequiresReason: a failing item without a non-blank reason is the
// single most important rule here; a bare "fail" is not auditable.
func checkFailRequiresReason(rec *models.Record, violations *[]FieldError) {
	for i, item := range rec.Results {
		if item.Status == models.StatusFail && strings.TrimSpace(item.Reason) == "" {
			*violations = append(*violations, FieldError{
				Path:    fmt.Sprintf("results[%d].reason", i),
				Message: "is required when status is \"fail\"",
			})
		}
	}
}

func checkDuplicateGuidelines(rec *models.Record, violations *[]FieldError) {
	seen := make(map[string]int, len(rec.Results))
	for i, item := range rec.Results {
		if first, dup := seen[item.GuidelineID]; dup {
			*violations = append(*violations, FieldError{
				Path:    fmt.Sprintf("results[%d].guidelineId", i),
				Message: fmt.Sprintf("duplicates results[%d] (%s)", first, item.GuidelineID),
			})
			continue
		}
		seen[item.GuidelineID] = i
	}
}
