// Package catalogue holds the immutable guideline reference tables keyed by
// guideline-set version. Records denormalize from here at creation time; the
// catalogue itself is never mutated at runtime.
package catalogue

import (
	"a11ycheck/internal/checklist/models"
)

// DefaultVersion is the guideline-set version used when a caller asks for a
// version the catalogue does not know.
const DefaultVersion = "2.2"

// Guideline is one success criterion in the reference table.
type Guideline struct {
	ID          string       `json:"id"`
	Level       models.Level `json:"conformanceLevel"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	URL         string       `json:"referenceUrl"`
}

// tables maps guideline-set versions to their criteria.
var tables = map[string][]Guideline{
	DefaultVersion: wcag22,
}

// ResolveVersion maps an arbitrary version string to a version the
// catalogue actually carries. Unknown versions fall back to DefaultVersion;
// callers rely on this never failing, so the leniency lives here and
// nowhere else.
func ResolveVersion(version string) string {
	if _, ok := tables[version]; ok {
		return version
	}
	return DefaultVersion
}

// Guidelines returns the ordered criteria for a guideline-set version.
// The returned slice is shared; callers must not mutate it.
func Guidelines(version string) []Guideline {
	return tables[ResolveVersion(version)]
}

// Lookup finds a single guideline by id within a version. The boolean is
// false when the id is not in the table.
func Lookup(id, version string) (Guideline, bool) {
	for _, g := range Guidelines(version) {
		if g.ID == id {
			return g, true
		}
	}
	return Guideline{}, false
}
