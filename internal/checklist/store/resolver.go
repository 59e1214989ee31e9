package store

import (
	"path/filepath"
	"regexp"
	"strings"

	derrors "a11ycheck/pkg/domain-errors"
)

// RecordExt is the file extension convention for persisted records.
const RecordExt = ".a11y.json"

// Resolver maps a component identity and source path to the on-disk record
// location, relative to the project root. Resolution is pure and
// deterministic; the two implementations are mutually exclusive per
// deployment, selected by configuration.
type Resolver interface {
	// Resolve returns the record path for the component. Paths are
	// slash-normalized and relative to the project root.
	Resolve(identity, componentPath string) (string, error)
}

// sourceSuffix strips component source extensions, including the
// `.stories.<ext>` convention, when deriving a co-located record name.
// Leftmost match wins, so `Button.stories.tsx` loses the whole suffix.
var sourceSuffix = regexp.MustCompile(`(?i)\.(tsx?|jsx?|vue|stories\.(tsx?|jsx?|vue))$`)

// unsafeChars collapses identity characters that cannot appear in a file
// name under pooled storage.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// PooledResolver stores every record under one directory, named by the
// component identity.
type PooledResolver struct {
	// Dir is the pool directory, relative to the project root.
	Dir string
}

// Resolve derives `<dir>/<identity>.a11y.json`.
func (r PooledResolver) Resolve(identity, _ string) (string, error) {
	if identity == "" {
		return "", derrors.New(derrors.CodeBadRequest, "component identity is required for pooled storage")
	}
	name := unsafeChars.ReplaceAllString(identity, "-")
	return filepath.ToSlash(filepath.Join(r.Dir, name+RecordExt)), nil
}

// ColocatedResolver places the record beside the audited source file.
type ColocatedResolver struct{}

// Resolve strips the source extension (including a `.stories.<ext>` suffix)
// from the component path and appends the record extension.
func (ColocatedResolver) Resolve(_, componentPath string) (string, error) {
	if componentPath == "" {
		return "", derrors.New(derrors.CodeBadRequest, "component path is required for co-located storage")
	}
	normalized := filepath.ToSlash(componentPath)
	normalized = strings.TrimPrefix(normalized, "./")
	base := sourceSuffix.ReplaceAllString(normalized, "")
	return base + RecordExt, nil
}
