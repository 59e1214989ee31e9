// Package store is the server-side authority for checklist records: it
// resolves record locations, loads and saves validated records, answers
// staleness queries, and enumerates every record under the project root.
package store

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"a11ycheck/internal/checklist/hash"
	"a11ycheck/internal/checklist/models"
	"a11ycheck/internal/checklist/schema"
	derrors "a11ycheck/pkg/domain-errors"
)

// defaultIgnoreDirs are directory names never descended into during record
// discovery: VCS metadata, dependency caches, and build output.
var defaultIgnoreDirs = []string{
	".git",
	"node_modules",
	"dist",
	"build",
	".next",
	".storybook-static",
	"vendor",
}

// hashWorkers bounds the parallel source-file hashing in ListOutdated.
const hashWorkers = 8

// Store reads and writes checklist records under one project root with one
// location strategy. It holds no mutable state; concurrent use is safe to
// the extent the underlying filesystem is.
type Store struct {
	root        string
	resolver    Resolver
	logger      *slog.Logger
	ignore      []string // extra doublestar patterns, relative to root
	generatedBy string
	now         func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithIgnorePatterns adds doublestar patterns excluded from record
// discovery, on top of the built-in directory skip list.
func WithIgnorePatterns(patterns []string) Option {
	return func(s *Store) { s.ignore = patterns }
}

// WithProvenance overrides the generatedByTag stamped on save.
func WithProvenance(tag string) Option {
	return func(s *Store) { s.generatedBy = tag }
}

// WithClock overrides the timestamp source; tests pin it.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store rooted at the project directory.
func New(root string, resolver Resolver, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		root:        root,
		resolver:    resolver,
		logger:      logger,
		generatedBy: "a11ycheck@" + models.Version,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// recordPath resolves the absolute on-disk location for a record.
func (s *Store) recordPath(identity, componentPath string) (string, error) {
	rel, err := s.resolver.Resolve(identity, componentPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(rel)), nil
}

// sourcePath resolves the absolute location of a component source file.
func (s *Store) sourcePath(componentPath string) string {
	if filepath.IsAbs(componentPath) {
		return componentPath
	}
	return filepath.Join(s.root, filepath.FromSlash(componentPath))
}

// Load reads and validates the record for a component. Absence is reported
// with code not_found so callers can distinguish "never audited" from a
// corrupted audit, which carries code validation.
func (s *Store) Load(identity, componentPath string) (*models.Record, error) {
	path, err := s.recordPath(identity, componentPath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, derrors.Newf(derrors.CodeNotFound, "no checklist record for %s", identity)
		}
		return nil, derrors.Wrap(err, derrors.CodeInternal, "failed to read checklist record")
	}

	rec, err := schema.Decode(raw)
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CodeValidation, "corrupted checklist record at "+path)
	}
	return rec, nil
}

// Save validates and persists a record, stamping the update timestamp and
// provenance tag. The write goes through a temp file and rename so a
// concurrent reader never observes a partial record.
func (s *Store) Save(rec *models.Record) error {
	if rec == nil {
		return derrors.New(derrors.CodeBadRequest, "checklist record is required")
	}

	rec.LastUpdated = s.now().UTC()
	rec.GeneratedBy = s.generatedBy

	raw, err := schema.Encode(rec)
	if err != nil {
		return err
	}

	path, err := s.recordPath(rec.ComponentID, rec.ComponentPath)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return derrors.Wrap(err, derrors.CodeInternal, "failed to create checklist directory")
	}

	tmp, err := os.CreateTemp(dir, ".a11y-*.tmp")
	if err != nil {
		return derrors.Wrap(err, derrors.CodeInternal, "failed to create temp record file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return derrors.Wrap(err, derrors.CodeInternal, "failed to write checklist record")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return derrors.Wrap(err, derrors.CodeInternal, "failed to flush checklist record")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return derrors.Wrap(err, derrors.CodeInternal, "failed to move checklist record into place")
	}
	return nil
}

// ComponentHash fingerprints the component source referenced by a
// project-relative path.
func (s *Store) ComponentHash(componentPath string) models.ComponentHashResponse {
	res := hash.Component(s.sourcePath(componentPath))
	return models.ComponentHashResponse{Hash: res.Digest, Exists: res.Exists}
}

// IsOutdated recomputes the source fingerprint for a record. A missing
// source, a never-computed stored hash, or a digest mismatch all mean the
// audit no longer speaks for the current component.
func (s *Store) IsOutdated(rec *models.Record) bool {
	current := hash.Component(s.sourcePath(rec.ComponentPath))
	if !current.Exists {
		return true
	}
	if rec.ContentHash == "" {
		return true
	}
	return rec.ContentHash != current.Digest
}

// ListAll discovers every record under the walk root. Files that fail
// validation are logged and skipped; bulk enumeration prioritizes partial
// success over total failure. Result order is unspecified.
func (s *Store) ListAll(ctx context.Context) ([]*models.Record, error) {
	walkRoot := s.root
	if pooled, ok := s.resolver.(PooledResolver); ok && pooled.Dir != "" {
		walkRoot = filepath.Join(s.root, filepath.FromSlash(pooled.Dir))
		if _, err := os.Stat(walkRoot); errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
	}

	var records []*models.Record
	err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable directories are skipped, not fatal.
			s.logger.WarnContext(ctx, "skipping unreadable path during checklist discovery",
				"path", path,
				"error", walkErr.Error(),
			)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if s.skipDir(d.Name(), path) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), RecordExt) {
			return nil
		}
		if s.ignored(path) {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to read checklist record",
				"path", path,
				"error", err.Error(),
			)
			return nil
		}
		rec, err := schema.Decode(raw)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping invalid checklist record",
				"path", path,
				"error", err.Error(),
			)
			return nil
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, derrors.Wrap(err, derrors.CodeTimeout, "checklist discovery cancelled")
		}
		return nil, derrors.Wrap(err, derrors.CodeInternal, "checklist discovery failed")
	}
	return records, nil
}

// ListOutdated returns the records whose source fingerprint no longer
// matches. Hashing runs with bounded parallelism; ordering is not part of
// the contract.
func (s *Store) ListOutdated(ctx context.Context) ([]*models.Record, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		outdated []*models.Record
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(hashWorkers)
	for _, rec := range all {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if s.IsOutdated(rec) {
				mu.Lock()
				outdated = append(outdated, rec)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, derrors.Wrap(err, derrors.CodeTimeout, "staleness check cancelled")
	}
	return outdated, nil
}

// ListFailing returns the records with at least one failing item.
func (s *Store) ListFailing(ctx context.Context) ([]*models.Record, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var failing []*models.Record
	for _, rec := range all {
		if rec.HasFailures() {
			failing = append(failing, rec)
		}
	}
	return failing, nil
}

// skipDir reports whether a directory is excluded from discovery.
func (s *Store) skipDir(name, path string) bool {
	for _, skip := range defaultIgnoreDirs {
		if name == skip {
			return true
		}
	}
	return s.ignored(path)
}

// ignored matches a path against the configured doublestar patterns.
func (s *Store) ignored(path string) bool {
	if len(s.ignore) == 0 {
		return false
	}
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
