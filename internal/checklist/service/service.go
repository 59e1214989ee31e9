// Package service composes the record store, catalogue, and hasher behind
// the operations the HTTP exposure and the CLI consume.
package service

import (
	"context"
	"log/slog"

	"a11ycheck/internal/catalogue"
	"a11ycheck/internal/checklist/models"
	"a11ycheck/internal/checklist/store"
	derrors "a11ycheck/pkg/domain-errors"
)

// Store is the persistence surface the service depends on.
type Store interface {
	Load(identity, componentPath string) (*models.Record, error)
	Save(rec *models.Record) error
	ComponentHash(componentPath string) models.ComponentHashResponse
	IsOutdated(rec *models.Record) bool
	ListAll(ctx context.Context) ([]*models.Record, error)
	ListOutdated(ctx context.Context) ([]*models.Record, error)
	ListFailing(ctx context.Context) ([]*models.Record, error)
}

var _ Store = (*store.Store)(nil)

// Service implements checklist operations over one configured store.
type Service struct {
	store          Store
	logger         *slog.Logger
	defaultVersion string
}

// New creates a Service. defaultVersion applies when a caller does not name
// a guideline-set version; empty means the catalogue default.
func New(st Store, logger *slog.Logger, defaultVersion string) *Service {
	if defaultVersion == "" {
		defaultVersion = catalogue.DefaultVersion
	}
	return &Service{store: st, logger: logger, defaultVersion: defaultVersion}
}

// Load returns the audit state for one component: the persisted record when
// one exists, otherwise a freshly generated default. The response always
// carries the component's current fingerprint.
func (s *Service) Load(ctx context.Context, identity, componentPath, componentName, version string) (*models.LoadChecklistResponse, error) {
	if componentPath == "" {
		return nil, derrors.New(derrors.CodeBadRequest, "componentPath is required")
	}

	resp := &models.LoadChecklistResponse{}

	rec, err := s.store.Load(identity, componentPath)
	switch {
	case err == nil:
		resp.Checklist = rec
		resp.IsOutdated = s.store.IsOutdated(rec)
	case derrors.Is(err, derrors.CodeNotFound):
		// Never audited: hand back a default so the caller can start one.
		resp.Checklist = s.CreateDefault(identity, componentPath, componentName, version)
	default:
		// Corrupted records and I/O failures are real errors; silently
		// replacing them with a default would destroy the audit trail.
		return nil, err
	}

	resp.CurrentHash = s.store.ComponentHash(componentPath).Hash
	return resp, nil
}

// Save refreshes the record's source fingerprint and persists it. The URL
// identity must match the record's identity; a mismatch means the caller is
// about to overwrite someone else's audit.
func (s *Service) Save(ctx context.Context, identity string, rec *models.Record) (*models.SaveChecklistResponse, error) {
	if rec == nil {
		return nil, derrors.New(derrors.CodeBadRequest, "checklist is required")
	}
	if identity != "" && rec.ComponentID != identity {
		return nil, derrors.Newf(derrors.CodeBadRequest,
			"identity %q does not match checklist identity %q", identity, rec.ComponentID)
	}

	current := s.store.ComponentHash(rec.ComponentPath)
	if current.Exists {
		rec.ContentHash = current.Hash
	}

	if err := s.store.Save(rec); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "checklist saved",
		"identity", rec.ComponentID,
		"component_path", rec.ComponentPath,
	)
	return &models.SaveChecklistResponse{Success: true, Hash: current.Hash}, nil
}

// CreateDefault builds a record with one unknown item per catalogue
// guideline for the requested version. The stamped schema version is the
// resolved one so the record never claims a guideline set that does not
// exist.
func (s *Service) CreateDefault(identity, componentPath, componentName, version string) *models.Record {
	if version == "" {
		version = s.defaultVersion
	}
	resolved := catalogue.ResolveVersion(version)
	guidelines := catalogue.Guidelines(resolved)

	results := make([]models.Item, len(guidelines))
	for i, g := range guidelines {
		results[i] = models.Item{
			GuidelineID: g.ID,
			Level:       g.Level,
			Status:      models.StatusUnknown,
		}
	}

	return &models.Record{
		SchemaVersion: resolved,
		ComponentID:   identity,
		ComponentName: componentName,
		ComponentPath: componentPath,
		ContentHash:   "",
		Results:       results,
		GeneratedBy:   "a11ycheck@" + models.Version,
	}
}

// ComponentHash fingerprints a component source file.
func (s *Service) ComponentHash(ctx context.Context, componentPath string) (models.ComponentHashResponse, error) {
	if componentPath == "" {
		return models.ComponentHashResponse{}, derrors.New(derrors.CodeBadRequest, "componentPath is required")
	}
	return s.store.ComponentHash(componentPath), nil
}

// All returns every validated record under the project root. Order is
// unspecified.
func (s *Service) All(ctx context.Context) ([]*models.Record, error) {
	return s.store.ListAll(ctx)
}

// Outdated returns the records whose source fingerprint no longer matches.
func (s *Service) Outdated(ctx context.Context) ([]*models.Record, error) {
	return s.store.ListOutdated(ctx)
}

// Failing returns the records with at least one failing item.
func (s *Service) Failing(ctx context.Context) ([]*models.Record, error) {
	return s.store.ListFailing(ctx)
}
