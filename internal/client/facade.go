// Package client is the remote-access facade over the checklist authority.
// It talks to the HTTP exposure when the authority is reachable and degrades
// to read-only static-asset lookup when it is not. The read-only flag is
// sticky: once a load fails, no further network attempts are made until the
// caller explicitly resets the facade.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"a11ycheck/internal/catalogue"
	"a11ycheck/internal/checklist/models"
	"a11ycheck/internal/checklist/store"
	"a11ycheck/internal/platform/config"
	derrors "a11ycheck/pkg/domain-errors"
)

// Doer executes a single HTTP request. The facade depends on this seam
// instead of *http.Client directly so transport behaviour can be mocked.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Mode is the facade's connectivity state.
type Mode int

const (
	// ModeUnknown means no load has been attempted since creation or reset.
	ModeUnknown Mode = iota
	// ModeLive means the last load reached the authority.
	ModeLive
	// ModeDegraded means the authority is unreachable and only reads from
	// fallback sources are permitted.
	ModeDegraded
)

func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	case ModeDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// state is the facade's shared mutable state: the sticky mode flag, the
// cached health-probe answer, and the asset record cache. It is reset only
// by explicit calls, never by time.
type state struct {
	mu              sync.Mutex
	mode            Mode
	serverAvailable *bool
	assetRecords    map[string]*models.Record
}

// Facade provides checklist access with degraded-mode fallback.
type Facade struct {
	doer        Doer
	logger      *slog.Logger
	baseURL     string
	assetBase   string
	timeout     time.Duration
	wcagVersion string
	state       *state
}

// Option customizes a Facade.
type Option func(*Facade)

// WithDoer replaces the HTTP transport.
func WithDoer(d Doer) Option {
	return func(f *Facade) { f.doer = d }
}

// New creates a Facade from the client configuration. One facade instance
// is scoped per session; its state is not shared across instances.
func New(cfg config.Client, wcagVersion string, logger *slog.Logger, opts ...Option) *Facade {
	f := &Facade{
		doer:        &http.Client{},
		logger:      logger,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		assetBase:   strings.TrimSuffix(cfg.AssetBaseURL, "/"),
		timeout:     cfg.Timeout,
		wcagVersion: wcagVersion,
		state: &state{
			assetRecords: make(map[string]*models.Record),
		},
	}
	if f.assetBase == "" {
		f.assetBase = f.baseURL
	}
	if f.timeout <= 0 {
		f.timeout = 2 * time.Second
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Mode reports the current connectivity state.
func (f *Facade) Mode() Mode {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	return f.state.mode
}

// IsReadOnlyMode reports whether mutations are currently rejected.
func (f *Facade) IsReadOnlyMode() bool {
	return f.Mode() == ModeDegraded
}

// SetReadOnlyMode forces the mode. Setting false resets the sticky flag so
// the next load attempts the network again.
func (f *Facade) SetReadOnlyMode(readOnly bool) {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	if readOnly {
		f.state.mode = ModeDegraded
	} else {
		f.state.mode = ModeUnknown
	}
}

// ClearCache drops the health-probe answer, the asset record cache, and the
// sticky mode flag.
func (f *Facade) ClearCache() {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	f.state.mode = ModeUnknown
	f.state.serverAvailable = nil
	f.state.assetRecords = make(map[string]*models.Record)
}

// CheckServerAvailability probes the authority's health endpoint. The
// answer is cached until ClearCache so repeated calls within a session pay
// the network timeout at most once.
func (f *Facade) CheckServerAvailability(ctx context.Context) bool {
	f.state.mu.Lock()
	if f.state.serverAvailable != nil {
		available := *f.state.serverAvailable
		f.state.mu.Unlock()
		return available
	}
	f.state.mu.Unlock()

	status, _, err := f.get(ctx, f.baseURL+"/health")
	available := err == nil && status == http.StatusOK

	f.state.mu.Lock()
	f.state.serverAvailable = &available
	f.state.mu.Unlock()
	return available
}

// LoadChecklist fetches the record for a component, falling back to static
// assets and finally a synthesized default when the authority is
// unreachable. Transport failures never surface to the caller from this
// path; they resolve into a best-effort record with ReadOnly set.
func (f *Facade) LoadChecklist(ctx context.Context, identity, componentPath, componentName string) (*models.LoadChecklistResponse, error) {
	if f.IsReadOnlyMode() {
		return f.loadFallback(ctx, identity, componentPath, componentName), nil
	}

	resp, err := f.loadRemote(ctx, identity, componentPath, componentName)
	if err != nil {
		f.logger.WarnContext(ctx, "checklist authority unreachable, entering read-only mode",
			"identity", identity,
			"error", err.Error(),
		)
		f.setMode(ModeDegraded)
		return f.loadFallback(ctx, identity, componentPath, componentName), nil
	}

	f.setMode(ModeLive)
	resp.ReadOnly = false
	return resp, nil
}

// SaveChecklist persists a record through the authority. While degraded it
// fails fast with no transport call and no state change.
func (f *Facade) SaveChecklist(ctx context.Context, identity string, rec *models.Record) (*models.SaveChecklistResponse, error) {
	if f.IsReadOnlyMode() {
		return nil, derrors.New(derrors.CodeReadOnly,
			"checklist authority is unreachable; the checklist is read-only until connectivity is restored")
	}

	body, err := json.Marshal(models.SaveChecklistRequest{Identity: identity, Checklist: rec})
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CodeBadRequest, "encode checklist")
	}

	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPut,
		f.baseURL+"/a11y-checklist/"+url.PathEscape(identity), bytes.NewReader(body))
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CodeInternal, "build save request")
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := f.doer.Do(req)
	if err != nil {
		f.setMode(ModeDegraded)
		return nil, derrors.Wrap(err, derrors.CodeUnavailable, "save checklist")
	}
	defer closeBody(httpResp)

	if httpResp.StatusCode != http.StatusOK {
		if apiErr := decodeAPIError(httpResp); apiErr != nil {
			return nil, apiErr
		}
		return nil, derrors.Newf(derrors.CodeUnavailable, "save checklist: unexpected status %d", httpResp.StatusCode)
	}

	var resp models.SaveChecklistResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, derrors.Wrap(err, derrors.CodeInternal, "decode save response")
	}
	return &resp, nil
}

// GetComponentHash asks the authority for the current source digest.
func (f *Facade) GetComponentHash(ctx context.Context, componentPath string) (models.ComponentHashResponse, error) {
	if f.IsReadOnlyMode() {
		return models.ComponentHashResponse{}, derrors.New(derrors.CodeUnavailable,
			"checklist authority is unreachable; component hash cannot be determined")
	}

	q := url.Values{"componentPath": {componentPath}}
	status, body, err := f.get(ctx, f.baseURL+"/a11y-component-hash?"+q.Encode())
	if err != nil {
		f.setMode(ModeDegraded)
		return models.ComponentHashResponse{}, derrors.Wrap(err, derrors.CodeUnavailable, "get component hash")
	}
	if status != http.StatusOK {
		return models.ComponentHashResponse{}, derrors.Newf(derrors.CodeUnavailable,
			"get component hash: unexpected status %d", status)
	}

	var out models.ComponentHashResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return models.ComponentHashResponse{}, derrors.Wrap(err, derrors.CodeInternal, "decode hash response")
	}
	return out, nil
}

// CreateDefaultChecklist builds an all-unknown record from the guideline
// catalogue without touching the network. The content hash is left empty;
// the authority stamps it on save.
func (f *Facade) CreateDefaultChecklist(identity, componentPath, componentName string) *models.Record {
	version := catalogue.ResolveVersion(f.wcagVersion)
	guidelines := catalogue.Guidelines(version)

	results := make([]models.Item, 0, len(guidelines))
	for _, g := range guidelines {
		results = append(results, models.Item{
			GuidelineID: g.ID,
			Level:       g.Level,
			Status:      models.StatusUnknown,
		})
	}
	return &models.Record{
		SchemaVersion: version,
		ComponentID:   identity,
		ComponentName: componentName,
		ComponentPath: componentPath,
		LastUpdated:   time.Now().UTC(),
		Results:       results,
		GeneratedBy:   "a11ycheck@" + models.Version,
	}
}

func (f *Facade) loadRemote(ctx context.Context, identity, componentPath, componentName string) (*models.LoadChecklistResponse, error) {
	q := url.Values{
		"componentPath": {componentPath},
		"wcagVersion":   {f.wcagVersion},
	}
	if componentName != "" {
		q.Set("componentName", componentName)
	}

	status, body, err := f.get(ctx, f.baseURL+"/a11y-checklist/"+url.PathEscape(identity)+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("load checklist: unexpected status %d", status)
	}

	var out models.LoadChecklistResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode load response: %w", err)
	}
	return &out, nil
}

// loadFallback serves a degraded-mode load: a statically published record if
// one is reachable, otherwise a synthesized default. Staleness cannot be
// determined without the hashing authority, so IsOutdated is false and
// CurrentHash empty.
func (f *Facade) loadFallback(ctx context.Context, identity, componentPath, componentName string) *models.LoadChecklistResponse {
	if rec := f.loadFromAssets(ctx, identity, componentPath); rec != nil {
		return &models.LoadChecklistResponse{Checklist: rec, ReadOnly: true}
	}
	return &models.LoadChecklistResponse{
		Checklist: f.CreateDefaultChecklist(identity, componentPath, componentName),
		ReadOnly:  true,
	}
}

// loadFromAssets tries the deterministic candidate locations for a
// statically published record. Hits are cached per identity and path until
// ClearCache.
func (f *Facade) loadFromAssets(ctx context.Context, identity, componentPath string) *models.Record {
	cacheKey := identity + ":" + componentPath

	f.state.mu.Lock()
	if rec, ok := f.state.assetRecords[cacheKey]; ok {
		f.state.mu.Unlock()
		return rec
	}
	f.state.mu.Unlock()

	for _, candidate := range assetCandidatePaths(componentPath) {
		status, body, err := f.get(ctx, f.assetBase+candidate)
		if err != nil || status != http.StatusOK {
			continue
		}
		var rec models.Record
		if err := json.Unmarshal(body, &rec); err != nil {
			f.logger.WarnContext(ctx, "skipping malformed published record",
				"path", candidate,
				"error", err.Error(),
			)
			continue
		}

		f.state.mu.Lock()
		f.state.assetRecords[cacheKey] = &rec
		f.state.mu.Unlock()
		return &rec
	}
	return nil
}

// assetCandidatePaths derives the locations a published record may occupy,
// mirroring the co-located naming rule. Build pipelines commonly drop the
// leading src/ segment, so both variants are tried.
func assetCandidatePaths(componentPath string) []string {
	rel, err := store.ColocatedResolver{}.Resolve("", componentPath)
	if err != nil {
		return nil
	}

	paths := []string{"/" + rel}
	if trimmed := strings.TrimPrefix(rel, "src/"); trimmed != rel {
		paths = append(paths, "/"+trimmed)
	}
	return paths
}

// get performs a timeout-bounded GET and drains the response so the
// request context can be released before the caller decodes.
func (f *Facade) get(ctx context.Context, rawURL string) (int, []byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := f.doer.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

func (f *Facade) setMode(m Mode) {
	f.state.mu.Lock()
	f.state.mode = m
	f.state.mu.Unlock()
}

// decodeAPIError maps the authority's error envelope back onto a coded
// domain error when the body carries one.
func decodeAPIError(resp *http.Response) error {
	var envelope models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == "" {
		return nil
	}
	return derrors.New(derrors.Code(envelope.Error), envelope.Details)
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
