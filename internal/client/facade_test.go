package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"a11ycheck/internal/checklist/models"
	"a11ycheck/internal/client/mocks"
	"a11ycheck/internal/platform/config"
	derrors "a11ycheck/pkg/domain-errors"
)

//go:generate mockgen -source=facade.go -destination=mocks/doer_mock.go -package=mocks Doer

type FacadeSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	doer   *mocks.MockDoer
	facade *Facade
}

func TestFacadeSuite(t *testing.T) {
	suite.Run(t, new(FacadeSuite))
}

func (s *FacadeSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.doer = mocks.NewMockDoer(s.ctrl)
	s.facade = New(
		config.Client{BaseURL: "http://authority.test", Timeout: time.Second},
		"2.2",
		slog.New(slog.DiscardHandler),
		WithDoer(s.doer),
	)
}

// requestPath matches an *http.Request by its URL path.
type requestPath struct {
	path string
}

func (m requestPath) Matches(x any) bool {
	req, ok := x.(*http.Request)
	return ok && req.URL.Path == m.path
}

func (m requestPath) String() string {
	return "request for " + m.path
}

func jsonResponse(status int, v any) *http.Response {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(b)),
	}
}

func serverRecord(identity string) *models.Record {
	return &models.Record{
		SchemaVersion: "2.2",
		ComponentID:   identity,
		ComponentPath: "src/components/Button.tsx",
		ContentHash:   "sha256:abc",
		Results: []models.Item{
			{GuidelineID: "1.1.1", Level: models.LevelA, Status: models.StatusPass},
		},
	}
}

func (s *FacadeSuite) TestLoadChecklist_LiveServer() {
	s.doer.EXPECT().
		Do(requestPath{"/a11y-checklist/button--primary"}).
		Return(jsonResponse(http.StatusOK, models.LoadChecklistResponse{
			Checklist:   serverRecord("button--primary"),
			IsOutdated:  true,
			CurrentHash: "sha256:def",
		}), nil).
		Times(1)

	resp, err := s.facade.LoadChecklist(context.Background(), "button--primary", "src/components/Button.tsx", "Button")
	s.Require().NoError(err)
	s.False(resp.ReadOnly)
	s.True(resp.IsOutdated)
	s.Equal("sha256:def", resp.CurrentHash)
	s.Equal(ModeLive, s.facade.Mode())
	s.False(s.facade.IsReadOnlyMode())
}

func (s *FacadeSuite) TestLoadChecklist_FallsBackToDefaultWhenUnreachable() {
	// One failed authority call, then both asset candidates fail too.
	s.doer.EXPECT().
		Do(gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(3)

	resp, err := s.facade.LoadChecklist(context.Background(), "button--primary", "src/components/Button.tsx", "Button")
	s.Require().NoError(err)
	s.True(resp.ReadOnly)
	s.False(resp.IsOutdated)
	s.Empty(resp.CurrentHash)
	s.Equal(ModeDegraded, s.facade.Mode())

	s.Require().NotNil(resp.Checklist)
	s.Greater(len(resp.Checklist.Results), 50)
	for _, item := range resp.Checklist.Results {
		s.Equal(models.StatusUnknown, item.Status)
	}
}

func (s *FacadeSuite) TestLoadChecklist_DegradedSkipsAuthority() {
	s.facade.SetReadOnlyMode(true)

	// Only the two asset candidates are tried; no authority call.
	s.doer.EXPECT().
		Do(requestPath{"/src/components/Button.a11y.json"}).
		Return(nil, errors.New("connection refused")).
		Times(1)
	s.doer.EXPECT().
		Do(requestPath{"/components/Button.a11y.json"}).
		Return(nil, errors.New("connection refused")).
		Times(1)

	resp, err := s.facade.LoadChecklist(context.Background(), "button--primary", "src/components/Button.tsx", "Button")
	s.Require().NoError(err)
	s.True(resp.ReadOnly)
}

func (s *FacadeSuite) TestLoadChecklist_UsesPublishedRecord() {
	s.facade.SetReadOnlyMode(true)

	published := serverRecord("button--primary")
	s.doer.EXPECT().
		Do(requestPath{"/src/components/Button.a11y.json"}).
		Return(jsonResponse(http.StatusOK, published), nil).
		Times(1)

	resp, err := s.facade.LoadChecklist(context.Background(), "button--primary", "src/components/Button.tsx", "Button")
	s.Require().NoError(err)
	s.True(resp.ReadOnly)
	s.False(resp.IsOutdated)
	s.Empty(resp.CurrentHash)
	s.Equal("button--primary", resp.Checklist.ComponentID)

	// Second load for the same component is served from the asset cache.
	resp, err = s.facade.LoadChecklist(context.Background(), "button--primary", "src/components/Button.tsx", "Button")
	s.Require().NoError(err)
	s.Equal("button--primary", resp.Checklist.ComponentID)
}

func (s *FacadeSuite) TestLoadFailureMakesSaveRejectWithoutTransport() {
	// Exactly three transport calls: the failed load plus two asset
	// candidates. The save afterwards must not add a fourth.
	s.doer.EXPECT().
		Do(gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(3)

	resp, err := s.facade.LoadChecklist(context.Background(), "button--primary", "src/components/Button.tsx", "Button")
	s.Require().NoError(err)
	s.True(resp.ReadOnly)
	s.True(s.facade.IsReadOnlyMode())

	_, err = s.facade.SaveChecklist(context.Background(), "button--primary", serverRecord("button--primary"))
	s.Require().Error(err)
	s.True(derrors.Is(err, derrors.CodeReadOnly))
}

func (s *FacadeSuite) TestSaveChecklist_RejectedWhileDegraded() {
	s.facade.SetReadOnlyMode(true)

	// No Do expectation: a transport call would fail the controller.
	resp, err := s.facade.SaveChecklist(context.Background(), "button--primary", serverRecord("button--primary"))
	s.Require().Error(err)
	s.Nil(resp)
	s.True(derrors.Is(err, derrors.CodeReadOnly))
	s.Equal(ModeDegraded, s.facade.Mode())
}

func (s *FacadeSuite) TestSaveChecklist_Live() {
	s.doer.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			s.Equal(http.MethodPut, req.Method)
			s.Equal("/a11y-checklist/button--primary", req.URL.Path)
			s.Equal("application/json", req.Header.Get("Content-Type"))

			var body models.SaveChecklistRequest
			s.Require().NoError(json.NewDecoder(req.Body).Decode(&body))
			s.Equal("button--primary", body.Identity)

			return jsonResponse(http.StatusOK, models.SaveChecklistResponse{
				Success: true,
				Hash:    "sha256:abc",
			}), nil
		}).
		Times(1)

	resp, err := s.facade.SaveChecklist(context.Background(), "button--primary", serverRecord("button--primary"))
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal("sha256:abc", resp.Hash)
}

func (s *FacadeSuite) TestSaveChecklist_ValidationErrorPassesThrough() {
	s.doer.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation",
			Details: `results[0].reason: is required when status is "fail"`,
		}), nil).
		Times(1)

	_, err := s.facade.SaveChecklist(context.Background(), "button--primary", serverRecord("button--primary"))
	s.Require().Error(err)
	s.True(derrors.Is(err, derrors.CodeValidation))
	s.Contains(err.Error(), "results[0].reason")
}

func (s *FacadeSuite) TestSaveChecklist_TransportFailureDegrades() {
	s.doer.EXPECT().
		Do(gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(1)

	_, err := s.facade.SaveChecklist(context.Background(), "button--primary", serverRecord("button--primary"))
	s.Require().Error(err)
	s.True(derrors.Is(err, derrors.CodeUnavailable))
	s.True(s.facade.IsReadOnlyMode())
}

func (s *FacadeSuite) TestCheckServerAvailability_CachesAnswer() {
	s.doer.EXPECT().
		Do(requestPath{"/health"}).
		Return(jsonResponse(http.StatusOK, map[string]string{"status": "ok"}), nil).
		Times(1)

	s.True(s.facade.CheckServerAvailability(context.Background()))
	s.True(s.facade.CheckServerAvailability(context.Background()))
}

func (s *FacadeSuite) TestCheckServerAvailability_NegativeAnswerIsSticky() {
	s.doer.EXPECT().
		Do(requestPath{"/health"}).
		Return(nil, errors.New("connection refused")).
		Times(1)

	s.False(s.facade.CheckServerAvailability(context.Background()))
	s.False(s.facade.CheckServerAvailability(context.Background()))
}

func (s *FacadeSuite) TestClearCache_ResetsProbeAndMode() {
	s.doer.EXPECT().
		Do(requestPath{"/health"}).
		Return(nil, errors.New("connection refused")).
		Times(1)
	s.False(s.facade.CheckServerAvailability(context.Background()))

	s.facade.SetReadOnlyMode(true)
	s.facade.ClearCache()
	s.Equal(ModeUnknown, s.facade.Mode())

	s.doer.EXPECT().
		Do(requestPath{"/health"}).
		Return(jsonResponse(http.StatusOK, map[string]string{"status": "ok"}), nil).
		Times(1)
	s.True(s.facade.CheckServerAvailability(context.Background()))
}

func (s *FacadeSuite) TestGetComponentHash() {
	s.doer.EXPECT().
		Do(requestPath{"/a11y-component-hash"}).
		Return(jsonResponse(http.StatusOK, models.ComponentHashResponse{
			Hash:   "sha256:abc",
			Exists: true,
		}), nil).
		Times(1)

	out, err := s.facade.GetComponentHash(context.Background(), "src/components/Button.tsx")
	s.Require().NoError(err)
	s.True(out.Exists)
	s.Equal("sha256:abc", out.Hash)
}

func (s *FacadeSuite) TestGetComponentHash_RejectedWhileDegraded() {
	s.facade.SetReadOnlyMode(true)

	_, err := s.facade.GetComponentHash(context.Background(), "src/components/Button.tsx")
	s.Require().Error(err)
	s.True(derrors.Is(err, derrors.CodeUnavailable))
}

func (s *FacadeSuite) TestCreateDefaultChecklist() {
	rec := s.facade.CreateDefaultChecklist("button--primary", "src/components/Button.tsx", "Button")

	s.Equal("2.2", rec.SchemaVersion)
	s.Equal("button--primary", rec.ComponentID)
	s.Equal("Button", rec.ComponentName)
	s.Empty(rec.ContentHash)
	s.Greater(len(rec.Results), 50)
	for _, item := range rec.Results {
		s.Equal(models.StatusUnknown, item.Status)
	}
}

func TestAssetCandidatePaths(t *testing.T) {
	cases := []struct {
		name          string
		componentPath string
		want          []string
	}{
		{
			name:          "src prefix tried with and without",
			componentPath: "src/components/Button.tsx",
			want:          []string{"/src/components/Button.a11y.json", "/components/Button.a11y.json"},
		},
		{
			name:          "story file",
			componentPath: "src/components/Button.stories.tsx",
			want:          []string{"/src/components/Button.a11y.json", "/components/Button.a11y.json"},
		},
		{
			name:          "no src prefix",
			componentPath: "lib/Input.vue",
			want:          []string{"/lib/Input.a11y.json"},
		},
		{
			name:          "root level",
			componentPath: "App.tsx",
			want:          []string{"/App.a11y.json"},
		},
		{
			name:          "empty path",
			componentPath: "",
			want:          nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, assetCandidatePaths(tc.componentPath))
		})
	}
}
