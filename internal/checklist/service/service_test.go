package service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"a11ycheck/internal/catalogue"
	"a11ycheck/internal/checklist/models"
	"a11ycheck/internal/checklist/store"
	derrors "a11ycheck/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	root    string
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.root = s.T().TempDir()
	st := store.New(s.root, store.ColocatedResolver{}, slog.New(slog.DiscardHandler))
	s.service = New(st, slog.New(slog.DiscardHandler), "")
	s.ctx = context.Background()
}

func (s *ServiceSuite) writeSource(rel, content string) {
	path := filepath.Join(s.root, filepath.FromSlash(rel))
	s.Require().NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
}

func (s *ServiceSuite) TestCreateDefault() {
	rec := s.service.CreateDefault("button", "src/Button.tsx", "Button", "2.2")

	s.Equal("2.2", rec.SchemaVersion)
	s.Equal("button", rec.ComponentID)
	s.Equal("Button", rec.ComponentName)
	s.Empty(rec.ContentHash)
	s.Len(rec.Results, len(catalogue.Guidelines("2.2")))
	for _, item := range rec.Results {
		s.Equal(models.StatusUnknown, item.Status)
	}
}

func (s *ServiceSuite) TestCreateDefault_UnknownVersionResolves() {
	rec := s.service.CreateDefault("button", "src/Button.tsx", "", "9.9")
	s.Equal(catalogue.DefaultVersion, rec.SchemaVersion)
	s.Len(rec.Results, len(catalogue.Guidelines(catalogue.DefaultVersion)))
}

// Full lifecycle: no record, default generated, saved, reloaded current.
func (s *ServiceSuite) TestAuditLifecycle() {
	s.writeSource("src/Button.tsx", "export const Button = () => null;")

	resp, err := s.service.Load(s.ctx, "button", "src/Button.tsx", "Button", "")
	s.Require().NoError(err)
	s.Require().NotNil(resp.Checklist)
	s.False(resp.IsOutdated)
	s.NotEmpty(resp.CurrentHash)
	s.Greater(len(resp.Checklist.Results), 50)
	s.Empty(resp.Checklist.ContentHash, "default record has no fingerprint until first save")

	saveResp, err := s.service.Save(s.ctx, "button", resp.Checklist)
	s.Require().NoError(err)
	s.True(saveResp.Success)
	s.Equal(resp.CurrentHash, saveResp.Hash)

	reloaded, err := s.service.Load(s.ctx, "button", "src/Button.tsx", "Button", "")
	s.Require().NoError(err)
	s.False(reloaded.IsOutdated, "unchanged source must not be stale after save")
	s.Equal(saveResp.Hash, reloaded.Checklist.ContentHash)
	s.NotEmpty(reloaded.Checklist.GeneratedBy)
}

func (s *ServiceSuite) TestLoad_StaleRecord() {
	s.writeSource("src/Card.tsx", "card v1")
	resp, err := s.service.Load(s.ctx, "card", "src/Card.tsx", "", "")
	s.Require().NoError(err)
	_, err = s.service.Save(s.ctx, "card", resp.Checklist)
	s.Require().NoError(err)

	s.writeSource("src/Card.tsx", "card v2")

	reloaded, err := s.service.Load(s.ctx, "card", "src/Card.tsx", "", "")
	s.Require().NoError(err)
	s.True(reloaded.IsOutdated)
	s.NotEqual(reloaded.Checklist.ContentHash, reloaded.CurrentHash)
}

func (s *ServiceSuite) TestLoad_RequiresComponentPath() {
	_, err := s.service.Load(s.ctx, "button", "", "", "")
	s.Require().Error(err)
	s.True(derrors.Is(err, derrors.CodeBadRequest))
}

func (s *ServiceSuite) TestLoad_CorruptRecordPropagates() {
	s.writeSource("src/Broken.a11y.json", "{ nope")

	_, err := s.service.Load(s.ctx, "broken", "src/Broken.tsx", "", "")
	s.Require().Error(err)
	s.True(derrors.Is(err, derrors.CodeValidation))
}

func (s *ServiceSuite) TestSave_IdentityMismatch() {
	rec := s.service.CreateDefault("button", "src/Button.tsx", "", "")

	_, err := s.service.Save(s.ctx, "other-component", rec)
	s.Require().Error(err)
	s.True(derrors.Is(err, derrors.CodeBadRequest))
}

func (s *ServiceSuite) TestSave_MissingSourceKeepsStoredHash() {
	// Saving an audit for a deleted source must not wipe the last known
	// fingerprint; the record simply stays outdated.
	rec := s.service.CreateDefault("gone", "src/Gone.tsx", "", "")
	rec.ContentHash = "sha256:1111111111111111111111111111111111111111111111111111111111111111"

	resp, err := s.service.Save(s.ctx, "gone", rec)
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Empty(resp.Hash)

	loaded, err := s.service.Load(s.ctx, "gone", "src/Gone.tsx", "", "")
	s.Require().NoError(err)
	s.Equal("sha256:1111111111111111111111111111111111111111111111111111111111111111", loaded.Checklist.ContentHash)
	s.True(loaded.IsOutdated)
}

func (s *ServiceSuite) TestBatchQueries() {
	s.writeSource("src/Pass.tsx", "pass")
	pass, err := s.service.Load(s.ctx, "pass", "src/Pass.tsx", "", "")
	s.Require().NoError(err)
	_, err = s.service.Save(s.ctx, "pass", pass.Checklist)
	s.Require().NoError(err)

	s.writeSource("src/Fail.tsx", "fail")
	fail, err := s.service.Load(s.ctx, "fail", "src/Fail.tsx", "", "")
	s.Require().NoError(err)
	fail.Checklist.Results[0].Status = models.StatusFail
	fail.Checklist.Results[0].Reason = "icon button has no accessible name"
	_, err = s.service.Save(s.ctx, "fail", fail.Checklist)
	s.Require().NoError(err)
	s.writeSource("src/Fail.tsx", "fail v2") // now also outdated

	all, err := s.service.All(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)

	outdated, err := s.service.Outdated(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(outdated, 1)
	s.Equal("fail", outdated[0].ComponentID)

	failing, err := s.service.Failing(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(failing, 1)
	s.Equal("fail", failing[0].ComponentID)
}

func (s *ServiceSuite) TestComponentHash() {
	s.writeSource("src/H.tsx", "h")

	resp, err := s.service.ComponentHash(s.ctx, "src/H.tsx")
	s.Require().NoError(err)
	s.True(resp.Exists)
	s.NotEmpty(resp.Hash)

	missing, err := s.service.ComponentHash(s.ctx, "src/Missing.tsx")
	s.Require().NoError(err)
	s.False(missing.Exists)
	s.Empty(missing.Hash)

	_, err = s.service.ComponentHash(s.ctx, "")
	s.Require().Error(err)
}
