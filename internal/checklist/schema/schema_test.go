package schema

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a11ycheck/internal/checklist/models"
	derrors "a11ycheck/pkg/domain-errors"
)

func validRecord() *models.Record {
	return &models.Record{
		SchemaVersion: "2.2",
		ComponentID:   "components-button--primary",
		ComponentName: "Button",
		ComponentPath: "src/components/Button.stories.tsx",
		ContentHash:   "sha256:0f343b0931126a20f133d67c2b018a3b1f3f4d9c7e8a5b6c7d8e9f0a1b2c3d4e",
		LastUpdated:   time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Results: []models.Item{
			{GuidelineID: "1.1.1", Level: models.LevelA, Status: models.StatusPass},
			{GuidelineID: "1.4.3", Level: models.LevelAA, Status: models.StatusFail, Reason: "button label contrast is 2.9:1"},
			{GuidelineID: "1.2.6", Level: models.LevelAAA, Status: models.StatusNotApplicable},
			{GuidelineID: "4.1.3", Level: models.LevelAA, Status: models.StatusUnknown},
		},
		GeneratedBy: "a11ycheck@0.1.0",
	}
}

func fieldPaths(t *testing.T, err error) []string {
	t.Helper()
	var se *Error
	require.ErrorAs(t, err, &se)
	paths := make([]string, len(se.Fields))
	for i, f := range se.Fields {
		paths[i] = f.Path
	}
	return paths
}

func TestValidate_AcceptsValidRecord(t *testing.T) {
	require.NoError(t, Validate(validRecord()))
}

func TestValidate_RequiredFields(t *testing.T) {
	rec := validRecord()
	rec.SchemaVersion = ""
	rec.ComponentID = ""
	rec.ComponentPath = ""
	rec.Results = nil

	err := Validate(rec)
	require.Error(t, err)
	assert.True(t, derrors.Is(err, derrors.CodeValidation))
	assert.ElementsMatch(t,
		[]string{"schemaVersion", "componentIdentity", "componentPath", "results"},
		fieldPaths(t, err))
}

func TestValidate_FailRequiresReason(t *testing.T) {
	t.Run("missing reason rejected", func(t *testing.T) {
		rec := validRecord()
		rec.Results[1].Reason = ""
		err := Validate(rec)
		require.Error(t, err)
		assert.Equal(t, []string{"results[1].reason"}, fieldPaths(t, err))
	})

	t.Run("blank reason rejected", func(t *testing.T) {
		rec := validRecord()
		rec.Results[1].Reason = "   "
		require.Error(t, Validate(rec))
	})

	t.Run("non-empty reason accepted", func(t *testing.T) {
		rec := validRecord()
		rec.Results[1].Reason = "contrast below 4.5:1"
		require.NoError(t, Validate(rec))
	})

	t.Run("reason not required for pass", func(t *testing.T) {
		rec := validRecord()
		rec.Results[0].Reason = ""
		require.NoError(t, Validate(rec))
	})
}

func TestValidate_EnumMembership(t *testing.T) {
	rec := validRecord()
	rec.Results[0].Status = "passed"
	rec.Results[2].Level = "B"

	err := Validate(rec)
	require.Error(t, err)
	assert.ElementsMatch(t,
		[]string{"results[0].status", "results[2].conformanceLevel"},
		fieldPaths(t, err))
}

func TestValidate_DuplicateGuidelineIDs(t *testing.T) {
	rec := validRecord()
	rec.Results = append(rec.Results, models.Item{
		GuidelineID: "1.1.1", Level: models.LevelA, Status: models.StatusUnknown,
	})

	err := Validate(rec)
	require.Error(t, err)
	assert.Equal(t, []string{"results[4].guidelineId"}, fieldPaths(t, err))
}

func TestValidate_NilRecord(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
	assert.True(t, derrors.Is(err, derrors.CodeValidation))
}

func TestDecode_RejectsMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"schemaVersion": `))
	require.Error(t, err)
	assert.True(t, derrors.Is(err, derrors.CodeValidation))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	rec := validRecord()

	raw, err := Encode(rec)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, rec.SchemaVersion, got.SchemaVersion)
	assert.Equal(t, rec.ComponentID, got.ComponentID)
	assert.Equal(t, rec.ComponentPath, got.ComponentPath)
	assert.Equal(t, rec.ContentHash, got.ContentHash)
	assert.True(t, rec.LastUpdated.Equal(got.LastUpdated))
	assert.Equal(t, rec.Results, got.Results)
	assert.Equal(t, rec.GeneratedBy, got.GeneratedBy)
}

func TestEncode_RefusesInvalidRecord(t *testing.T) {
	rec := validRecord()
	rec.ComponentPath = ""

	_, err := Encode(rec)
	require.Error(t, err)

	var unwrapped *Error
	assert.True(t, errors.As(err, &unwrapped))
}
