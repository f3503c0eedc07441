// ABOUTME: Tests for export and import round-trips.
// ABOUTME: JSON and YAML formats plus malformed-input safety.
package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

func seededRepos(t *testing.T) *Repos {
	t.Helper()
	repos := New(storage.NewMemoryStore(), nil)
	require.NoError(t, repos.LoadAll())

	require.NoError(t, repos.Profile.Save(models.NewProfile("Ada", 34, 62, 170)))
	_, err := repos.Workouts.Add("Core Crusher", "Abs", 20, 180)
	require.NoError(t, err)
	require.NoError(t, repos.Water.Add(500))
	_, err = repos.BMI.Save(62, 170)
	require.NoError(t, err)

	return repos
}

func TestExportImportRoundTrip(t *testing.T) {
	src := seededRepos(t)
	out, err := src.ExportJSON()
	require.NoError(t, err)

	dst := New(storage.NewMemoryStore(), nil)
	require.NoError(t, dst.LoadAll())
	require.NoError(t, dst.ImportJSON(out))

	profile := dst.Profile.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "Ada", profile.Name)
	assert.Len(t, dst.Workouts.History(), 1)
	assert.Equal(t, 500, dst.Water.Intake())
	require.Len(t, dst.BMI.History(), 1)
	assert.Equal(t, 21.5, dst.BMI.History()[0].BMI)
}

func TestExportEnvelope(t *testing.T) {
	src := seededRepos(t)
	data := src.GetAllData()

	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, "fittrack", data.Tool)
	assert.False(t, data.ExportedAt.IsZero())

	// Two exports carry distinct identifiers.
	other := src.GetAllData()
	assert.NotEqual(t, data.ExportID, other.ExportID)
}

func TestExportYAMLParses(t *testing.T) {
	src := seededRepos(t)
	out, err := src.ExportYAML()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "fittrack", decoded["tool"])
}

func TestImportMalformedMutatesNothing(t *testing.T) {
	repos := seededRepos(t)
	err := repos.ImportJSON([]byte("{broken"))
	require.Error(t, err)

	// Existing state survives a bad import file.
	profile := repos.Profile.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "Ada", profile.Name)
	assert.Len(t, repos.Workouts.History(), 1)
	assert.Equal(t, 500, repos.Water.Intake())
}

func TestImportNilProfileClearsProfile(t *testing.T) {
	repos := seededRepos(t)
	data := repos.GetAllData()
	data.Profile = nil

	require.NoError(t, repos.ImportData(data))
	assert.Nil(t, repos.Profile.Profile())
	assert.Len(t, repos.Workouts.History(), 1)
}
