package registry

import (
	"testing"

	"github.com/hahaha-network/revsync/internal/common"
	"github.com/hahaha-network/revsync/internal/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setGroups(t *testing.T, groups []map[string]any) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("groups", groups)
}

func TestLoad(t *testing.T) {
	setGroups(t, []map[string]any{
		{"id": "grp-channels", "name": "HaHaHa Channels"},
		{"id": "grp-art", "name": "HaHaHa Art Tracks", "regions": []string{"ALL"}},
		{"id": "grp-shorts", "name": "HaHaHa Shorts", "regions": []string{"US_ONLY"}},
	})

	groupings, err := Load()
	require.NoError(t, err)
	require.Len(t, groupings, 3)

	// No regions key defaults to both variants.
	assert.Equal(t, []model.RegionFilter{model.RegionAll, model.RegionUS}, groupings[0].Regions)
	assert.Equal(t, []model.RegionFilter{model.RegionAll}, groupings[1].Regions)
	assert.Equal(t, []model.RegionFilter{model.RegionUS}, groupings[2].Regions)

	assert.Equal(t, "grp-channels", groupings[0].ID)
	assert.Equal(t, "HaHaHa Channels", groupings[0].Name)
}

func TestLoad_Empty(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	_, err := Load()
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestLoad_MissingID(t *testing.T) {
	setGroups(t, []map[string]any{
		{"name": "HaHaHa Channels"},
	})

	_, err := Load()
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "id is required")
}

func TestLoad_MissingName(t *testing.T) {
	setGroups(t, []map[string]any{
		{"id": "grp-channels", "name": "  "},
	})

	_, err := Load()
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoad_UnknownRegion(t *testing.T) {
	setGroups(t, []map[string]any{
		{"id": "grp-channels", "name": "HaHaHa Channels", "regions": []string{"EU"}},
	})

	_, err := Load()
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.Contains(t, err.Error(), `unknown region "EU"`)
}

func TestLoad_DuplicateHeader(t *testing.T) {
	// Two groupings with the same display name would write into the same
	// column.
	setGroups(t, []map[string]any{
		{"id": "grp-1", "name": "HaHaHa Channels", "regions": []string{"ALL"}},
		{"id": "grp-2", "name": "HaHaHa Channels", "regions": []string{"ALL"}},
	})

	_, err := Load()
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "duplicate column header")
}

func TestLoad_USVariantCollision(t *testing.T) {
	// "X US" as a literal name collides with the US variant header of "X".
	setGroups(t, []map[string]any{
		{"id": "grp-1", "name": "HaHaHa Channels"},
		{"id": "grp-2", "name": "HaHaHa Channels US", "regions": []string{"ALL"}},
	})

	_, err := Load()
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestHeaders(t *testing.T) {
	groupings := []model.Grouping{
		{ID: "a", Name: "Group A", Regions: []model.RegionFilter{model.RegionAll, model.RegionUS}},
		{ID: "b", Name: "Group B", Regions: []model.RegionFilter{model.RegionAll}},
	}

	assert.Equal(t, []string{"Group A", "Group A US", "Group B"}, Headers(groupings))
}
