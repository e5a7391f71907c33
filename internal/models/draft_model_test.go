package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformsForFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []ContentFormat
		want    []Platform
	}{
		{
			name:    "benable only",
			formats: []ContentFormat{FormatBenablePost},
			want:    []Platform{PlatformBenable},
		},
		{
			name:    "instagram formats imply instagram",
			formats: []ContentFormat{FormatBenablePost, FormatInstagramReel, FormatInstagramStory},
			want:    []Platform{PlatformBenable, PlatformInstagram},
		},
		{
			name:    "tiktok video implies tiktok",
			formats: []ContentFormat{FormatBenablePost, FormatTikTokVideo},
			want:    []Platform{PlatformBenable, PlatformTikTok},
		},
		{
			name:    "all three platforms",
			formats: []ContentFormat{FormatBenablePost, FormatInstagramPost, FormatTikTokVideo},
			want:    []Platform{PlatformBenable, PlatformInstagram, PlatformTikTok},
		},
		{
			// Benable is always implied even if no format was selected.
			name:    "empty formats",
			formats: nil,
			want:    []Platform{PlatformBenable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlatformsForFormats(tt.formats))
		})
	}
}

func TestModeEnabled(t *testing.T) {
	assert.True(t, ModeEnabled(ModeTargeted))
	assert.False(t, ModeEnabled(ModeOpen))
	assert.False(t, ModeEnabled(ModeDebut))
}

func TestCompensationConfigUnmarshal(t *testing.T) {
	body := `{"type":"paid","enabled":true,"detail":{"fee_min":200,"fee_max":500}}`

	var cfg CompensationConfig
	require.NoError(t, json.Unmarshal([]byte(body), &cfg))

	assert.Equal(t, CompensationPaid, cfg.Type)
	assert.True(t, cfg.Enabled)

	paid, ok := cfg.Detail.(*PaidDetail)
	require.True(t, ok)
	assert.Equal(t, 200.0, paid.FeeMin)
	assert.Equal(t, 500.0, paid.FeeMax)
}

func TestCompensationConfigUnmarshal_NoDetail(t *testing.T) {
	var cfg CompensationConfig
	require.NoError(t, json.Unmarshal([]byte(`{"type":"gifted","enabled":false}`), &cfg))

	assert.Equal(t, CompensationGifted, cfg.Type)
	assert.Nil(t, cfg.Detail)
}

func TestCompensationConfigUnmarshal_UnknownType(t *testing.T) {
	var cfg CompensationConfig
	err := json.Unmarshal([]byte(`{"type":"equity","detail":{}}`), &cfg)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown compensation type")
}

func TestDefaultCompensationConfigs(t *testing.T) {
	configs := DefaultCompensationConfigs()

	require.Len(t, configs, 5)
	for i, typ := range AllCompensationTypes() {
		assert.Equal(t, typ, configs[i].Type)
		assert.False(t, configs[i].Enabled)
		assert.Nil(t, configs[i].Detail)
	}
}

func TestCreatorFirstName(t *testing.T) {
	c := DiscoverableCreator{Name: "Maya Lindqvist"}
	assert.Equal(t, "Maya", c.FirstName())

	single := DiscoverableCreator{Name: "Cher"}
	assert.Equal(t, "Cher", single.FirstName())
}
