package util

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lockey_errors "github.com/ZORO77a/Lockey/errors"
	"github.com/ZORO77a/Lockey/model"
)

func TestNormalizePolicyConfig_FullDocument(t *testing.T) {
	v := NewValidationUtil()

	cfg, err := v.NormalizePolicyConfig(map[string]interface{}{
		"latitude":     9.358667,
		"longitude":    "76.677297",
		"radius_m":     float64(250),
		"allowed_ssid": "CorpWiFi",
		"start_time":   "08:30",
		"end_time":     "18:00",
	})

	require.NoError(t, err)
	assert.InDelta(t, 9.358667, cfg.Latitude, 1e-9)
	assert.InDelta(t, 76.677297, cfg.Longitude, 1e-9)
	assert.Equal(t, 250, cfg.RadiusMeters)
	assert.Equal(t, "CorpWiFi", cfg.NetworkFingerprint)
	assert.Equal(t, "08:30", cfg.StartTime.String())
	assert.Equal(t, "18:00", cfg.EndTime.String())
	assert.True(t, cfg.UpdatedAt.IsZero())
}

func TestNormalizePolicyConfig_AliasesAndDefaults(t *testing.T) {
	v := NewValidationUtil()

	cfg, err := v.NormalizePolicyConfig(map[string]interface{}{
		"lat":          "1.5",
		"lon":          2,
		"allowed_ssid": nil,
	})

	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Latitude)
	assert.Equal(t, 2.0, cfg.Longitude)
	assert.Equal(t, model.DefaultRadiusMeters, cfg.RadiusMeters)
	assert.Equal(t, "", cfg.NetworkFingerprint)
	assert.Equal(t, model.DefaultStartTime, cfg.StartTime)
	assert.Equal(t, model.DefaultEndTime, cfg.EndTime)
}

func TestNormalizePolicyConfig_EmptyDocument(t *testing.T) {
	cfg, err := NewValidationUtil().NormalizePolicyConfig(map[string]interface{}{})

	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Latitude)
	assert.Equal(t, 0.0, cfg.Longitude)
	assert.Equal(t, 1000, cfg.RadiusMeters)
	assert.Equal(t, "09:00", cfg.StartTime.String())
	assert.Equal(t, "17:00", cfg.EndTime.String())
}

func TestNormalizePolicyConfig_ZeroRadiusAccepted(t *testing.T) {
	cfg, err := NewValidationUtil().NormalizePolicyConfig(map[string]interface{}{"radius": "0"})

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.RadiusMeters)
}

func TestNormalizePolicyConfig_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]interface{}
		field string
	}{
		{"non-numeric latitude", map[string]interface{}{"latitude": "north"}, "latitude"},
		{"non-numeric lon alias", map[string]interface{}{"lon": true}, "lon"},
		{"latitude out of range", map[string]interface{}{"latitude": 91.0}, "latitude"},
		{"negative radius", map[string]interface{}{"radius_m": -1}, "radius_m"},
		{"fractional radius", map[string]interface{}{"radius_m": 10.5}, "radius_m"},
		{"radius text", map[string]interface{}{"radius": "wide"}, "radius"},
		{"hour out of range", map[string]interface{}{"start_time": "24:00"}, "start_time"},
		{"minute out of range", map[string]interface{}{"end_time": "17:60"}, "end_time"},
		{"not a clock", map[string]interface{}{"end_time": "5pm"}, "end_time"},
		{"clock as number", map[string]interface{}{"start_time": 900}, "start_time"},
		{"null start time", map[string]interface{}{"start_time": nil}, "start_time"},
		{"null end time", map[string]interface{}{"start_time": "09:00", "end_time": nil}, "end_time"},
		{"empty start time", map[string]interface{}{"start_time": ""}, "start_time"},
		{"blank end time", map[string]interface{}{"end_time": "  "}, "end_time"},
	}

	v := NewValidationUtil()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := v.NormalizePolicyConfig(tt.raw)

			require.Error(t, err)
			assert.True(t, errors.Is(err, lockey_errors.ErrInvalidPolicyData))
			var verr *lockey_errors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, model.PolicyConfig{}, cfg)
		})
	}
}

func TestValidateBypassRequest(t *testing.T) {
	v := NewValidationUtil()
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	assert.NoError(t, v.ValidateBypassRequest(start, start.Add(24*time.Hour)))

	err := v.ValidateBypassRequest(start, start)
	assert.ErrorIs(t, err, lockey_errors.ErrInvalidBypassData)

	err = v.ValidateBypassRequest(time.Time{}, start)
	var verr *lockey_errors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "start_date", verr.Field)
}

func TestValidateUpload(t *testing.T) {
	v := NewValidationUtil()

	assert.NoError(t, v.ValidateUpload("report.pdf", 10, 100))
	assert.NoError(t, v.ValidateUpload("report.pdf", 1000, 0))
	assert.ErrorIs(t, v.ValidateUpload("  ", 10, 100), lockey_errors.ErrInvalidFileData)
	assert.ErrorIs(t, v.ValidateUpload("big.bin", 101, 100), lockey_errors.ErrInvalidFileData)
}
