// util/validation_util.go

package util

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	lockey_errors "github.com/ZORO77a/Lockey/errors"
	"github.com/ZORO77a/Lockey/model"
)

// Field names accepted by NormalizePolicyConfig. Each entry lists the
// canonical key first, then its aliases.
var (
	latitudeKeys    = []string{"latitude", "lat"}
	longitudeKeys   = []string{"longitude", "lon"}
	radiusKeys      = []string{"radius_m", "radius"}
	fingerprintKeys = []string{"allowed_ssid", "network_fingerprint"}
	startTimeKeys   = []string{"start_time"}
	endTimeKeys     = []string{"end_time"}
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

// NormalizePolicyConfig turns an admin-supplied document into a PolicyConfig.
// Absent coordinates become 0, an absent radius becomes 1000 and absent
// times fall back to 09:00 / 17:00. A time key that is present must hold
// HH:MM; null and "" are rejected. The first invalid field is reported as
// a *ValidationError and no config is returned.
func (v *ValidationUtil) NormalizePolicyConfig(raw map[string]interface{}) (model.PolicyConfig, error) {
	var cfg model.PolicyConfig
	var err error

	if cfg.Latitude, err = coordinate(raw, latitudeKeys, 90); err != nil {
		return model.PolicyConfig{}, err
	}
	if cfg.Longitude, err = coordinate(raw, longitudeKeys, 180); err != nil {
		return model.PolicyConfig{}, err
	}
	if cfg.RadiusMeters, err = radius(raw); err != nil {
		return model.PolicyConfig{}, err
	}

	if value, _, ok := lookup(raw, fingerprintKeys); ok && value != nil {
		cfg.NetworkFingerprint = strings.TrimSpace(fmt.Sprint(value))
	}

	if cfg.StartTime, err = clockTime(raw, startTimeKeys, model.DefaultStartTime); err != nil {
		return model.PolicyConfig{}, err
	}
	if cfg.EndTime, err = clockTime(raw, endTimeKeys, model.DefaultEndTime); err != nil {
		return model.PolicyConfig{}, err
	}

	return cfg, nil
}

// ValidateBypassRequest checks a subject's request for a bypass window.
func (v *ValidationUtil) ValidateBypassRequest(start, end time.Time) error {
	if start.IsZero() {
		return lockey_errors.NewBypassValidationError("start_date", "is required")
	}
	if end.IsZero() {
		return lockey_errors.NewBypassValidationError("end_date", "is required")
	}
	if !end.After(start) {
		return lockey_errors.NewBypassValidationError("end_date", "must be after start_date")
	}
	return nil
}

// ValidateUpload rejects unnamed or oversized uploads. maxSize <= 0 disables
// the size check.
func (v *ValidationUtil) ValidateUpload(name string, size, maxSize int64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: filename cannot be empty", lockey_errors.ErrInvalidFileData)
	}
	if maxSize > 0 && size > maxSize {
		return fmt.Errorf("%w: file exceeds %d bytes", lockey_errors.ErrInvalidFileData, maxSize)
	}
	return nil
}

func lookup(raw map[string]interface{}, keys []string) (interface{}, string, bool) {
	for _, k := range keys {
		if value, ok := raw[k]; ok {
			return value, k, true
		}
	}
	return nil, keys[0], false
}

func coordinate(raw map[string]interface{}, keys []string, bound float64) (float64, error) {
	value, field, ok := lookup(raw, keys)
	if !ok || value == nil {
		return 0, nil
	}
	f, err := toFloat(value)
	if err != nil {
		return 0, lockey_errors.NewPolicyValidationError(field, "must be a number")
	}
	if math.Abs(f) > bound {
		return 0, lockey_errors.NewPolicyValidationError(field, fmt.Sprintf("must be between -%g and %g", bound, bound))
	}
	return f, nil
}

func radius(raw map[string]interface{}) (int, error) {
	value, field, ok := lookup(raw, radiusKeys)
	if !ok || value == nil {
		return model.DefaultRadiusMeters, nil
	}
	f, err := toFloat(value)
	if err != nil {
		return 0, lockey_errors.NewPolicyValidationError(field, "must be an integer")
	}
	if f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, lockey_errors.NewPolicyValidationError(field, "must be an integer")
	}
	if f < 0 {
		return 0, lockey_errors.NewPolicyValidationError(field, "must not be negative")
	}
	return int(f), nil
}

func clockTime(raw map[string]interface{}, keys []string, fallback model.ClockTime) (model.ClockTime, error) {
	value, field, ok := lookup(raw, keys)
	if !ok {
		return fallback, nil
	}
	s, isString := value.(string)
	if !isString {
		return 0, lockey_errors.NewPolicyValidationError(field, "must be a HH:MM string")
	}
	if strings.TrimSpace(s) == "" {
		return 0, lockey_errors.NewPolicyValidationError(field, "must not be empty")
	}
	ct, err := model.ParseClockTime(s)
	if err != nil {
		return 0, lockey_errors.NewPolicyValidationError(field, "must be HH:MM with 0<=HH<24 and 0<=MM<60")
	}
	return ct, nil
}

func toFloat(value interface{}) (float64, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, err
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, err
		}
		f = parsed
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return f, nil
}
