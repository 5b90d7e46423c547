// model/policy.go
package model

import (
	"time"
)

// PolicyConfigID is the key of the singleton policy document.
const PolicyConfigID = "global_policy_v1"

// PolicyConfig is the single global access policy: a circular geofence,
// an optional network fingerprint and a working-hours window.
type PolicyConfig struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_m"`
	// NetworkFingerprint is matched as a substring of the client's network
	// hint. Empty means no network restriction.
	NetworkFingerprint string    `json:"allowed_ssid"`
	StartTime          ClockTime `json:"start_time"`
	EndTime            ClockTime `json:"end_time"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Defaults applied to absent fields and returned when no policy was ever saved.
const (
	DefaultLatitude     = 9.35866726100274
	DefaultLongitude    = 76.67729687183018
	DefaultRadiusMeters = 1000
	DefaultStartTime    = ClockTime(9 * 60)
	DefaultEndTime      = ClockTime(17 * 60)
)

// DefaultPolicyConfig is served by reads before an admin saves a policy.
// It has a zero UpdatedAt and is never persisted implicitly.
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		Latitude:     DefaultLatitude,
		Longitude:    DefaultLongitude,
		RadiusMeters: DefaultRadiusMeters,
		StartTime:    DefaultStartTime,
		EndTime:      DefaultEndTime,
	}
}

// IsDefault reports whether the config was never persisted.
func (p PolicyConfig) IsDefault() bool {
	return p.UpdatedAt.IsZero()
}
