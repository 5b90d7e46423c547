package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ZORO77a/Lockey/model"
	pdp_model "github.com/ZORO77a/Lockey/pdp/model"
)

const (
	centerLat = 9.358667
	centerLon = 76.677297
)

// northOf returns the latitude d meters due north of centerLat.
func northOf(d float64) float64 {
	return centerLat + d/EarthRadiusMeters*180/3.141592653589793
}

func officePolicy() model.PolicyConfig {
	return model.PolicyConfig{
		Latitude:     centerLat,
		Longitude:    centerLon,
		RadiusMeters: 1000,
		StartTime:    model.MustClockTime("09:00"),
		EndTime:      model.MustClockTime("17:00"),
	}
}

func at(hh, mm int) time.Time {
	return time.Date(2026, time.October, 19, hh, mm, 0, 0, time.UTC)
}

func onSite() pdp_model.RequestContext {
	return pdp_model.RequestContext{Latitude: centerLat, Longitude: centerLon}
}

func TestEvaluate_ExampleScenario(t *testing.T) {
	policy := officePolicy()
	far := pdp_model.RequestContext{Latitude: northOf(2000), Longitude: centerLon}

	t.Run("OnSiteDuringHours_Allow", func(t *testing.T) {
		d := Evaluate("emp@example.com", policy, false, onSite(), at(10, 30))
		assert.True(t, d.Allowed())
		assert.Equal(t, pdp_model.ReasonNone, d.Reason)
		assert.Equal(t, "access_granted", d.AuditAction())
	})

	t.Run("OnSiteAfterHours_DenyHours", func(t *testing.T) {
		d := Evaluate("emp@example.com", policy, false, onSite(), at(20, 0))
		assert.Equal(t, pdp_model.Deny, d.Outcome)
		assert.Equal(t, pdp_model.ReasonHours, d.Reason)
		assert.Equal(t, "denied_hours", d.AuditAction())
	})

	t.Run("FarAway_DenyGeofence", func(t *testing.T) {
		d := Evaluate("emp@example.com", policy, false, far, at(10, 30))
		assert.Equal(t, pdp_model.Deny, d.Outcome)
		assert.Equal(t, pdp_model.ReasonGeofence, d.Reason)
	})

	t.Run("FarAwayAfterHoursWithBypass_Allow", func(t *testing.T) {
		now := at(20, 0)
		grant := &model.BypassGrant{SubjectID: "emp@example.com", Until: now.Add(time.Hour)}
		d := Evaluate("emp@example.com", policy, grant.ActiveAt(now), far, now)
		assert.True(t, d.Allowed())
		assert.True(t, d.Bypassed)
	})
}

func TestEvaluate_BypassOverridesEverything(t *testing.T) {
	policy := officePolicy()
	policy.NetworkFingerprint = "CORP-WIFI"
	req := pdp_model.RequestContext{Latitude: -33.86, Longitude: 151.2, NetworkHint: "coffee-shop"}

	d := Evaluate("emp@example.com", policy, true, req, at(3, 0))
	assert.True(t, d.Allowed())
	assert.Equal(t, pdp_model.ReasonNone, d.Reason)
}

func TestEvaluate_BypassExpiringNowFallsThrough(t *testing.T) {
	now := at(20, 0)
	grant := &model.BypassGrant{SubjectID: "emp@example.com", Until: now}

	d := Evaluate("emp@example.com", officePolicy(), grant.ActiveAt(now), onSite(), now)
	assert.Equal(t, pdp_model.Deny, d.Outcome)
	assert.Equal(t, pdp_model.ReasonHours, d.Reason)
}

func TestEvaluate_PrecedenceGeofenceBeforeHoursBeforeNetwork(t *testing.T) {
	policy := officePolicy()
	policy.NetworkFingerprint = "CORP-WIFI"

	tests := []struct {
		name   string
		req    pdp_model.RequestContext
		now    time.Time
		reason pdp_model.DenyReason
	}{
		{"AllFail", pdp_model.RequestContext{Latitude: northOf(5000), Longitude: centerLon}, at(22, 0), pdp_model.ReasonGeofence},
		{"HoursAndNetworkFail", onSite(), at(22, 0), pdp_model.ReasonHours},
		{"OnlyNetworkFails", pdp_model.RequestContext{Latitude: centerLat, Longitude: centerLon, NetworkHint: "HOME-5G"}, at(11, 0), pdp_model.ReasonNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate("emp@example.com", policy, false, tt.req, tt.now)
			assert.Equal(t, pdp_model.Deny, d.Outcome)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestEvaluate_Network(t *testing.T) {
	policy := officePolicy()

	t.Run("UnconfiguredSkipsCheck", func(t *testing.T) {
		d := Evaluate("emp@example.com", policy, false, onSite(), at(12, 0))
		assert.True(t, d.Allowed())
	})

	policy.NetworkFingerprint = "GNXS-92f598"

	t.Run("HintContainsFingerprint", func(t *testing.T) {
		req := onSite()
		req.NetworkHint = "ssid=GNXS-92f598;bssid=aa:bb"
		assert.True(t, Evaluate("emp@example.com", policy, false, req, at(12, 0)).Allowed())
	})

	t.Run("EmptyHintDenied", func(t *testing.T) {
		d := Evaluate("emp@example.com", policy, false, onSite(), at(12, 0))
		assert.Equal(t, pdp_model.ReasonNetwork, d.Reason)
	})
}

func TestEvaluate_WorkingHoursBoundaries(t *testing.T) {
	policy := officePolicy()

	assert.True(t, Evaluate("s", policy, false, onSite(), at(9, 0)).Allowed())
	assert.True(t, Evaluate("s", policy, false, onSite(), at(17, 0)).Allowed())
	assert.False(t, Evaluate("s", policy, false, onSite(), at(8, 59)).Allowed())
	assert.False(t, Evaluate("s", policy, false, onSite(), at(17, 1)).Allowed())
}

func TestEvaluate_WorkingHoursEndIsExact(t *testing.T) {
	policy := officePolicy()
	day := func(hh, mm, ss, ns int) time.Time {
		return time.Date(2026, time.October, 19, hh, mm, ss, ns, time.UTC)
	}

	tests := []struct {
		name    string
		now     time.Time
		allowed bool
	}{
		{"OneSecondBeforeStart", day(8, 59, 59, 0), false},
		{"OneSecondPastEnd", day(17, 0, 1, 0), false},
		{"FortyFiveSecondsPastEnd", day(17, 0, 45, 0), false},
		{"OneNanosecondPastEnd", day(17, 0, 0, 1), false},
		{"LastSecondOfWindow", day(16, 59, 59, 999999999), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate("s", policy, false, onSite(), tt.now)
			assert.Equal(t, tt.allowed, d.Allowed())
			if !tt.allowed {
				assert.Equal(t, pdp_model.ReasonHours, d.Reason)
			}
		})
	}
}

func TestEvaluate_InvertedWindowNeverMatches(t *testing.T) {
	policy := officePolicy()
	policy.StartTime = model.MustClockTime("22:00")
	policy.EndTime = model.MustClockTime("06:00")

	for _, hh := range []int{0, 5, 12, 22, 23} {
		d := Evaluate("s", policy, false, onSite(), at(hh, 0))
		assert.Equal(t, pdp_model.ReasonHours, d.Reason, "hour %d", hh)
	}
}

func TestEvaluate_UsesLocationOfNow(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	// 05:00 UTC is 10:30 in IST.
	now := time.Date(2026, time.October, 19, 5, 0, 0, 0, time.UTC).In(ist)

	assert.True(t, Evaluate("s", officePolicy(), false, onSite(), now).Allowed())
}

func TestEvaluate_GeofenceBoundary(t *testing.T) {
	assert.True(t, insideRadius(1000, 1000))
	assert.False(t, insideRadius(1001, 1000))

	policy := officePolicy()
	inside := pdp_model.RequestContext{Latitude: northOf(999), Longitude: centerLon}
	outside := pdp_model.RequestContext{Latitude: northOf(1001), Longitude: centerLon}

	assert.True(t, Evaluate("s", policy, false, inside, at(12, 0)).Allowed())
	assert.Equal(t, pdp_model.ReasonGeofence, Evaluate("s", policy, false, outside, at(12, 0)).Reason)
}

func TestEvaluate_ZeroRadiusOnlyAdmitsCenter(t *testing.T) {
	policy := officePolicy()
	policy.RadiusMeters = 0

	assert.True(t, Evaluate("s", policy, false, onSite(), at(12, 0)).Allowed())
	moved := pdp_model.RequestContext{Latitude: northOf(1), Longitude: centerLon}
	assert.Equal(t, pdp_model.ReasonGeofence, Evaluate("s", policy, false, moved, at(12, 0)).Reason)
}

func TestEvaluate_Deterministic(t *testing.T) {
	in := Input{SubjectID: "s", Policy: officePolicy(), Request: onSite(), Now: at(20, 0)}
	pe := NewPolicyEvaluator()
	assert.Equal(t, pe.Evaluate(in), pe.Evaluate(in))
}

func TestPredicates_Order(t *testing.T) {
	var reasons []pdp_model.DenyReason
	for _, p := range Predicates() {
		reasons = append(reasons, p.Reason)
	}
	assert.Equal(t, []pdp_model.DenyReason{pdp_model.ReasonGeofence, pdp_model.ReasonHours, pdp_model.ReasonNetwork}, reasons)
}
