package engine

import (
	"strings"
	"time"

	"github.com/ZORO77a/Lockey/model"
	pdp_model "github.com/ZORO77a/Lockey/pdp/model"
)

// Input is everything a single evaluation looks at. The engine reads no
// globals and performs no I/O.
type Input struct {
	SubjectID    string
	Policy       model.PolicyConfig
	BypassActive bool
	Request      pdp_model.RequestContext
	Now          time.Time
}

// Predicate is one named check. It returns true when the request passes.
type Predicate struct {
	Reason pdp_model.DenyReason
	Check  func(in Input) bool
}

var predicates = []Predicate{
	{Reason: pdp_model.ReasonGeofence, Check: withinGeofence},
	{Reason: pdp_model.ReasonHours, Check: withinWorkingHours},
	{Reason: pdp_model.ReasonNetwork, Check: onAllowedNetwork},
}

// Predicates returns the checks in evaluation order.
func Predicates() []Predicate {
	out := make([]Predicate, len(predicates))
	copy(out, predicates)
	return out
}

type PolicyEvaluator struct {
	predicates []Predicate
}

func NewPolicyEvaluator() *PolicyEvaluator {
	return &PolicyEvaluator{predicates: predicates}
}

// Evaluate resolves a decision. An active bypass allows immediately;
// otherwise the first failing predicate decides the deny reason.
func (pe *PolicyEvaluator) Evaluate(in Input) pdp_model.Decision {
	decision := pdp_model.Decision{Outcome: pdp_model.Allow, EvaluatedAt: in.Now}
	if in.BypassActive {
		decision.Bypassed = true
		return decision
	}

	for _, p := range pe.predicates {
		if !p.Check(in) {
			decision.Outcome = pdp_model.Deny
			decision.Reason = p.Reason
			return decision
		}
	}
	return decision
}

// Evaluate is a convenience wrapper over the default predicate order.
func Evaluate(subjectID string, policy model.PolicyConfig, bypassActive bool, req pdp_model.RequestContext, now time.Time) pdp_model.Decision {
	return NewPolicyEvaluator().Evaluate(Input{
		SubjectID:    subjectID,
		Policy:       policy,
		BypassActive: bypassActive,
		Request:      req,
		Now:          now,
	})
}

func withinGeofence(in Input) bool {
	dist := HaversineMeters(in.Request.Latitude, in.Request.Longitude, in.Policy.Latitude, in.Policy.Longitude)
	return insideRadius(dist, float64(in.Policy.RadiusMeters))
}

func insideRadius(distance, radius float64) bool {
	return distance <= radius
}

// withinWorkingHours compares the full time of day inclusively on both ends,
// in the location carried by Now. 17:00:01 is past an end of 17:00. A window
// with start after end never matches.
func withinWorkingHours(in Input) bool {
	current := model.SinceMidnight(in.Now)
	return in.Policy.StartTime.Offset() <= current && current <= in.Policy.EndTime.Offset()
}

func onAllowedNetwork(in Input) bool {
	fingerprint := in.Policy.NetworkFingerprint
	if fingerprint == "" {
		return true
	}
	return strings.Contains(in.Request.NetworkHint, fingerprint)
}
