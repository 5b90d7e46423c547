package model

import "time"

type Outcome string

const (
	Allow Outcome = "allow"
	Deny  Outcome = "deny"
)

// DenyReason is the closed set of reasons a Deny can carry.
type DenyReason string

const (
	ReasonNone     DenyReason = ""
	ReasonGeofence DenyReason = "geofence"
	ReasonHours    DenyReason = "hours"
	ReasonNetwork  DenyReason = "network"
)

// Decision is the result of one policy evaluation. It lives for a single
// request; only its audit projection is stored.
type Decision struct {
	Outcome     Outcome    `json:"outcome"`
	Reason      DenyReason `json:"reason,omitempty"`
	Bypassed    bool       `json:"bypassed,omitempty"`
	EvaluatedAt time.Time  `json:"evaluated_at"`
}

func (d Decision) Allowed() bool {
	return d.Outcome == Allow
}

// AuditAction maps the decision to the action tag written to the audit log.
func (d Decision) AuditAction() string {
	if d.Allowed() {
		return "access_granted"
	}
	return "denied_" + string(d.Reason)
}
