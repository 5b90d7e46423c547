// model/bypass.go
package model

import "time"

// BypassGrant lets one subject skip location, hours and network checks
// until Until.
type BypassGrant struct {
	SubjectID string    `json:"subject_id"`
	Until     time.Time `json:"until"`
}

// ActiveAt is true only while Until is strictly after now. A grant that
// expires exactly at now is inert.
func (g *BypassGrant) ActiveAt(now time.Time) bool {
	if g == nil || g.Until.IsZero() {
		return false
	}
	return g.Until.After(now)
}

type BypassStatus string

const (
	BypassPending  BypassStatus = "pending"
	BypassApproved BypassStatus = "approved"
	BypassRejected BypassStatus = "rejected"
	BypassRevoked  BypassStatus = "revoked"
)

// BypassRequest is a subject's ask for a work-from-anywhere window.
type BypassRequest struct {
	ID        string       `json:"id"`
	SubjectID string       `json:"requested_by"`
	StartDate time.Time    `json:"start_date"`
	EndDate   time.Time    `json:"end_date"`
	Reason    string       `json:"reason,omitempty"`
	Status    BypassStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	DecidedAt *time.Time   `json:"decided_at,omitempty"`
	DecidedBy string       `json:"decided_by,omitempty"`
}
