// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// AuditEntry is one append-only event.
type AuditEntry struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	SubjectID string          `json:"subject_id"`
	Action    string          `json:"action"`
	Context   json.RawMessage `json:"context,omitempty"`
}

const (
	ActionAccessGranted      = "access_granted"
	ActionDeniedFileNotFound = "denied_file_not_found"
	ActionDecryptError       = "decrypt_error"
	ActionKeyUnavailable     = "key_unavailable"
	ActionStorageError       = "storage_error"
	ActionInvalidRequest     = "invalid_request"
	ActionUploadedFile       = "uploaded_file"
	ActionUploadFailed       = "upload_failed"
	ActionAdminDownload      = "admin_download"
	ActionUpdatedSettings    = "updated_settings"
	ActionBypassRequested    = "bypass_requested"
	ActionBypassApproved     = "bypass_approved"
	ActionBypassRejected     = "bypass_rejected"
	ActionBypassRevoked      = "bypass_revoked"
	ActionBypassGranted      = "bypass_granted"
)

// NewEntry builds an entry with ctx marshalled as its context. A value that
// cannot be marshalled is recorded as its error text instead of being dropped.
func NewEntry(subjectID, action string, ctx interface{}) AuditEntry {
	entry := AuditEntry{SubjectID: subjectID, Action: action}
	if ctx == nil {
		return entry
	}
	data, err := json.Marshal(ctx)
	if err != nil {
		data, _ = json.Marshal(map[string]string{"marshal_error": err.Error()})
	}
	entry.Context = data
	return entry
}
