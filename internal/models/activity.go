package models

import "time"

// SystemMemberID is the sentinel member id for system-originated activity.
const SystemMemberID = "SYSTEM"

// Well-known activity actions.
const (
	ActionMemberCreated        = "MEMBER_CREATED"
	ActionMemberUpdated        = "MEMBER_UPDATED"
	ActionModuleStatusUpdated  = "MODULE_STATUS_UPDATED"
	ActionDegreeAdvanced       = "DEGREE_ADVANCED"
	ActionAttendanceRecorded   = "ATTENDANCE_RECORDED"
	ActionGrimoireEntryCreated = "GRIMOIRE_ENTRY_CREATED"
	ActionGrimoireEntryUpdated = "GRIMOIRE_ENTRY_UPDATED"
	ActionGrimoireEntryDeleted = "GRIMOIRE_ENTRY_DELETED"
)

// ActivityLogEntry is one append-only audit record. Entries are never
// mutated or deleted.
type ActivityLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	MemberID  string    `json:"member_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ip_address,omitempty"`
}
