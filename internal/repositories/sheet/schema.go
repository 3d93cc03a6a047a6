// Package sheet implements the typed repositories on top of the generic
// tabular record store. Each repository owns one collection schema and is
// the only place that knows its column order.
package sheet

import "github.com/magickal-mortalz/coven-service/internal/tabular"

// Collection names. These are sheet names in the excel backend, so renaming
// one orphans existing data.
const (
	CollectionMembers    = "Members"
	CollectionProgress   = "CurriculumProgress"
	CollectionAttendance = "Attendance"
	CollectionGrimoire   = "Grimoire"
	CollectionActivity   = "ActivityLog"
)

// idColumn is the key column for every collection that has an ID.
const idColumn = 0

var (
	membersSchema = tabular.Schema{
		Name: CollectionMembers,
		Headers: []string{
			"ID", "Email", "CraftName", "RealName", "JoinDate",
			"CurrentDegree", "Avatar", "Bio", "IsActive", "LastLogin",
		},
	}

	progressSchema = tabular.Schema{
		Name: CollectionProgress,
		Headers: []string{
			"ID", "MemberID", "Year", "Module", "Status",
			"StartDate", "CompletedDate", "Notes", "InstructorApproval",
		},
	}

	attendanceSchema = tabular.Schema{
		Name: CollectionAttendance,
		Headers: []string{
			"ID", "MemberID", "EventType", "EventName", "EventDate",
			"Attended", "Notes", "RecordedBy",
		},
	}

	grimoireSchema = tabular.Schema{
		Name: CollectionGrimoire,
		Headers: []string{
			"ID", "MemberID", "EntryType", "Title", "Content", "Tags",
			"CreatedDate", "ModifiedDate", "IsPrivate", "Category",
		},
	}

	activitySchema = tabular.Schema{
		Name: CollectionActivity,
		Headers: []string{
			"Timestamp", "MemberID", "Action", "Details", "IPAddress",
		},
	}
)

// Schemas returns every collection schema, for store initialization.
func Schemas() []tabular.Schema {
	return []tabular.Schema{
		membersSchema,
		progressSchema,
		attendanceSchema,
		grimoireSchema,
		activitySchema,
	}
}
