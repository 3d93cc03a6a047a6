package models

import "time"

// EventType categorizes a tracked gathering.
type EventType string

const (
	EventSabbat EventType = "Sabbat"
	EventEsbat  EventType = "Esbat"
	EventOther  EventType = "Other"
)

// RecordedBySelf marks attendance entered by the member themselves rather
// than a designated recorder.
const RecordedBySelf = "SELF"

type AttendanceRecord struct {
	ID         string    `json:"id"`
	MemberID   string    `json:"member_id"`
	EventType  EventType `json:"event_type"`
	EventName  string    `json:"event_name"`
	EventDate  time.Time `json:"event_date"`
	Attended   bool      `json:"attended"`
	Notes      string    `json:"notes"`
	RecordedBy string    `json:"recorded_by"`
}

// Sabbat is one of the eight fixed annual festivals. Date is a month-day
// pair ("MM-DD"); the year is supplied when projecting onto the calendar.
type Sabbat struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// Sabbats is the Wheel of the Year, in traditional order starting at Samhain.
var Sabbats = []Sabbat{
	{Name: "Samhain", Date: "10-31", Emoji: "🎃", Description: "Witches' New Year"},
	{Name: "Yule", Date: "12-21", Emoji: "🎄", Description: "Winter Solstice"},
	{Name: "Imbolc", Date: "02-01", Emoji: "🕯️", Description: "First Light of Spring"},
	{Name: "Ostara", Date: "03-20", Emoji: "🐣", Description: "Spring Equinox"},
	{Name: "Beltane", Date: "05-01", Emoji: "🔥", Description: "Fire Festival"},
	{Name: "Litha", Date: "06-21", Emoji: "☀️", Description: "Summer Solstice"},
	{Name: "Lughnasadh", Date: "08-01", Emoji: "🌾", Description: "First Harvest"},
	{Name: "Mabon", Date: "09-22", Emoji: "🍂", Description: "Autumn Equinox"},
}

// UpcomingSabbat is a calendar projection of a Sabbat onto a concrete date.
type UpcomingSabbat struct {
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Emoji     string    `json:"emoji"`
	FullDate  time.Time `json:"full_date"`
	DaysUntil int       `json:"days_until"`
}
