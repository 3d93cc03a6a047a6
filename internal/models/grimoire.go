package models

import "time"

type GrimoireEntry struct {
	ID           string    `json:"id"`
	MemberID     string    `json:"member_id"`
	EntryType    string    `json:"entry_type"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Tags         string    `json:"tags"`
	CreatedDate  time.Time `json:"created_date"`
	ModifiedDate time.Time `json:"modified_date"`
	IsPrivate    bool      `json:"is_private"`
	Category     string    `json:"category"`
}

// GrimoireCategory is one fixed journal category.
type GrimoireCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// GrimoireCategories is the fixed category catalog.
var GrimoireCategories = []GrimoireCategory{
	{ID: "spells", Name: "Spells & Workings", Emoji: "🔮"},
	{ID: "rituals", Name: "Rituals", Emoji: "⭕"},
	{ID: "divination", Name: "Divination Records", Emoji: "🎴"},
	{ID: "dreams", Name: "Dream Journal", Emoji: "💭"},
	{ID: "herbs", Name: "Herb Notes", Emoji: "🌿"},
	{ID: "crystals", Name: "Crystal Work", Emoji: "💎"},
	{ID: "deities", Name: "Deity Work", Emoji: "🌙"},
	{ID: "meditation", Name: "Meditation Logs", Emoji: "🧘"},
	{ID: "moon", Name: "Moon Workings", Emoji: "🌕"},
	{ID: "other", Name: "Other Notes", Emoji: "📝"},
}

// DefaultGrimoireCategory is used when a new entry names no category.
const DefaultGrimoireCategory = "other"

// ValidGrimoireCategory reports whether id belongs to the category catalog.
func ValidGrimoireCategory(id string) bool {
	for _, c := range GrimoireCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}
