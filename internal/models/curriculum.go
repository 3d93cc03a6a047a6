package models

// CurriculumYear is the static module catalog for one year of study.
type CurriculumYear struct {
	Year    int      `json:"year"`
	Degree  Degree   `json:"degree"`
	Emoji   string   `json:"emoji"`
	Modules []string `json:"modules"`
}

// Curriculum is the fixed four-year initiatory path. Static configuration
// data, never derived from the store.
var Curriculum = []CurriculumYear{
	{
		Year:   1,
		Degree: DegreeNeophyte,
		Emoji:  "🌱",
		Modules: []string{
			"Meditation Basics",
			"History of Wicca",
			"Tool Consecration",
			"The Wheel of the Year",
			"Basic Energy Work",
			"Circle Casting Fundamentals",
			"Introduction to Deities",
			"Ethics & The Rede",
		},
	},
	{
		Year:   2,
		Degree: DegreeFirst,
		Emoji:  "🛡️",
		Modules: []string{
			"Protection & Psychic Defense",
			"Advanced Circle Work",
			"Elemental Invocations",
			"Herbology Basics",
			"Crystal Correspondences",
			"Moon Phases & Esbats",
			"Sabbat Celebrations",
			"Personal Grimoire Creation",
		},
	},
	{
		Year:   3,
		Degree: DegreeSecond,
		Emoji:  "🌘",
		Modules: []string{
			"Goddess Mysteries",
			"Shadow Work",
			"Advanced Divination",
			"Astral Projection",
			"Trance & Journey Work",
			"Ritual Leadership",
			"Teaching Fundamentals",
			"Coven Dynamics",
		},
	},
	{
		Year:   4,
		Degree: DegreeThird,
		Emoji:  "☀️",
		Modules: []string{
			"God Mysteries",
			"Solar Magick",
			"High Priesthood Studies",
			"Coven Leadership",
			"Initiation Facilitation",
			"Advanced Spellcraft",
			"Community Building",
			"Tradition Mastery",
		},
	},
}

// CurriculumForYear returns the catalog for a year, or false when the year
// is outside the four-year path.
func CurriculumForYear(year int) (CurriculumYear, bool) {
	for _, cy := range Curriculum {
		if cy.Year == year {
			return cy, true
		}
	}
	return CurriculumYear{}, false
}
