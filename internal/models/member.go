package models

import "time"

// Degree is a member's rank on the initiatory ladder.
type Degree string

const (
	DegreeNeophyte   Degree = "Neophyte"
	DegreeFirst      Degree = "1st Degree Initiate"
	DegreeSecond     Degree = "2nd Degree Initiate"
	DegreeThird      Degree = "3rd Degree Initiate"
	DegreeHighPriest Degree = "High Priest/ess"
)

// DegreeLadder is the fixed advancement order; the last entry is terminal.
var DegreeLadder = []Degree{
	DegreeNeophyte,
	DegreeFirst,
	DegreeSecond,
	DegreeThird,
	DegreeHighPriest,
}

// Year returns the curriculum year studied at this degree, or 0 for the
// terminal degree and unrecognized values.
func (d Degree) Year() int {
	for i, deg := range DegreeLadder {
		if deg == d && i < len(DegreeLadder)-1 {
			return i + 1
		}
	}
	return 0
}

// Next returns the next degree on the ladder, or false when d is terminal or
// unrecognized.
func (d Degree) Next() (Degree, bool) {
	for i, deg := range DegreeLadder {
		if deg == d && i < len(DegreeLadder)-1 {
			return DegreeLadder[i+1], true
		}
	}
	return "", false
}

// Valid reports whether d is a member of the known degree ladder.
func (d Degree) Valid() bool {
	for _, deg := range DegreeLadder {
		if deg == d {
			return true
		}
	}
	return false
}

const DefaultAvatar = "🧙‍♂️"

type Member struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	CraftName     string    `json:"craft_name"`
	RealName      string    `json:"real_name"`
	JoinDate      time.Time `json:"join_date"`
	CurrentDegree Degree    `json:"current_degree"`
	Avatar        string    `json:"avatar"`
	Bio           string    `json:"bio"`
	IsActive      bool      `json:"is_active"`
	LastLogin     time.Time `json:"last_login"`
}
