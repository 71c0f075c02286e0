package domain

import "time"

// Branch models one laundry location. Rank is the display position taken
// from the branch_order configuration table; nil means unranked.
type Branch struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Active    bool
	Rank      *int
	CreatedAt time.Time
	UpdatedAt time.Time
}
