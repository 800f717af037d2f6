package model

import "time"

type Bid struct {
	ID        int64
	UserID    int64
	CarID     int64
	Amount    int64
	CreatedAt time.Time
}

// BidHistoryEntry is one row of a user's bid history joined with the
// name of the car the bid was placed on.
type BidHistoryEntry struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// Overview aggregates everything the profile view needs for one user.
type Overview struct {
	Username string
	Balance  int64
	Cars     []Car
	Bids     []BidHistoryEntry
}
