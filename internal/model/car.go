package model

// Car is one auction lot. EndTime is stored and returned but never
// enforced against new bids.
type Car struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	ImageURL   string `json:"image_url"`
	CurrentBid int64  `json:"current_bid"`
	EndTime    int64  `json:"end_time"`
}
