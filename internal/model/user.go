package model

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Balance      int64
	CreatedAt    time.Time
}
