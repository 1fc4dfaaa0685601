package repository

import "time"

// Drawing represents a drawings row. Pixels is the editor payload, one
// color index per cell, row-major.
type Drawing struct {
	PostID    string
	Username  string
	Subreddit string
	Word      string
	Pixels    []int
	CreatedAt time.Time
}

// Word represents a words row.
type Word struct {
	ID        string
	Word      string
	CreatedAt time.Time
}
