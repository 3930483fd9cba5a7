package storage

import "time"

type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type VoteEvent struct {
	ID       int64
	TargetID string
	Action   string
	Day      string
	At       time.Time
}

// DayTally is the net number of completions logged for a voting day.
type DayTally struct {
	Day   string
	Net   int
	First time.Time
}
