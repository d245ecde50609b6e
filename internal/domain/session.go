package domain

import "time"

// ChatSession is one conversation's transcript scope. A reset closes the
// current session and opens a fresh one.
type ChatSession struct {
	ID        string
	StartedAt time.Time
	EndedAt   *time.Time
}
