package model

import "time"

// Question is a broadcast prompt owned by an Account. Immutable after
// creation; answers accumulate against it.
type Question struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	// Seq is a monotonically increasing insertion counter. It breaks ties
	// when two questions share a creation timestamp, so "most recent" is a
	// total order.
	Seq       int64     `json:"-"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
