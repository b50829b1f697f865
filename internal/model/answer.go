package model

import "time"

// Answer is a single reply from a Contact to a Question. Immutable once
// created.
type Answer struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	ContactID  string    `json:"contact_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`

	// ContactPhone is populated by joined queries (answer listings and CSV
	// export); it is not a column of the answers table.
	ContactPhone string `json:"contact_phone,omitempty"`
}
