package model

import "time"

// Contact represents a respondent. The canonical phone number is the
// contact's identity key: two raw inputs that normalize to the same string
// resolve to the same Contact.
type Contact struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`     // canonical, unique
	RawPhone  string    `json:"raw_phone"` // as originally entered
	CreatedAt time.Time `json:"created_at"`
}
