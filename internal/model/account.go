package model

import (
	"strings"
	"time"
)

// Account represents an organization that broadcasts questions and collects
// answers. Nickname, Slug and Phone are unique identity keys derived once at
// registration and immutable afterwards.
type Account struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Slug      string    `json:"slug"`
	Phone     string    `json:"phone"`     // canonical, see pkg/phone
	RawPhone  string    `json:"raw_phone"` // as originally entered
	CreatedAt time.Time `json:"created_at"`
}

// slugStripped is the punctuation removed before slugging a nickname.
const slugStripped = "!@#$"

// SlugFromNickname derives the URL-safe slug used as the account's public
// identifier and as its SMS join keyword (#slug).
func SlugFromNickname(nickname string) string {
	s := strings.Map(func(r rune) rune {
		if strings.ContainsRune(slugStripped, r) {
			return -1
		}
		return r
	}, nickname)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "-")
	return strings.ToLower(s)
}
