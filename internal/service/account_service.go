package service

import (
	"context"

	"github.com/curious/backend/internal/model"
)

// AccountService defines the business logic for accounts and their contacts.
type AccountService interface {
	// Register creates a new account. The nickname, its derived slug and the
	// canonical phone number must all be unused; on any violation nothing is
	// persisted and the matching ErrDuplicate* sentinel is returned.
	Register(ctx context.Context, rawPhone, nickname string) (*model.Account, error)

	// Login resolves an account by raw phone number (canonicalized first).
	// Returns repository.ErrNotFound if no account matches.
	Login(ctx context.Context, rawPhone string) (*model.Account, error)

	Get(ctx context.Context, id string) (*model.Account, error)

	// FindBySlug resolves an account by its public slug (landing page).
	FindBySlug(ctx context.Context, slug string) (*model.Account, error)

	// ImportContacts resolves-or-creates a contact per raw number and links
	// it to the account. Numbers that fail to normalize or persist are
	// skipped; the returned count is the number of successful links.
	ImportContacts(ctx context.Context, accountID string, rawPhones []string) (int, error)

	// RemoveContact unlinks the contact from the account. The contact record
	// itself is kept.
	RemoveContact(ctx context.Context, accountID, contactID string) error

	ListContacts(ctx context.Context, accountID string) ([]*model.Contact, error)
}
