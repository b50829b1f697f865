package repository

import (
	"context"
	"errors"

	"github.com/curious/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgAccountRepository is the PostgreSQL implementation of AccountRepository.
type PgAccountRepository struct {
	pool *pgxpool.Pool
}

// NewPgAccountRepository creates a PgAccountRepository backed by the given pool.
func NewPgAccountRepository(pool *pgxpool.Pool) *PgAccountRepository {
	return &PgAccountRepository{pool: pool}
}

// Ensure PgAccountRepository implements AccountRepository at compile time.
var _ AccountRepository = (*PgAccountRepository)(nil)

// Create inserts a new accounts row. A violated uniqueness constraint
// (nickname, slug or phone) is reported as *DuplicateError.
func (r *PgAccountRepository) Create(ctx context.Context, account *model.Account) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO accounts (id, nickname, slug, phone, raw_phone, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		account.ID, account.Nickname, account.Slug, account.Phone, account.RawPhone, account.CreatedAt,
	)
	if constraint, ok := uniqueViolation(err); ok {
		return &DuplicateError{Constraint: constraint}
	}
	return err
}

const accountColumns = `id, nickname, slug, phone, raw_phone, created_at`

func (r *PgAccountRepository) findOne(ctx context.Context, where string, arg any) (*model.Account, error) {
	var a model.Account
	err := r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE `+where+` = $1`, arg,
	).Scan(&a.ID, &a.Nickname, &a.Slug, &a.Phone, &a.RawPhone, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgAccountRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	return r.findOne(ctx, "id", id)
}

func (r *PgAccountRepository) FindBySlug(ctx context.Context, slug string) (*model.Account, error) {
	return r.findOne(ctx, "slug", slug)
}

func (r *PgAccountRepository) FindByNickname(ctx context.Context, nickname string) (*model.Account, error) {
	return r.findOne(ctx, "nickname", nickname)
}

func (r *PgAccountRepository) FindByPhone(ctx context.Context, phone string) (*model.Account, error) {
	return r.findOne(ctx, "phone", phone)
}

// LinkContact links the contact to the account. Joining an already-joined
// account is a no-op, not an error.
func (r *PgAccountRepository) LinkContact(ctx context.Context, accountID, contactID string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO account_contacts (account_id, contact_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		accountID, contactID,
	)
	return err
}

// UnlinkContact removes the relationship only; the contact row stays (it may
// belong to other accounts).
func (r *PgAccountRepository) UnlinkContact(ctx context.Context, accountID, contactID string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM account_contacts WHERE account_id = $1 AND contact_id = $2`,
		accountID, contactID,
	)
	return err
}

// ListContacts returns the contacts currently linked to the account, oldest
// link first.
func (r *PgAccountRepository) ListContacts(ctx context.Context, accountID string) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.phone, c.raw_phone, c.created_at
		 FROM contacts c
		 JOIN account_contacts ac ON ac.contact_id = c.id
		 WHERE ac.account_id = $1
		 ORDER BY c.created_at, c.id`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Phone, &c.RawPhone, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}
