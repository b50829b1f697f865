package repository

import (
	"context"
	"errors"

	"github.com/curious/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// GetOrCreate inserts the contact keyed by canonical phone number, or loads
// the existing row. ON CONFLICT DO NOTHING makes the operation safe when two
// messages from an unseen number arrive at the same time: the loser of the
// race falls through to the re-fetch instead of erroring.
func (r *PgContactRepository) GetOrCreate(ctx context.Context, contact *model.Contact) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO contacts (id, phone, raw_phone, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (phone) DO NOTHING`,
		contact.ID, contact.Phone, contact.RawPhone, contact.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	existing, err := r.FindByPhone(ctx, contact.Phone)
	if err != nil {
		return false, err
	}
	*contact = *existing
	return false, nil
}

func (r *PgContactRepository) findOne(ctx context.Context, where string, arg any) (*model.Contact, error) {
	var c model.Contact
	err := r.pool.QueryRow(ctx,
		`SELECT id, phone, raw_phone, created_at FROM contacts WHERE `+where+` = $1`, arg,
	).Scan(&c.ID, &c.Phone, &c.RawPhone, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgContactRepository) FindByID(ctx context.Context, id string) (*model.Contact, error) {
	return r.findOne(ctx, "id", id)
}

func (r *PgContactRepository) FindByPhone(ctx context.Context, phone string) (*model.Contact, error) {
	return r.findOne(ctx, "phone", phone)
}

// LinkQuestion links the contact to a question it was sent. Idempotent.
func (r *PgContactRepository) LinkQuestion(ctx context.Context, contactID, questionID string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_questions (contact_id, question_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		contactID, questionID,
	)
	return err
}

// MostRecentQuestion returns the latest question linked to the contact.
// created_at orders questions; seq breaks timestamp ties deterministically.
func (r *PgContactRepository) MostRecentQuestion(ctx context.Context, contactID string) (*model.Question, error) {
	var q model.Question
	err := r.pool.QueryRow(ctx,
		`SELECT q.id, q.account_id, q.seq, q.text, q.created_at
		 FROM questions q
		 JOIN contact_questions cq ON cq.question_id = q.id
		 WHERE cq.contact_id = $1
		 ORDER BY q.created_at DESC, q.seq DESC
		 LIMIT 1`,
		contactID,
	).Scan(&q.ID, &q.AccountID, &q.Seq, &q.Text, &q.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}
