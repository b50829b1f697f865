package repository

import (
	"context"
	"errors"

	"github.com/curious/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgQuestionRepository is the PostgreSQL implementation of QuestionRepository.
type PgQuestionRepository struct {
	pool *pgxpool.Pool
}

// NewPgQuestionRepository creates a PgQuestionRepository backed by the given pool.
func NewPgQuestionRepository(pool *pgxpool.Pool) *PgQuestionRepository {
	return &PgQuestionRepository{pool: pool}
}

// Ensure PgQuestionRepository implements QuestionRepository at compile time.
var _ QuestionRepository = (*PgQuestionRepository)(nil)

// Create inserts a new questions row. The insertion-order seq comes from the
// database sequence and is written back to question.Seq.
func (r *PgQuestionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO questions (id, account_id, text, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING seq`,
		question.ID, question.AccountID, question.Text, question.CreatedAt,
	).Scan(&question.Seq)
}

func (r *PgQuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	var q model.Question
	err := r.pool.QueryRow(ctx,
		`SELECT id, account_id, seq, text, created_at FROM questions WHERE id = $1`, id,
	).Scan(&q.ID, &q.AccountID, &q.Seq, &q.Text, &q.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ListByAccount returns the account's questions, newest first.
func (r *PgQuestionRepository) ListByAccount(ctx context.Context, accountID string) ([]*model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, account_id, seq, text, created_at
		 FROM questions
		 WHERE account_id = $1
		 ORDER BY created_at DESC, seq DESC`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.AccountID, &q.Seq, &q.Text, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, &q)
	}
	return questions, rows.Err()
}

func (r *PgQuestionRepository) CountByAccount(ctx context.Context, accountID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM questions WHERE account_id = $1`, accountID,
	).Scan(&n)
	return n, err
}
