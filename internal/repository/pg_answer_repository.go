package repository

import (
	"context"

	"github.com/curious/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgAnswerRepository is the PostgreSQL implementation of AnswerRepository.
type PgAnswerRepository struct {
	pool *pgxpool.Pool
}

// NewPgAnswerRepository creates a PgAnswerRepository backed by the given pool.
func NewPgAnswerRepository(pool *pgxpool.Pool) *PgAnswerRepository {
	return &PgAnswerRepository{pool: pool}
}

// Ensure PgAnswerRepository implements AnswerRepository at compile time.
var _ AnswerRepository = (*PgAnswerRepository)(nil)

// CreateWithLink は回答の INSERT と contact_questions の関連付けを
// 単一トランザクションで行う。途中で失敗した場合は何も残らない
func (r *PgAnswerRepository) CreateWithLink(ctx context.Context, answer *model.Answer) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO answers (id, question_id, contact_id, text, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		answer.ID, answer.QuestionID, answer.ContactID, answer.Text, answer.CreatedAt,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO contact_questions (contact_id, question_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		answer.ContactID, answer.QuestionID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListByQuestion returns the question's answers joined with the authoring
// contact's canonical phone number, oldest first.
func (r *PgAnswerRepository) ListByQuestion(ctx context.Context, questionID string) ([]*model.Answer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.question_id, a.contact_id, a.text, a.created_at, c.phone
		 FROM answers a
		 JOIN contacts c ON c.id = a.contact_id
		 WHERE a.question_id = $1
		 ORDER BY a.created_at, a.id`,
		questionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []*model.Answer
	for rows.Next() {
		var a model.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.ContactID, &a.Text, &a.CreatedAt, &a.ContactPhone); err != nil {
			return nil, err
		}
		answers = append(answers, &a)
	}
	return answers, rows.Err()
}
