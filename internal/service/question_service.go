package service

import (
	"context"
	"io"

	"github.com/curious/backend/internal/model"
)

// QuestionBounds configures the allowed question text length (rune count).
type QuestionBounds struct {
	Min int
	Max int
}

// DefaultQuestionBounds matches the 160-character SMS budget.
var DefaultQuestionBounds = QuestionBounds{Min: 10, Max: 160}

// QuestionService defines the business logic for questions and answers.
type QuestionService interface {
	// Broadcast creates a question and sends its text to every contact
	// currently linked to the account. Sends are dispatched fire-and-forget;
	// Broadcast returns once every send is enqueued and every contact is
	// linked to the question. A failure for one contact does not affect the
	// others. Text outside the configured bounds yields ErrInvalidInput and
	// no question.
	Broadcast(ctx context.Context, accountID, text string) (*model.Question, error)

	Get(ctx context.Context, id string) (*model.Question, error)

	ListByAccount(ctx context.Context, accountID string) ([]*model.Question, error)

	CountByAccount(ctx context.Context, accountID string) (int, error)

	// ListAnswers returns a question's answers with the authoring contact's
	// canonical phone number populated.
	ListAnswers(ctx context.Context, questionID string) ([]*model.Answer, error)

	// ExportAnswersCSV writes the question's answer set as CSV to w, one line
	// per answer: contact phone, answer text.
	ExportAnswersCSV(ctx context.Context, questionID string, w io.Writer) error
}
