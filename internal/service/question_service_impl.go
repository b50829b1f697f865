package service

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"time"

	"github.com/curious/backend/internal/metrics"
	"github.com/curious/backend/internal/model"
	"github.com/curious/backend/internal/repository"
	"github.com/google/uuid"
)

// questionServiceImpl is the production implementation of QuestionService.
type questionServiceImpl struct {
	questions repository.QuestionRepository
	answers   repository.AnswerRepository
	accounts  repository.AccountRepository
	contacts  repository.ContactRepository
	queue     SendQueue
	metrics   *metrics.Metrics
	bounds    QuestionBounds
}

// NewQuestionService creates a QuestionService.
func NewQuestionService(
	questions repository.QuestionRepository,
	answers repository.AnswerRepository,
	accounts repository.AccountRepository,
	contacts repository.ContactRepository,
	queue SendQueue,
	m *metrics.Metrics,
	bounds QuestionBounds,
) QuestionService {
	if bounds.Min <= 0 || bounds.Max <= 0 {
		bounds = DefaultQuestionBounds
	}
	return &questionServiceImpl{
		questions: questions,
		answers:   answers,
		accounts:  accounts,
		contacts:  contacts,
		queue:     queue,
		metrics:   m,
		bounds:    bounds,
	}
}

// Broadcast は質問を作成し、アカウントに関連付いた全コンタクトへ送信を
// キューイングする。個々のコンタクトの失敗はログに残して続行する
func (s *questionServiceImpl) Broadcast(ctx context.Context, accountID, text string) (*model.Question, error) {
	if err := checkQuestionText(text, s.bounds.Min, s.bounds.Max); err != nil {
		return nil, err
	}
	if _, err := s.accounts.FindByID(ctx, accountID); err != nil {
		return nil, err
	}

	question := &model.Question{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	s.metrics.Broadcasts.Inc()

	linked, err := s.accounts.ListContacts(ctx, accountID)
	if err != nil {
		// The question exists; report the partial failure but keep it.
		return question, err
	}
	for _, c := range linked {
		s.queue.Enqueue(c.Phone, question.Text)
		if err := s.contacts.LinkQuestion(ctx, c.ID, question.ID); err != nil {
			slog.Error("broadcast: question link failed", "contact_id", c.ID, "question_id", question.ID, "error", err)
			continue
		}
	}
	return question, nil
}

func (s *questionServiceImpl) Get(ctx context.Context, id string) (*model.Question, error) {
	return s.questions.FindByID(ctx, id)
}

func (s *questionServiceImpl) ListByAccount(ctx context.Context, accountID string) ([]*model.Question, error) {
	return s.questions.ListByAccount(ctx, accountID)
}

func (s *questionServiceImpl) CountByAccount(ctx context.Context, accountID string) (int, error) {
	return s.questions.CountByAccount(ctx, accountID)
}

func (s *questionServiceImpl) ListAnswers(ctx context.Context, questionID string) ([]*model.Answer, error) {
	if _, err := s.questions.FindByID(ctx, questionID); err != nil {
		return nil, err
	}
	return s.answers.ListByQuestion(ctx, questionID)
}

// ExportAnswersCSV は回答を「電話番号, 回答本文」の CSV として書き出す
func (s *questionServiceImpl) ExportAnswersCSV(ctx context.Context, questionID string, w io.Writer) error {
	answers, err := s.ListAnswers(ctx, questionID)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	for _, a := range answers {
		if err := cw.Write([]string{a.ContactPhone, a.Text}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
