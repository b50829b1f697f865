package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/curious/backend/internal/metrics"
	"github.com/curious/backend/internal/model"
	"github.com/curious/backend/internal/repository"
	"github.com/curious/backend/pkg/phone"
	"github.com/google/uuid"
)

// Texts sent back to respondents. Kept under the 160-character SMS budget.
const (
	welcomeText = "Welcome! You'll get questions from organizations you join by text. " +
		"Reply with #keyword to join one, or just answer questions as they arrive."
	joinedText = "You're in! You'll now get this organization's questions by text. " +
		"Just reply to answer."
	invalidKeywordText = "We don't recognize that keyword. Double-check it with the " +
		"organization and try again."
)

// keywordMarker flags an org-join message.
const keywordMarker = "#"

// inboundServiceImpl is the production implementation of InboundService.
type inboundServiceImpl struct {
	accounts repository.AccountRepository
	contacts repository.ContactRepository
	answers  repository.AnswerRepository
	queue    SendQueue
	metrics  *metrics.Metrics
}

// NewInboundService creates the inbound message router.
func NewInboundService(
	accounts repository.AccountRepository,
	contacts repository.ContactRepository,
	answers repository.AnswerRepository,
	queue SendQueue,
	m *metrics.Metrics,
) InboundService {
	return &inboundServiceImpl{
		accounts: accounts,
		contacts: contacts,
		answers:  answers,
		queue:    queue,
		metrics:  m,
	}
}

// Handle は受信メッセージを 1 件処理する。分岐は次の順:
// 新規コンタクトの welcome → #keyword による org 参加 → 最新質問への回答
func (s *inboundServiceImpl) Handle(ctx context.Context, fromRaw, body string) (Outcome, error) {
	outcome, err := s.route(ctx, fromRaw, body)
	s.metrics.InboundMessages.WithLabelValues(string(outcome)).Inc()
	return outcome, err
}

func (s *inboundServiceImpl) route(ctx context.Context, fromRaw, body string) (Outcome, error) {
	fromKey := phone.Normalize(fromRaw)
	if fromKey == "" {
		slog.Warn("inbound: unparseable sender number", "from", fromRaw)
		return OutcomeIgnored, nil
	}

	contact := &model.Contact{
		ID:        uuid.New().String(),
		Phone:     fromKey,
		RawPhone:  fromRaw,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.contacts.GetOrCreate(ctx, contact)
	if err != nil {
		return OutcomeIgnored, err
	}
	if created {
		// A respondent's very first message is usually a test or a hello;
		// never file it as an answer.
		s.queue.Enqueue(contact.Phone, welcomeText)
		return OutcomeWelcomed, nil
	}

	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return OutcomeIgnored, nil
	}

	if strings.HasPrefix(trimmed, keywordMarker) {
		return s.routeKeyword(ctx, contact, trimmed)
	}

	return s.routeAnswer(ctx, contact, trimmed)
}

// routeKeyword は #keyword をアカウントスラグとして解決し参加させる
func (s *inboundServiceImpl) routeKeyword(ctx context.Context, contact *model.Contact, trimmed string) (Outcome, error) {
	keyword := strings.TrimSpace(strings.ReplaceAll(trimmed, keywordMarker, ""))

	account, err := s.accounts.FindBySlug(ctx, keyword)
	if errors.Is(err, repository.ErrNotFound) {
		s.queue.Enqueue(contact.Phone, invalidKeywordText)
		return OutcomeInvalidKeyword, nil
	}
	if err != nil {
		return OutcomeIgnored, err
	}

	// Joining twice must neither duplicate the link nor fail.
	if err := s.accounts.LinkContact(ctx, account.ID, contact.ID); err != nil {
		return OutcomeIgnored, err
	}
	s.queue.Enqueue(contact.Phone, joinedText)
	return OutcomeJoined, nil
}

// routeAnswer は本文を最新質問への回答として記録する
func (s *inboundServiceImpl) routeAnswer(ctx context.Context, contact *model.Contact, body string) (Outcome, error) {
	question, err := s.contacts.MostRecentQuestion(ctx, contact.ID)
	if errors.Is(err, repository.ErrNotFound) {
		slog.Warn("inbound: answer with no outstanding question", "phone", contact.Phone)
		return OutcomeNoQuestion, nil
	}
	if err != nil {
		return OutcomeIgnored, err
	}

	answer := &model.Answer{
		ID:         uuid.New().String(),
		QuestionID: question.ID,
		ContactID:  contact.ID,
		Text:       body,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.answers.CreateWithLink(ctx, answer); err != nil {
		return OutcomeIgnored, err
	}
	return OutcomeAnswerSaved, nil
}
