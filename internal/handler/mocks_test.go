package handler

import (
	"context"
	"io"

	"github.com/curious/backend/internal/model"
	"github.com/curious/backend/internal/repository"
	"github.com/curious/backend/internal/service"
)

type mockAccountService struct {
	RegisterFunc       func(ctx context.Context, rawPhone, nickname string) (*model.Account, error)
	LoginFunc          func(ctx context.Context, rawPhone string) (*model.Account, error)
	GetFunc            func(ctx context.Context, id string) (*model.Account, error)
	FindBySlugFunc     func(ctx context.Context, slug string) (*model.Account, error)
	ImportContactsFunc func(ctx context.Context, accountID string, rawPhones []string) (int, error)
	RemoveContactFunc  func(ctx context.Context, accountID, contactID string) error
	ListContactsFunc   func(ctx context.Context, accountID string) ([]*model.Contact, error)
}

var _ service.AccountService = (*mockAccountService)(nil)

func (m *mockAccountService) Register(ctx context.Context, rawPhone, nickname string) (*model.Account, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, rawPhone, nickname)
	}
	return &model.Account{ID: "acct-1", Nickname: nickname, Slug: model.SlugFromNickname(nickname)}, nil
}

func (m *mockAccountService) Login(ctx context.Context, rawPhone string) (*model.Account, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, rawPhone)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAccountService) Get(ctx context.Context, id string) (*model.Account, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &model.Account{ID: id}, nil
}

func (m *mockAccountService) FindBySlug(ctx context.Context, slug string) (*model.Account, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAccountService) ImportContacts(ctx context.Context, accountID string, rawPhones []string) (int, error) {
	if m.ImportContactsFunc != nil {
		return m.ImportContactsFunc(ctx, accountID, rawPhones)
	}
	return len(rawPhones), nil
}

func (m *mockAccountService) RemoveContact(ctx context.Context, accountID, contactID string) error {
	if m.RemoveContactFunc != nil {
		return m.RemoveContactFunc(ctx, accountID, contactID)
	}
	return nil
}

func (m *mockAccountService) ListContacts(ctx context.Context, accountID string) ([]*model.Contact, error) {
	if m.ListContactsFunc != nil {
		return m.ListContactsFunc(ctx, accountID)
	}
	return nil, nil
}

type mockQuestionService struct {
	BroadcastFunc        func(ctx context.Context, accountID, text string) (*model.Question, error)
	GetFunc              func(ctx context.Context, id string) (*model.Question, error)
	ListByAccountFunc    func(ctx context.Context, accountID string) ([]*model.Question, error)
	CountByAccountFunc   func(ctx context.Context, accountID string) (int, error)
	ListAnswersFunc      func(ctx context.Context, questionID string) ([]*model.Answer, error)
	ExportAnswersCSVFunc func(ctx context.Context, questionID string, w io.Writer) error
}

var _ service.QuestionService = (*mockQuestionService)(nil)

func (m *mockQuestionService) Broadcast(ctx context.Context, accountID, text string) (*model.Question, error) {
	if m.BroadcastFunc != nil {
		return m.BroadcastFunc(ctx, accountID, text)
	}
	return &model.Question{ID: "q-1", AccountID: accountID, Text: text}, nil
}

func (m *mockQuestionService) Get(ctx context.Context, id string) (*model.Question, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockQuestionService) ListByAccount(ctx context.Context, accountID string) ([]*model.Question, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockQuestionService) CountByAccount(ctx context.Context, accountID string) (int, error) {
	if m.CountByAccountFunc != nil {
		return m.CountByAccountFunc(ctx, accountID)
	}
	return 0, nil
}

func (m *mockQuestionService) ListAnswers(ctx context.Context, questionID string) ([]*model.Answer, error) {
	if m.ListAnswersFunc != nil {
		return m.ListAnswersFunc(ctx, questionID)
	}
	return nil, nil
}

func (m *mockQuestionService) ExportAnswersCSV(ctx context.Context, questionID string, w io.Writer) error {
	if m.ExportAnswersCSVFunc != nil {
		return m.ExportAnswersCSVFunc(ctx, questionID, w)
	}
	return nil
}

type mockInboundService struct {
	HandleFunc func(ctx context.Context, fromRaw, body string) (service.Outcome, error)
}

var _ service.InboundService = (*mockInboundService)(nil)

func (m *mockInboundService) Handle(ctx context.Context, fromRaw, body string) (service.Outcome, error) {
	if m.HandleFunc != nil {
		return m.HandleFunc(ctx, fromRaw, body)
	}
	return service.OutcomeIgnored, nil
}
