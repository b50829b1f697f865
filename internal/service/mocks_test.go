package service

import (
	"context"
	"sync"

	"github.com/curious/backend/internal/metrics"
	"github.com/curious/backend/internal/model"
	"github.com/curious/backend/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
)

// ---------------------------------------------------------------------------
// Func-field repository mocks shared by the service tests
// ---------------------------------------------------------------------------

type mockAccountRepository struct {
	createFunc         func(ctx context.Context, account *model.Account) error
	findByIDFunc       func(ctx context.Context, id string) (*model.Account, error)
	findBySlugFunc     func(ctx context.Context, slug string) (*model.Account, error)
	findByNicknameFunc func(ctx context.Context, nickname string) (*model.Account, error)
	findByPhoneFunc    func(ctx context.Context, phone string) (*model.Account, error)
	linkContactFunc    func(ctx context.Context, accountID, contactID string) error
	unlinkContactFunc  func(ctx context.Context, accountID, contactID string) error
	listContactsFunc   func(ctx context.Context, accountID string) ([]*model.Contact, error)
}

func (m *mockAccountRepository) Create(ctx context.Context, account *model.Account) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, account)
	}
	return nil
}

func (m *mockAccountRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return &model.Account{ID: id}, nil
}

func (m *mockAccountRepository) FindBySlug(ctx context.Context, slug string) (*model.Account, error) {
	if m.findBySlugFunc != nil {
		return m.findBySlugFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAccountRepository) FindByNickname(ctx context.Context, nickname string) (*model.Account, error) {
	if m.findByNicknameFunc != nil {
		return m.findByNicknameFunc(ctx, nickname)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAccountRepository) FindByPhone(ctx context.Context, phone string) (*model.Account, error) {
	if m.findByPhoneFunc != nil {
		return m.findByPhoneFunc(ctx, phone)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAccountRepository) LinkContact(ctx context.Context, accountID, contactID string) error {
	if m.linkContactFunc != nil {
		return m.linkContactFunc(ctx, accountID, contactID)
	}
	return nil
}

func (m *mockAccountRepository) UnlinkContact(ctx context.Context, accountID, contactID string) error {
	if m.unlinkContactFunc != nil {
		return m.unlinkContactFunc(ctx, accountID, contactID)
	}
	return nil
}

func (m *mockAccountRepository) ListContacts(ctx context.Context, accountID string) ([]*model.Contact, error) {
	if m.listContactsFunc != nil {
		return m.listContactsFunc(ctx, accountID)
	}
	return nil, nil
}

type mockContactRepository struct {
	getOrCreateFunc        func(ctx context.Context, contact *model.Contact) (bool, error)
	findByIDFunc           func(ctx context.Context, id string) (*model.Contact, error)
	findByPhoneFunc        func(ctx context.Context, phone string) (*model.Contact, error)
	linkQuestionFunc       func(ctx context.Context, contactID, questionID string) error
	mostRecentQuestionFunc func(ctx context.Context, contactID string) (*model.Question, error)
}

func (m *mockContactRepository) GetOrCreate(ctx context.Context, contact *model.Contact) (bool, error) {
	if m.getOrCreateFunc != nil {
		return m.getOrCreateFunc(ctx, contact)
	}
	return false, nil
}

func (m *mockContactRepository) FindByID(ctx context.Context, id string) (*model.Contact, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return &model.Contact{ID: id}, nil
}

func (m *mockContactRepository) FindByPhone(ctx context.Context, phone string) (*model.Contact, error) {
	if m.findByPhoneFunc != nil {
		return m.findByPhoneFunc(ctx, phone)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactRepository) LinkQuestion(ctx context.Context, contactID, questionID string) error {
	if m.linkQuestionFunc != nil {
		return m.linkQuestionFunc(ctx, contactID, questionID)
	}
	return nil
}

func (m *mockContactRepository) MostRecentQuestion(ctx context.Context, contactID string) (*model.Question, error) {
	if m.mostRecentQuestionFunc != nil {
		return m.mostRecentQuestionFunc(ctx, contactID)
	}
	return nil, repository.ErrNotFound
}

type mockQuestionRepository struct {
	createFunc         func(ctx context.Context, question *model.Question) error
	findByIDFunc       func(ctx context.Context, id string) (*model.Question, error)
	listByAccountFunc  func(ctx context.Context, accountID string) ([]*model.Question, error)
	countByAccountFunc func(ctx context.Context, accountID string) (int, error)
}

func (m *mockQuestionRepository) Create(ctx context.Context, question *model.Question) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, question)
	}
	return nil
}

func (m *mockQuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return &model.Question{ID: id}, nil
}

func (m *mockQuestionRepository) ListByAccount(ctx context.Context, accountID string) ([]*model.Question, error) {
	if m.listByAccountFunc != nil {
		return m.listByAccountFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockQuestionRepository) CountByAccount(ctx context.Context, accountID string) (int, error) {
	if m.countByAccountFunc != nil {
		return m.countByAccountFunc(ctx, accountID)
	}
	return 0, nil
}

type mockAnswerRepository struct {
	createWithLinkFunc func(ctx context.Context, answer *model.Answer) error
	listByQuestionFunc func(ctx context.Context, questionID string) ([]*model.Answer, error)
}

func (m *mockAnswerRepository) CreateWithLink(ctx context.Context, answer *model.Answer) error {
	if m.createWithLinkFunc != nil {
		return m.createWithLinkFunc(ctx, answer)
	}
	return nil
}

func (m *mockAnswerRepository) ListByQuestion(ctx context.Context, questionID string) ([]*model.Answer, error) {
	if m.listByQuestionFunc != nil {
		return m.listByQuestionFunc(ctx, questionID)
	}
	return nil, nil
}

// recordingQueue captures enqueued sends for assertions.
type recordingQueue struct {
	mu    sync.Mutex
	sends []queuedSend
}

type queuedSend struct {
	To   string
	Body string
}

func (q *recordingQueue) Enqueue(to, body string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sends = append(q.sends, queuedSend{To: to, Body: body})
}

func (q *recordingQueue) all() []queuedSend {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]queuedSend(nil), q.sends...)
}

func testMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}
