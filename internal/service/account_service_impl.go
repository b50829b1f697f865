package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/curious/backend/internal/model"
	"github.com/curious/backend/internal/repository"
	"github.com/curious/backend/pkg/phone"
	"github.com/google/uuid"
)

// accountServiceImpl is the production implementation of AccountService.
type accountServiceImpl struct {
	accounts repository.AccountRepository
	contacts repository.ContactRepository
}

// NewAccountService creates an AccountService backed by the given repositories.
func NewAccountService(accounts repository.AccountRepository, contacts repository.ContactRepository) AccountService {
	return &accountServiceImpl{accounts: accounts, contacts: contacts}
}

// Register は検証・重複チェックの上でアカウントを作成する。
// ニックネーム・スラグ・電話番号のいずれかが重複していれば何も永続化しない
func (s *accountServiceImpl) Register(ctx context.Context, rawPhone, nickname string) (*model.Account, error) {
	nickname = strings.TrimSpace(nickname)
	if err := validate.Struct(registerInput{RawPhone: rawPhone, Nickname: nickname}); err != nil {
		return nil, ErrInvalidInput
	}

	canonical := phone.Normalize(rawPhone)
	if canonical == "" {
		return nil, ErrInvalidInput
	}
	slug := model.SlugFromNickname(nickname)
	if slug == "" {
		return nil, ErrInvalidInput
	}

	// Pre-checks give the caller a precise sentinel. The unique constraints
	// remain the source of truth for concurrent registrations.
	if err := s.checkAvailable(ctx, nickname, slug, canonical); err != nil {
		return nil, err
	}

	account := &model.Account{
		ID:        uuid.New().String(),
		Nickname:  nickname,
		Slug:      slug,
		Phone:     canonical,
		RawPhone:  rawPhone,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		var dup *repository.DuplicateError
		if errors.As(err, &dup) {
			return nil, sentinelForConstraint(dup.Constraint)
		}
		return nil, err
	}
	return account, nil
}

func (s *accountServiceImpl) checkAvailable(ctx context.Context, nickname, slug, canonical string) error {
	if _, err := s.accounts.FindByNickname(ctx, nickname); err == nil {
		return ErrDuplicateNickname
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if _, err := s.accounts.FindBySlug(ctx, slug); err == nil {
		return ErrDuplicateSlug
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if _, err := s.accounts.FindByPhone(ctx, canonical); err == nil {
		return ErrDuplicatePhone
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

// sentinelForConstraint maps a violated accounts constraint to its sentinel.
func sentinelForConstraint(constraint string) error {
	switch {
	case strings.Contains(constraint, "nickname"):
		return ErrDuplicateNickname
	case strings.Contains(constraint, "slug"):
		return ErrDuplicateSlug
	case strings.Contains(constraint, "phone"):
		return ErrDuplicatePhone
	default:
		return repository.ErrDuplicate
	}
}

// Login はログインフォームの電話番号からアカウントを引く
func (s *accountServiceImpl) Login(ctx context.Context, rawPhone string) (*model.Account, error) {
	canonical := phone.Normalize(rawPhone)
	if canonical == "" {
		return nil, repository.ErrNotFound
	}
	return s.accounts.FindByPhone(ctx, canonical)
}

func (s *accountServiceImpl) Get(ctx context.Context, id string) (*model.Account, error) {
	return s.accounts.FindByID(ctx, id)
}

func (s *accountServiceImpl) FindBySlug(ctx context.Context, slug string) (*model.Account, error) {
	return s.accounts.FindBySlug(ctx, slug)
}

// ImportContacts は番号ごとに resolve-or-create して関連付ける。
// 失敗した番号はスキップし、バッチ全体は中断しない
func (s *accountServiceImpl) ImportContacts(ctx context.Context, accountID string, rawPhones []string) (int, error) {
	if _, err := s.accounts.FindByID(ctx, accountID); err != nil {
		return 0, err
	}

	linked := 0
	for _, raw := range rawPhones {
		canonical := phone.Normalize(raw)
		if canonical == "" {
			slog.Warn("import: skipping unparseable number", "raw", raw)
			continue
		}
		contact := &model.Contact{
			ID:        uuid.New().String(),
			Phone:     canonical,
			RawPhone:  raw,
			CreatedAt: time.Now().UTC(),
		}
		if _, err := s.contacts.GetOrCreate(ctx, contact); err != nil {
			slog.Warn("import: contact create failed, skipping", "phone", canonical, "error", err)
			continue
		}
		if err := s.accounts.LinkContact(ctx, accountID, contact.ID); err != nil {
			slog.Warn("import: link failed, skipping", "phone", canonical, "error", err)
			continue
		}
		linked++
	}
	return linked, nil
}

func (s *accountServiceImpl) RemoveContact(ctx context.Context, accountID, contactID string) error {
	return s.accounts.UnlinkContact(ctx, accountID, contactID)
}

func (s *accountServiceImpl) ListContacts(ctx context.Context, accountID string) ([]*model.Contact, error) {
	return s.accounts.ListContacts(ctx, accountID)
}
