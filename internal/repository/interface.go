package repository

import (
	"context"

	"github.com/curious/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// AccountRepository はアカウント永続化のインターフェース
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	FindByID(ctx context.Context, id string) (*model.Account, error)
	FindBySlug(ctx context.Context, slug string) (*model.Account, error)
	FindByNickname(ctx context.Context, nickname string) (*model.Account, error)
	FindByPhone(ctx context.Context, phone string) (*model.Account, error)
	// LinkContact はアカウントとコンタクトを関連付ける。既に関連済みなら何もしない
	LinkContact(ctx context.Context, accountID, contactID string) error
	UnlinkContact(ctx context.Context, accountID, contactID string) error
	ListContacts(ctx context.Context, accountID string) ([]*model.Contact, error)
}

// ContactRepository はコンタクト永続化のインターフェース
type ContactRepository interface {
	// GetOrCreate は正規化済み電話番号でコンタクトを引き、無ければ作成する。
	// created は新規作成された場合に true。同一番号からの同時作成に対して安全
	GetOrCreate(ctx context.Context, contact *model.Contact) (created bool, err error)
	FindByID(ctx context.Context, id string) (*model.Contact, error)
	FindByPhone(ctx context.Context, phone string) (*model.Contact, error)
	// LinkQuestion はコンタクトと質問を関連付ける。既に関連済みなら何もしない
	LinkQuestion(ctx context.Context, contactID, questionID string) error
	// MostRecentQuestion はコンタクトに関連付いた質問のうち最新のものを返す。
	// 無ければ ErrNotFound
	MostRecentQuestion(ctx context.Context, contactID string) (*model.Question, error)
}

// QuestionRepository は質問永続化のインターフェース
type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id string) (*model.Question, error)
	ListByAccount(ctx context.Context, accountID string) ([]*model.Question, error)
	CountByAccount(ctx context.Context, accountID string) (int, error)
}

// AnswerRepository は回答永続化のインターフェース
type AnswerRepository interface {
	// CreateWithLink は回答の作成と contact_questions への関連付けを
	// 単一トランザクションで行う
	CreateWithLink(ctx context.Context, answer *model.Answer) error
	// ListByQuestion はコンタクトの電話番号を JOIN した回答一覧を返す
	ListByQuestion(ctx context.Context, questionID string) ([]*model.Answer, error)
}
