package service

import "errors"

// Registration failures. Each maps to exactly one uniqueness invariant; the
// rejected registration persists nothing.
var (
	ErrDuplicateNickname = errors.New("nickname already registered")
	ErrDuplicateSlug     = errors.New("slug already registered")
	ErrDuplicatePhone    = errors.New("phone number already registered")
)

// ErrInvalidInput is returned when request data fails validation (missing
// phone, question text out of bounds, and so on).
var ErrInvalidInput = errors.New("invalid input")

// ErrNoQuestion is returned when an answer-classified message arrives for a
// contact with no linked question.
var ErrNoQuestion = errors.New("no outstanding question")
