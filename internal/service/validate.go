package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for service-level input checks.
var validate = validator.New()

// registerInput は登録リクエストの検証用構造体
type registerInput struct {
	RawPhone string `validate:"required"`
	Nickname string `validate:"required,min=2,max=64"`
}

// checkQuestionText validates question text length against the configured
// bounds (rune count, not bytes).
func checkQuestionText(text string, min, max int) error {
	if err := validate.Var(text, fmt.Sprintf("required,min=%d,max=%d", min, max)); err != nil {
		return fmt.Errorf("%w: question text must be %d-%d characters", ErrInvalidInput, min, max)
	}
	return nil
}
