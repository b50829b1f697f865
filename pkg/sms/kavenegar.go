package sms

import (
	"context"
	"fmt"

	"github.com/kavenegar/kavenegar-go"
)

// KavenegarSender は Kavenegar SDK を使った Sender 実装。
type KavenegarSender struct {
	api    *kavenegar.Kavenegar
	sender string
}

// NewKavenegarSender は KavenegarSender を生成する。
func NewKavenegarSender(apiKey, sender string) *KavenegarSender {
	return &KavenegarSender{
		api:    kavenegar.New(apiKey),
		sender: sender,
	}
}

func (s *KavenegarSender) Name() string { return "kavenegar" }

// Send は Message.Send でテキストを送信する。
func (s *KavenegarSender) Send(ctx context.Context, to, body string) error {
	if to == "" {
		return fmt.Errorf("kavenegar send: phone number is required")
	}
	res, err := s.api.Message.Send(s.sender, []string{to}, Truncate(body), nil)
	if err != nil {
		switch err := err.(type) {
		case *kavenegar.APIError:
			return fmt.Errorf("kavenegar API error: %w", err)
		case *kavenegar.HTTPError:
			return fmt.Errorf("kavenegar HTTP error: %w", err)
		default:
			return fmt.Errorf("kavenegar send: %w", err)
		}
	}
	if len(res) == 0 {
		return fmt.Errorf("kavenegar send: empty response")
	}
	return nil
}
