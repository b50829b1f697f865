// Package sms provides outbound text-message delivery for Curious.
// A Sender is best-effort: callers are expected to log failures and move on,
// delivery is never guaranteed.
package sms

import (
	"context"
	"log/slog"
	"os"
)

// MaxBodyLen は 1 通の SMS 本文の最大文字数。超過分は送信時に切り詰める。
const MaxBodyLen = 160

// Sender は電話番号へテキストを送る能力を抽象化する。
type Sender interface {
	// Send は本文を to へ送信する。本文が MaxBodyLen を超える場合は
	// 実装側で切り詰める。
	Send(ctx context.Context, to, body string) error
	// Name は実装を識別するプロバイダ名を返す（メトリクスのラベル用）。
	Name() string
}

// Truncate は本文を MaxBodyLen 文字（rune 単位）に切り詰める。
func Truncate(body string) string {
	r := []rune(body)
	if len(r) <= MaxBodyLen {
		return body
	}
	return string(r[:MaxBodyLen])
}

// NoopSender はログに残すだけで何も送らない Sender。
// プロバイダ未設定の開発環境で使う。
type NoopSender struct{}

func (NoopSender) Send(ctx context.Context, to, body string) error {
	slog.Debug("sms noop: dropping message", "to", to, "len", len(body))
	return nil
}

func (NoopSender) Name() string { return "noop" }

// NewSenderFromEnv は SMS_PROVIDER 環境変数に応じた Sender を返す。
// 対応プロバイダ: "twilio", "kavenegar"。未設定・未対応は noop にフォールバック。
func NewSenderFromEnv() Sender {
	provider := os.Getenv("SMS_PROVIDER")
	switch provider {
	case "twilio":
		sid := os.Getenv("TWILIO_ACCOUNT_SID")
		token := os.Getenv("TWILIO_AUTH_TOKEN")
		from := os.Getenv("TWILIO_FROM_NUMBER")
		if sid == "" || token == "" || from == "" {
			slog.Warn("SMS_PROVIDER is twilio but credentials are incomplete, using noop sender")
			return NoopSender{}
		}
		return NewTwilioSender(sid, token, from)
	case "kavenegar":
		apiKey := os.Getenv("SMS_API_KEY")
		if apiKey == "" {
			slog.Warn("SMS_PROVIDER is kavenegar but SMS_API_KEY is not set, using noop sender")
			return NoopSender{}
		}
		return NewKavenegarSender(apiKey, os.Getenv("SMS_SENDER"))
	case "":
		slog.Warn("SMS_PROVIDER is not set, using noop sender")
		return NoopSender{}
	default:
		slog.Warn("unknown SMS_PROVIDER, using noop sender", "provider", provider)
		return NoopSender{}
	}
}
