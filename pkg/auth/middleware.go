package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const accountIDKey contextKey = "account_id"

// AccountIDFromContext は context からログイン中のアカウントIDを取得する
func AccountIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(accountIDKey).(string)
	return v, ok
}

// WithAccountID は context にアカウントIDをセットする
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// RequireAuth は認証必須ミドルウェア。セッションを検証し、アカウントIDを context にセットする
func RequireAuth(sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			accountID, err := VerifySessionToken(cookie.Value, sessionSecret)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_session"})
				return
			}

			ctx := WithAccountID(r.Context(), accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DevAccountID は開発用のダミーアカウントID（AUTH_REQUIRED=false 時に使用）
const DevAccountID = "dev-account-id"

// DevAuth は開発用ミドルウェア。ダミーアカウントIDを context にセットする
func DevAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithAccountID(r.Context(), DevAccountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
