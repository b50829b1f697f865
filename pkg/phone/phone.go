// Package phone canonicalizes raw phone number input into the identity key
// used for contacts and accounts.
package phone

import "strings"

// Normalize は入力から数字以外を取り除き、正規化済み電話番号を返す。
// ちょうど 10 桁の場合は北米番号とみなし国番号 "1" を先頭に付与する。
// それ以外は数字列をそのまま返す（空文字になることもある）。
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 10 {
		return "1" + digits
	}
	return digits
}
