package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// twilioBaseURL は本番 API のベース URL。テストでは baseURL フィールドで差し替える。
const twilioBaseURL = "https://api.twilio.com"

// TwilioSender は Twilio Messages API への raw HTTP クライアント実装。
// SDK は使わず form POST + Basic 認証のみで実装する。
type TwilioSender struct {
	AccountSID string
	AuthToken  string
	From       string

	baseURL    string
	httpClient *http.Client
}

// NewTwilioSender は TwilioSender を生成する。
func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	return &TwilioSender{
		AccountSID: accountSID,
		AuthToken:  authToken,
		From:       from,
		baseURL:    twilioBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *TwilioSender) Name() string { return "twilio" }

// Send は Messages エンドポイントへ form POST し、エラー応答をデコードする。
func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	data := url.Values{}
	data.Set("To", to)
	data.Set("From", s.From)
	data.Set("Body", Truncate(body))

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.AccountSID, s.AuthToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Message == "" {
			return fmt.Errorf("twilio send: status %d", resp.StatusCode)
		}
		return fmt.Errorf("twilio send: %s (code %d)", errResp.Message, errResp.Code)
	}
	return nil
}
