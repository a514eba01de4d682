package reminder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrMailerNotConfigured 在缺少 API Key 或发件地址时返回。
var ErrMailerNotConfigured = errors.New("mailer requires api key and from address")

// Message 是对外发送能力的最小载荷。
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer 通过 SendGrid 的 mail/send 接口发出纯文本提醒邮件。
type Mailer struct {
	apiKey    string
	fromEmail string
	fromName  string
	client    httpDoer
	baseURL   string
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewMailer 构造 Mailer。
func NewMailer(apiKey, fromEmail, fromName string) *Mailer {
	return &Mailer{
		apiKey:    strings.TrimSpace(apiKey),
		fromEmail: strings.TrimSpace(fromEmail),
		fromName:  strings.TrimSpace(fromName),
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   "https://api.sendgrid.com",
	}
}

// SetHTTPClient 替换底层 HTTP 客户端，主要面向测试场景。
func (m *Mailer) SetHTTPClient(client httpDoer) {
	if client == nil {
		m.client = &http.Client{Timeout: 10 * time.Second}
		return
	}
	m.client = client
}

// SetBaseURL 覆盖 SendGrid API 的基础地址，便于测试或自定义代理。
func (m *Mailer) SetBaseURL(base string) {
	m.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// Send 发送一封纯文本邮件；非 2xx 响应视为发送失败。
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if m.apiKey == "" || m.fromEmail == "" {
		return ErrMailerNotConfigured
	}

	payload := map[string]interface{}{
		"personalizations": []map[string]interface{}{
			{"to": []map[string]string{{"email": msg.To}}},
		},
		"from":    map[string]string{"email": m.fromEmail, "name": m.fromName},
		"subject": msg.Subject,
		"content": []map[string]string{{"type": "text/plain", "value": msg.Body}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode mail payload: %w", err)
	}

	endpoint := m.baseURL + "/v3/mail/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		msg := strings.TrimSpace(string(detail))
		if msg != "" {
			return fmt.Errorf("sendgrid error %s: %s", resp.Status, msg)
		}
		return fmt.Errorf("sendgrid error %s", resp.Status)
	}

	return nil
}
