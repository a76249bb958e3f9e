// Package mail はSMTPによるメール送信を提供します。
package mail

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"

	"liveboard_backend/internal/feature/contact/domain/entity"
	"liveboard_backend/internal/shared/ratelimiter"
)

// Config はSMTP接続とメールアドレスの設定です。
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// From は送信元アドレスです。
	From string
	// AdminTo はお問い合わせ通知の宛先（運営者）アドレスです。
	AdminTo string
	// ResetURLBase はリセットリンクのベースURLです（例: https://example.com/reset-password）。
	ResetURLBase string
}

// ConfigFromEnv は環境変数からSMTP設定を読み込みます。
func ConfigFromEnv() Config {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return Config{
		Host:         os.Getenv("SMTP_HOST"),
		Port:         port,
		Username:     os.Getenv("SMTP_USER"),
		Password:     os.Getenv("SMTP_PASSWORD"),
		From:         os.Getenv("MAIL_FROM"),
		AdminTo:      os.Getenv("MAIL_TO"),
		ResetURLBase: os.Getenv("RESET_URL_BASE"),
	}
}

// SMTPMailer はgo-mailによるメール送信の実装です。
// authフィーチャーのResetMailerとcontactフィーチャーのContactMailerを兼ねます。
// 外部SMTPサービスの送信制限を超えないよう、送信はレートリミッタで制限します。
type SMTPMailer struct {
	cfg     Config
	limiter ratelimiter.RateLimiterInterface
}

// NewSMTPMailer は指定された設定とレートリミッタでSMTPMailerを生成します。
func NewSMTPMailer(cfg Config, limiter ratelimiter.RateLimiterInterface) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, limiter: limiter}
}

// SendPasswordReset はパスワードリセット用のトークンをユーザーにメールで送ります。
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	body := fmt.Sprintf(
		"パスワードリセットのリクエストを受け付けました。\n\n"+
			"以下のURLから1時間以内にパスワードを再設定してください。\n%s?token=%s\n\n"+
			"心当たりがない場合はこのメールを破棄してください。\n",
		m.cfg.ResetURLBase, token,
	)
	return m.send(ctx, email, "【ライブ掲示板】パスワードリセットのご案内", body)
}

// SendContactNotification はお問い合わせの内容を運営者に通知します。
func (m *SMTPMailer) SendContactNotification(ctx context.Context, contact *entity.Contact) error {
	body := fmt.Sprintf(
		"お問い合わせがありました。\n\n"+
			"名前: %s\nメールアドレス: %s\n件名: %s\n\nメッセージ:\n%s\n",
		contact.Name, contact.Email, contact.Subject, contact.Message,
	)
	return m.send(ctx, m.cfg.AdminTo, fmt.Sprintf("【お問い合わせ】%s", contact.Subject), body)
}

// send は1通のテキストメールを組み立てて送信します。
func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	if m.limiter != nil {
		m.limiter.WaitIfNeeded()
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
