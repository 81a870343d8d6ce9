package mail

import (
	"context"
	"fmt"
	"time"

	"chickenshop/internal/config"

	gomail "github.com/wneessen/go-mail"
)

// 確認メールの件名と本文は固定フォーマット
const subject = "Your Chicken Order Confirmation"

// webhookの応答を止めないよう送信全体に期限を切る
const sendTimeout = 10 * time.Second

// SMTPSenderは外部のメールリレー（STARTTLS＋認証）経由で
// 注文確認メールを送る。リトライやキューは持たない。
type SMTPSender struct {
	client *gomail.Client
	from   string
}

// DI
func NewSMTPSender(cfg config.Config) (*SMTPSender, error) {
	client, err := gomail.NewClient(cfg.SMTPHost,
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTPUsername),
		gomail.WithPassword(cfg.SMTPPassword),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPSender{client: client, from: cfg.MailFrom}, nil
}

// Sendは宛先に確認メールを1通送る。失敗はそのまま返す（呼び出し側でログ）
func (s *SMTPSender) Send(ctx context.Context, to string, orderDetails string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, "Thank you for your order: "+orderDetails)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
