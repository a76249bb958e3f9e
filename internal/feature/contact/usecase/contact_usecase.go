// Package usecase はcontactフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"

	"liveboard_backend/internal/feature/contact/domain/entity"
)

// ContactRepository はお問い合わせの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ContactRepository interface {
	// Create はお問い合わせをストレージに永続化します。
	Create(ctx context.Context, contact *entity.Contact) error
}

// ContactMailer はサイト運営者へのお問い合わせ通知メール送信を抽象化します。
type ContactMailer interface {
	SendContactNotification(ctx context.Context, contact *entity.Contact) error
}

// ContactInput はお問い合わせフォームの入力値です。
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactUsecase はお問い合わせの受付処理を実装します。
type ContactUsecase struct {
	contacts ContactRepository
	mailer   ContactMailer
}

// NewContactUsecase はContactUsecaseの新しいインスタンスを生成します。
func NewContactUsecase(contacts ContactRepository, mailer ContactMailer) *ContactUsecase {
	return &ContactUsecase{contacts: contacts, mailer: mailer}
}

// Submit はお問い合わせを保存し、運営者にメールで通知します。
// メール送信はベストエフォートであり、失敗しても保存済みであれば
// 処理自体は成功として扱います（mailedで送信可否を返します）。
func (u *ContactUsecase) Submit(ctx context.Context, in ContactInput) (contact *entity.Contact, mailed bool, err error) {
	contact = &entity.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := u.contacts.Create(ctx, contact); err != nil {
		return nil, false, err
	}

	if mailErr := u.mailer.SendContactNotification(ctx, contact); mailErr != nil {
		// 保存は成功しているため続行する
		slog.Warn("contact notification mail failed", "error", mailErr, "contact_id", contact.ID)
		return contact, false, nil
	}
	return contact, true, nil
}
