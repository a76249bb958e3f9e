// Package entity はcontactフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Contact は利用者から送信されたお問い合わせを表します。
// 作成後の更新・削除パスは存在しません（write-once）。
type Contact struct {
	// ID はお問い合わせの一意識別子です。
	ID uint `gorm:"primaryKey"`

	// Name は送信者の名前です。
	Name string `gorm:"size:128;not null"`

	// Email は送信者の連絡先メールアドレスです。
	Email string `gorm:"size:255;not null"`

	// Subject は件名です。
	Subject string `gorm:"size:255;not null"`

	// Message は本文です。
	Message string `gorm:"type:text;not null"`

	// CreatedAt は送信日時です。
	CreatedAt time.Time
}
