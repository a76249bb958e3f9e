// Package entity はpostsフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Post はライブ・フェス等のイベント掲載情報を表します。
type Post struct {
	// ID は投稿の一意識別子です。
	ID uint `gorm:"primaryKey"`

	// EventName はイベント名（必須）です。
	EventName string `gorm:"size:255;not null"`

	// ArtistName は出演アーティスト名（任意）です。
	ArtistName string `gorm:"size:255"`

	// Date は開催日をISO形式（YYYY-MM-DD）で保持します。
	// ゼロ埋め文字列の辞書順比較が時系列順と一致します。
	Date string `gorm:"size:10;not null;index"`

	// Time は開演時刻（HH:MM）です。
	Time string `gorm:"size:5;not null"`

	// Location は会場・場所のフリーテキスト（必須）です。
	Location string `gorm:"size:255;not null"`

	// Prefecture は47都道府県の正準名のいずれかです。
	// Prefectureテーブルへの外部キーではなく名前を直接保持します。
	Prefecture string `gorm:"size:16;not null"`

	// Website は公式サイトURL（任意）です。
	Website string `gorm:"size:512"`

	// Comment は紹介コメント（任意、40文字以内）です。
	Comment string `gorm:"size:160"`

	// UserID は投稿者のユーザーIDです。編集・削除は投稿者本人のみ可能です。
	UserID uint `gorm:"not null;index"`

	// CreatedAt は投稿の作成日時です。
	CreatedAt time.Time

	// UpdatedAt は投稿の最終更新日時です。
	UpdatedAt time.Time
}
