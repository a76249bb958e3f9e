package dto

import "time"

// PostItem はAPIレスポンスにおける投稿1件を表します。
type PostItem struct {
	ID         uint      `json:"id"`
	EventName  string    `json:"eventName"`
	ArtistName string    `json:"artistName,omitempty"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Location   string    `json:"location"`
	Prefecture string    `json:"prefecture"`
	Website    string    `json:"website,omitempty"`
	Comment    string    `json:"comment,omitempty"`
	UserID     uint      `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SweepRes は過去投稿の掃除処理（GET /cron/delete-past-posts）のレスポンスを表します。
type SweepRes struct {
	DeletedCount int64 `json:"deletedCount"`
}
