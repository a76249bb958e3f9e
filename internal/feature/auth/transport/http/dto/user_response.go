package dto

// UserRes は/users/meエンドポイントのレスポンスを表します。
// パスワードハッシュ等の内部情報は含みません。
type UserRes struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname,omitempty"`
}
