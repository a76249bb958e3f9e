package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenRes はログイン成功時のレスポンスを表します。
type TokenRes struct {
	Token string `json:"token"`
}
