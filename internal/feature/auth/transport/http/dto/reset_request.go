package dto

// ResetRequestReq はパスワードリセット要求（POST /password-reset）のリクエストボディを表します。
type ResetRequestReq struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetConfirmReq はパスワード更新（PUT /password-reset）のリクエストボディを表します。
type ResetConfirmReq struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
