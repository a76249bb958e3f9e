// Package dto はcontactフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// ContactReq はお問い合わせ（POST /contact）のリクエストボディを表します。
type ContactReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
