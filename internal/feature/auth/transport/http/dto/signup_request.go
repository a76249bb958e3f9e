// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// SignupReq は/signupエンドポイントのリクエストボディを表します。
// 必須フィールドとメール形式・パスワード長のバリデーションを含みます。
type SignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
