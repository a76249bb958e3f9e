// Package dto はpostsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// PostReq は投稿の作成（POST /posts）・更新（PUT /posts/:id）のリクエストボディを表します。
// 必須チェックと形式チェックはGinのbindingタグで行い、
// 過去日付や都道府県名などのドメイン検証はusecase側で行います。
type PostReq struct {
	EventName  string `json:"eventName" binding:"required"`
	ArtistName string `json:"artistName"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Location   string `json:"location" binding:"required"`
	Prefecture string `json:"prefecture" binding:"required"`
	Website    string `json:"website" binding:"omitempty,url"`
	Comment    string `json:"comment" binding:"max=40"`
}
