// Package dto はprefectureフィーチャーのHTTP APIのデータ転送オブジェクトを定義します。
package dto

// PrefectureItem はAPIレスポンスにおける都道府県1件を表します。
type PrefectureItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
