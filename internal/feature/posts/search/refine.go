package search

import (
	"strings"

	"liveboard_backend/internal/feature/posts/domain/entity"
)

// Refine はストアの粗い部分一致結果をトークン単位で絞り込みます。
// textの空白区切りトークンすべてが、正規化済みの
// {イベント名, アーティスト名, 場所, コメント} のいずれかに
// 部分一致する投稿のみを残します（トークン間はAND、フィールド間はOR）。
// 比較は両辺ともNormalize済みのため、全半角・大文字小文字を区別しません。
// textが空の場合は入力をそのまま返します。
func Refine(posts []entity.Post, text string) []entity.Post {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return posts
	}

	out := make([]entity.Post, 0, len(posts))
	for _, p := range posts {
		fields := []string{
			Normalize(p.EventName),
			Normalize(p.ArtistName),
			Normalize(p.Location),
			Normalize(p.Comment),
		}
		if matchesAll(fields, tokens) {
			out = append(out, p)
		}
	}
	return out
}

// matchesAll は各トークンがいずれかのフィールドに含まれるかを判定します。
func matchesAll(fields, tokens []string) bool {
	for _, token := range tokens {
		found := false
		for _, field := range fields {
			if strings.Contains(field, token) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
