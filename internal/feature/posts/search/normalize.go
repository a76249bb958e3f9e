// Package search は投稿検索の正規化・フィルタ構築ロジックを提供します。
// ストアに依存しない純粋な関数のみで構成されます。
package search

import (
	"strings"

	"golang.org/x/text/width"
)

// Normalize は検索文字列を比較可能な正準形に変換します。
// 適用順:
//  1. 半角カタカナ → 全角カタカナ
//  2. 全角英数字 → 半角英数字
//  3. 全角スペース → 半角スペース
//  4. 小文字化
//  5. 連続する空白を1つに圧縮し、前後の空白を除去
//
// 冪等であり、正規化済み文字列を再度正規化しても変化しません。
// 漢字・ひらがな等の非英数字はそのまま通過します。
func Normalize(s string) string {
	// width.Fold は半角カナを全角へ、全角英数字・全角スペースを半角へ畳み込む
	folded := width.Fold.String(s)
	lowered := strings.ToLower(folded)
	return strings.Join(strings.Fields(lowered), " ")
}
