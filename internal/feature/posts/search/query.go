package search

import (
	"regexp"
	"strings"
)

// datePattern は検索文字列に埋め込まれた日付トークンを検出します。
// 暦として有効かどうかは検証しません（無効な日付は0件ヒットになるだけ）。
var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// ExtractDate は正規化済みクエリから最初の日付トークン（YYYY-MM-DD）を
// 切り出し、残りのフリーテキストとともに返します。
// 日付が含まれない場合、dateは空文字列、restは入力そのものです。
func ExtractDate(query string) (date, rest string) {
	loc := datePattern.FindStringIndex(query)
	if loc == nil {
		return "", query
	}
	date = query[loc[0]:loc[1]]
	remainder := query[:loc[0]] + " " + query[loc[1]:]
	rest = strings.Join(strings.Fields(remainder), " ")
	return date, rest
}
