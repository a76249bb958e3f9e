package search

import "time"

// Filter はリポジトリが解釈する宣言的な検索条件です。
// 各条件はANDで結合されます。
type Filter struct {
	// Today は「過去の投稿を表示しない」ための下限日付（date >= Today）。
	// 常に設定されます。
	Today string

	// Date は日付トークンが抽出された場合の完全一致条件（date == Date）。
	Date string

	// Text は日付トークンが無い場合の残りフリーテキスト。
	// ストア層では各フィールドへの粗い部分一致ORとして扱われ、
	// 正確なトークン単位のAND判定はRefineが行います。
	Text string

	// Prefecture は都道府県の完全一致条件。空なら無条件。
	Prefecture string
}

// BuildFilter は生の検索クエリからリポジトリ向けのFilterを構築します。
// クエリは正規化後に日付トークンを抽出し、残りをフリーテキストとします。
// 下限日付はnowの暦日（時刻成分なし）で計算します。
func BuildFilter(now time.Time, rawQuery, prefecture string) Filter {
	f := Filter{
		Today:      now.Format("2006-01-02"),
		Prefecture: prefecture,
	}

	normalized := Normalize(rawQuery)
	if normalized == "" {
		return f
	}

	date, rest := ExtractDate(normalized)
	if date != "" {
		f.Date = date
		return f
	}
	f.Text = rest
	return f
}
