// Package entity はprefectureフィーチャーのドメインエンティティを定義します。
package entity

// Prefecture は47都道府県の参照レコードです。
// 投稿のバリデーションと検索フィルタの閉じた列挙として使われ、
// PostはこのテーブルへのFKではなく名前を直接保持します。
type Prefecture struct {
	// ID は一意識別子です。
	ID uint `gorm:"primaryKey"`

	// Name は正準の都道府県名です。
	Name string `gorm:"uniqueIndex;size:16;not null"`

	// SortKey は北から南への表示順です。
	SortKey int `gorm:"not null"`
}

// CanonicalNames は47都道府県の正準名を北から南の順で保持します。
// マイグレーション時のシードとバリデーションの正としてここに定義します。
var CanonicalNames = []string{
	"北海道", "青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県",
	"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県",
	"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県", "岐阜県",
	"静岡県", "愛知県", "三重県", "滋賀県", "京都府", "大阪府", "兵庫県",
	"奈良県", "和歌山県", "鳥取県", "島根県", "岡山県", "広島県", "山口県",
	"徳島県", "香川県", "愛媛県", "高知県", "福岡県", "佐賀県", "長崎県",
	"熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県",
}
