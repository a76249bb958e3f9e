package cache

import (
	"time"
)

// TimeUntilMidnight は次の午前0時（日本時間）までの期間を返します。
// 検索結果の下限日付（当日）が日替わりで変わるため、
// キャッシュは日付の切り替わりで必ず失効させます。
func TimeUntilMidnight() time.Duration {
	loc, _ := time.LoadLocation("Asia/Tokyo")
	now := time.Now().In(loc)

	// 翌日の午前0時を計算
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).Add(24 * time.Hour)

	return midnight.Sub(now)
}
