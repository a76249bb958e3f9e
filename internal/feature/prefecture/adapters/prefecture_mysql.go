// Package adapters はprefectureフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"liveboard_backend/internal/feature/prefecture/domain/entity"
	"liveboard_backend/internal/feature/prefecture/usecase"
)

// prefectureMySQL はPrefectureRepositoryインターフェースのMySQL実装です。
type prefectureMySQL struct {
	db *gorm.DB
}

var _ usecase.PrefectureRepository = (*prefectureMySQL)(nil)

// NewPrefectureMySQL は指定されたgorm.DB接続でprefectureMySQLの新しいインスタンスを生成します。
func NewPrefectureMySQL(db *gorm.DB) *prefectureMySQL {
	return &prefectureMySQL{db: db}
}

// List はsort_key順にすべての都道府県を返します。
func (r *prefectureMySQL) List(ctx context.Context) ([]entity.Prefecture, error) {
	var prefs []entity.Prefecture
	if err := r.db.WithContext(ctx).
		Order("sort_key ASC").
		Find(&prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}

// Seed は正準の47都道府県をデータベースに投入します。
// 既存の名前はスキップされるため、起動のたびに呼んでも安全です。
func Seed(db *gorm.DB) error {
	rows := make([]entity.Prefecture, 0, len(entity.CanonicalNames))
	for i, name := range entity.CanonicalNames {
		rows = append(rows, entity.Prefecture{Name: name, SortKey: i + 1})
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
