// Package adapters はpostsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"liveboard_backend/internal/feature/posts/domain/entity"
	"liveboard_backend/internal/feature/posts/search"
	"liveboard_backend/internal/feature/posts/usecase"
)

// postMySQL はPostRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type postMySQL struct {
	db *gorm.DB
}

// postMySQLがPostRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PostRepository = (*postMySQL)(nil)

// NewPostMySQL は指定されたgorm.DB接続でpostMySQLの新しいインスタンスを生成します。
func NewPostMySQL(db *gorm.DB) *postMySQL {
	return &postMySQL{db: db}
}

// FindByID はIDで投稿を取得します。
// 投稿が存在しない場合、usecase.ErrPostNotFoundを返します。
func (r *postMySQL) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var p entity.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create は投稿をデータベースに追加します。IDとタイムスタンプはGORMが設定します。
func (r *postMySQL) Create(ctx context.Context, p *entity.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update は投稿の全フィールドを保存します。
// 対象行が存在しない場合、usecase.ErrPostNotFoundを返します。
func (r *postMySQL) Update(ctx context.Context, p *entity.Post) error {
	res := r.db.WithContext(ctx).Model(&entity.Post{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"event_name":  p.EventName,
			"artist_name": p.ArtistName,
			"date":        p.Date,
			"time":        p.Time,
			"location":    p.Location,
			"prefecture":  p.Prefecture,
			"website":     p.Website,
			"comment":     p.Comment,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPostNotFound
	}
	return nil
}

// Delete はIDで投稿を削除します。
// 対象行が存在しない場合、usecase.ErrPostNotFoundを返します。
func (r *postMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPostNotFound
	}
	return nil
}

// Search はフィルタ条件を満たす投稿を日付昇順・時刻昇順で返します。
// フリーテキスト条件はストア層では粗いLIKEのORとして扱われ、
// トークン単位の正確な判定はusecase側のRefineが行います。
func (r *postMySQL) Search(ctx context.Context, f search.Filter) ([]entity.Post, error) {
	q := r.db.WithContext(ctx).Where("date >= ?", f.Today)

	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	} else if f.Text != "" {
		// トークンごとに全フィールドをORで照合する。いずれかのトークンが
		// どこかに一致すれば候補として残し、AND判定はRefineに委ねる。
		or := r.db
		for i, token := range strings.Fields(f.Text) {
			like := "%" + token + "%"
			cond := r.db.Where("event_name LIKE ?", like).
				Or("artist_name LIKE ?", like).
				Or("location LIKE ?", like).
				Or("comment LIKE ?", like)
			if i == 0 {
				or = cond
			} else {
				or = or.Or(cond)
			}
		}
		q = q.Where(or)
	}
	if f.Prefecture != "" {
		q = q.Where("prefecture = ?", f.Prefecture)
	}

	var posts []entity.Post
	if err := q.Order("date ASC, time ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// DeleteBefore は指定日付より前の投稿をすべて削除し、削除件数を返します。
// 掃除処理用のため、対象が無い場合もエラーにはなりません。
func (r *postMySQL) DeleteBefore(ctx context.Context, date string) (int64, error) {
	res := r.db.WithContext(ctx).Where("date < ?", date).Delete(&entity.Post{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
