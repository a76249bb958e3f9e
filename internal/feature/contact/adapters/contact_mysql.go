// Package adapters はcontactフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"liveboard_backend/internal/feature/contact/domain/entity"
	"liveboard_backend/internal/feature/contact/usecase"
)

// contactMySQL はContactRepositoryインターフェースのMySQL実装です。
type contactMySQL struct {
	db *gorm.DB
}

var _ usecase.ContactRepository = (*contactMySQL)(nil)

// NewContactMySQL は指定されたgorm.DB接続でcontactMySQLの新しいインスタンスを生成します。
func NewContactMySQL(db *gorm.DB) *contactMySQL {
	return &contactMySQL{db: db}
}

// Create はお問い合わせをデータベースに追加します。
func (r *contactMySQL) Create(ctx context.Context, c *entity.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}
