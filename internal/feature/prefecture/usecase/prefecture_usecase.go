// Package usecase はprefectureフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"liveboard_backend/internal/feature/prefecture/domain/entity"
)

// PrefectureRepository は都道府県参照データの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PrefectureRepository interface {
	// List はすべての都道府県を表示順（北から南）で返します。
	List(ctx context.Context) ([]entity.Prefecture, error)
}

// PrefectureUsecase は都道府県の一覧取得と名前検証を提供します。
type PrefectureUsecase struct {
	repo  PrefectureRepository
	valid map[string]struct{}
}

// NewPrefectureUsecase はPrefectureUsecaseの新しいインスタンスを生成します。
// 名前検証は正準リストに対するインメモリ判定で、ストアへの問い合わせは行いません。
func NewPrefectureUsecase(repo PrefectureRepository) *PrefectureUsecase {
	valid := make(map[string]struct{}, len(entity.CanonicalNames))
	for _, name := range entity.CanonicalNames {
		valid[name] = struct{}{}
	}
	return &PrefectureUsecase{repo: repo, valid: valid}
}

// List はすべての都道府県を表示順で返します。
func (u *PrefectureUsecase) List(ctx context.Context) ([]entity.Prefecture, error) {
	return u.repo.List(ctx)
}

// IsValid は名前が47都道府県の正準名のいずれかであるかを判定します。
func (u *PrefectureUsecase) IsValid(name string) bool {
	_, ok := u.valid[name]
	return ok
}
