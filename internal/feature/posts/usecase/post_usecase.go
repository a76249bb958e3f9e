package usecase

import (
	"context"
	"regexp"
	"time"
	"unicode/utf8"

	"liveboard_backend/internal/feature/posts/domain/entity"
	"liveboard_backend/internal/feature/posts/search"
)

const (
	// maxCommentLength はコメントの最大文字数（フォームと同じ制限）です。
	maxCommentLength = 40
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// PostRepository は投稿エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PostRepository interface {
	// FindByID は指定されたIDの投稿を取得します。
	// 投稿が存在しない場合、ErrPostNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Post, error)

	// Create は新しい投稿を永続化し、IDを採番します。
	Create(ctx context.Context, post *entity.Post) error

	// Update は投稿の編集可能フィールドを完全置換します。
	// 投稿が存在しない場合、ErrPostNotFoundを返します。
	Update(ctx context.Context, post *entity.Post) error

	// Delete は指定されたIDの投稿を削除します。
	// 投稿が存在しない場合、ErrPostNotFoundを返します。
	Delete(ctx context.Context, id uint) error

	// Search はフィルタ条件を満たす投稿を日付昇順・時刻昇順で返します。
	Search(ctx context.Context, f search.Filter) ([]entity.Post, error)

	// DeleteBefore は指定日付より前の投稿をすべて削除し、件数を返します。
	// 対象が存在しない場合はエラーではなく0を返します。
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

// PrefectureValidator は都道府県名が正準リストに含まれるかを検証します。
type PrefectureValidator interface {
	IsValid(name string) bool
}

// PostInput は投稿の作成・更新で受け取る編集可能フィールドの集合です。
type PostInput struct {
	EventName  string
	ArtistName string
	Date       string
	Time       string
	Location   string
	Prefecture string
	Website    string
	Comment    string
}

// PostUsecase は投稿の検索・作成・更新・削除のビジネスロジックを提供します。
type PostUsecase struct {
	posts       PostRepository
	prefectures PrefectureValidator
	now         func() time.Time
}

// NewPostUsecase はPostUsecaseの新しいインスタンスを生成します。
func NewPostUsecase(posts PostRepository, prefectures PrefectureValidator) *PostUsecase {
	return &PostUsecase{
		posts:       posts,
		prefectures: prefectures,
		now:         time.Now,
	}
}

// List は検索クエリと都道府県フィルタに一致する投稿を返します。
//
// パイプライン: 正規化 → 日付トークン抽出 → フィルタ構築 → ストア検索 → トークン絞り込み。
// 下限日付（当日以降）は常に適用されるため、過去の投稿は削除前でも一覧から消えます。
func (u *PostUsecase) List(ctx context.Context, rawQuery, prefecture string) ([]entity.Post, error) {
	f := search.BuildFilter(u.now(), rawQuery, prefecture)

	posts, err := u.posts.Search(ctx, f)
	if err != nil {
		return nil, err
	}

	// 日付トークンが抽出されなかった場合のみ、フリーテキストで絞り込む。
	// ストア層のOR部分一致は粗い事前フィルタであり、
	// 「全トークンがいずれかのフィールドに一致する」判定はここで行う。
	return search.Refine(posts, f.Text), nil
}

// Get は指定されたIDの投稿を返します。
func (u *PostUsecase) Get(ctx context.Context, id uint) (*entity.Post, error) {
	return u.posts.FindByID(ctx, id)
}

// Create は入力を検証し、requesterIDを投稿者として新しい投稿を作成します。
func (u *PostUsecase) Create(ctx context.Context, in PostInput, requesterID uint) (*entity.Post, error) {
	if err := u.validate(in); err != nil {
		return nil, err
	}

	post := &entity.Post{
		EventName:  in.EventName,
		ArtistName: in.ArtistName,
		Date:       in.Date,
		Time:       in.Time,
		Location:   in.Location,
		Prefecture: in.Prefecture,
		Website:    in.Website,
		Comment:    in.Comment,
		UserID:     requesterID,
	}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Replace は投稿の編集可能フィールドを完全置換します。
// requesterIDが投稿者と一致しない場合、ErrForbiddenを返します。
func (u *PostUsecase) Replace(ctx context.Context, id uint, in PostInput, requesterID uint) (*entity.Post, error) {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != requesterID {
		return nil, ErrForbidden
	}

	if err := u.validate(in); err != nil {
		return nil, err
	}

	post.EventName = in.EventName
	post.ArtistName = in.ArtistName
	post.Date = in.Date
	post.Time = in.Time
	post.Location = in.Location
	post.Prefecture = in.Prefecture
	post.Website = in.Website
	post.Comment = in.Comment

	if err := u.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete は投稿者本人による投稿の削除を行います。
// requesterIDが投稿者と一致しない場合、ErrForbiddenを返します。
// 存在しないIDに対してはErrPostNotFoundを返します。
func (u *PostUsecase) Delete(ctx context.Context, id, requesterID uint) error {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != requesterID {
		return ErrForbidden
	}
	return u.posts.Delete(ctx, id)
}

// SweepPast は当日より前の日付の投稿をすべて削除し、削除件数を返します。
// スケジューラから呼ばれる掃除処理で、投稿者チェックは行いません。
func (u *PostUsecase) SweepPast(ctx context.Context) (int64, error) {
	today := u.now().Format("2006-01-02")
	return u.posts.DeleteBefore(ctx, today)
}

// validate は編集可能フィールドの書き込み時検証を行います。
// 必須フィールドの欠落、日付・時刻の形式不正、過去日付、
// 不正な都道府県名、コメント超過をValidationErrorとして報告します。
func (u *PostUsecase) validate(in PostInput) error {
	var fields []string

	if in.EventName == "" {
		fields = append(fields, "eventName")
	}
	switch {
	case in.Date == "":
		fields = append(fields, "date")
	case !datePattern.MatchString(in.Date):
		fields = append(fields, "date")
	case in.Date < u.now().Format("2006-01-02"):
		// 過去の日付では投稿できない（既存投稿は時間経過で自然に過去になる）
		fields = append(fields, "date")
	}
	if in.Time == "" || !timePattern.MatchString(in.Time) {
		fields = append(fields, "time")
	}
	if in.Location == "" {
		fields = append(fields, "location")
	}
	if in.Prefecture == "" || !u.prefectures.IsValid(in.Prefecture) {
		fields = append(fields, "prefecture")
	}
	if utf8.RuneCountInString(in.Comment) > maxCommentLength {
		fields = append(fields, "comment")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
