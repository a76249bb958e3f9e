package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"liveboard_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 6

	// resetTokenBytes はリセットトークンの乱数バイト長です（hex表現で64文字）。
	resetTokenBytes = 32

	// resetTokenTTL はリセットトークンの有効期間です。
	resetTokenTTL = time.Hour
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// SetResetToken はユーザーにパスワードリセットトークンと有効期限を設定します。
	SetResetToken(ctx context.Context, userID uint, token string, expiry time.Time) error

	// FindByResetToken はリセットトークンに一致するユーザーを取得します。
	// 有効期限の判定は呼び出し側が行います。
	FindByResetToken(ctx context.Context, token string) (*entity.User, error)

	// UpdatePassword はパスワードハッシュを更新し、リセットトークンをクリアします。
	UpdatePassword(ctx context.Context, userID uint, hashedPassword string) error

	// DeleteWithPosts はユーザーの全投稿を削除した後、ユーザー本体を削除します。
	// 両方の削除は単一トランザクションで行われます。
	DeleteWithPosts(ctx context.Context, userID uint) error
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// ResetMailer はパスワードリセットメールの送信を抽象化します。
// メール転送の実体（SMTP等）はplatform側の実装に委ねます。
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// AuthUsecase は認証・アカウント管理のビジネスロジックを実装します。
type AuthUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	mailer       ResetMailer
	now          func() time.Time
}

// NewAuthUsecase はAuthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator, mailer ResetMailer) *AuthUsecase {
	return &AuthUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		mailer:       mailer,
		now:          time.Now,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
func (u *AuthUsecase) Signup(ctx context.Context, email, password string) error {
	// パスワード強度を検証
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Email: email, Password: string(hashed)}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}

// CurrentUser は認証済みユーザー自身の情報を返します。
func (u *AuthUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// DeleteAccount はユーザーの全投稿とアカウント本体を削除します。
// 投稿の削除はアプリケーション層のカスケードとして単一トランザクションで行われます。
func (u *AuthUsecase) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		return err
	}
	return u.users.DeleteWithPosts(ctx, userID)
}

// RequestPasswordReset はリセットトークンを発行・保存し、メールで通知します。
// トークンは乱数32バイトのhex表現で、有効期限は1時間です。
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)
	expiry := u.now().Add(resetTokenTTL)

	if err := u.users.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		return err
	}

	return u.mailer.SendPasswordReset(ctx, user.Email, token)
}

// ConfirmPasswordReset はトークンを検証し、新しいパスワードを設定します。
// トークンは一度使用されるとクリアされ、再利用できません。
func (u *AuthUsecase) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	user, err := u.users.FindByResetToken(ctx, token)
	if err != nil {
		return ErrInvalidResetToken
	}
	if user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(u.now()) {
		return ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return u.users.UpdatePassword(ctx, user.ID, string(hashed))
}
