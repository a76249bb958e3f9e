// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"liveboard_backend/internal/feature/auth/domain/entity"
	"liveboard_backend/internal/feature/auth/transport/http/dto"
	"liveboard_backend/internal/feature/auth/usecase"
	jwtmw "liveboard_backend/internal/platform/jwt"
)

// AuthUsecase は認証・アカウント管理操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は指定されたメールアドレスとパスワードで新規ユーザーを登録します。
	Signup(ctx context.Context, email, password string) error
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
	// CurrentUser は認証済みユーザー自身の情報を返します。
	CurrentUser(ctx context.Context, userID uint) (*entity.User, error)
	// DeleteAccount はユーザーの全投稿とアカウント本体を削除します。
	DeleteAccount(ctx context.Context, userID uint) error
	// RequestPasswordReset はリセットトークンを発行し、メールで通知します。
	RequestPasswordReset(ctx context.Context, email string) error
	// ConfirmPasswordReset はトークンを検証し、新しいパスワードを設定します。
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - ユーザー作成失敗時（メール重複等）は409を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Email, req.Password); err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, gin.H{"error": "signup failed"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"message": "ok"})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenRes{Token: token})
}

// Me は認証済みユーザー自身の情報を返すAPIエンドポイントを処理します。
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.CurrentUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("current user lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.UserRes{ID: user.ID, Email: user.Email, Nickname: user.Nickname})
}

// DeleteMe はアカウント削除APIエンドポイントを処理します。
// ユーザーの全投稿も同時に削除されます。
func (h *AuthHandler) DeleteMe(c *gin.Context) {
	userID := currentUserID(c)
	if err := h.auth.DeleteAccount(c.Request.Context(), userID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("account deletion failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	slog.Info("account deleted", "user_id", userID)
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// RequestReset はパスワードリセット要求APIエンドポイントを処理します。
// 未登録のメールアドレスには404を返します。
func (h *AuthHandler) RequestReset(c *gin.Context) {
	var req dto.ResetRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.auth.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "email not registered"})
			return
		}
		slog.Error("password reset request failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	slog.Info("password reset requested", "email", req.Email)
	c.JSON(http.StatusOK, gin.H{"message": "password reset mail sent"})
}

// ConfirmReset はパスワード更新APIエンドポイントを処理します。
// 無効・期限切れトークンには400を返します。
func (h *AuthHandler) ConfirmReset(c *gin.Context) {
	var req dto.ResetConfirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.auth.ConfirmPasswordReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, usecase.ErrInvalidResetToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired token"})
			return
		}
		slog.Error("password reset failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	slog.Info("password reset completed")
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// currentUserID はJWTミドルウェアが設定した認証済みユーザーIDを取得します。
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get(jwtmw.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
