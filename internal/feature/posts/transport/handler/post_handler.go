// Package handler はpostsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"liveboard_backend/internal/feature/posts/domain/entity"
	"liveboard_backend/internal/feature/posts/transport/http/dto"
	"liveboard_backend/internal/feature/posts/usecase"
	jwtmw "liveboard_backend/internal/platform/jwt"
)

// PostUsecase は投稿操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type PostUsecase interface {
	// List は検索クエリと都道府県フィルタに一致する投稿を返します。
	List(ctx context.Context, rawQuery, prefecture string) ([]entity.Post, error)
	// Get は指定されたIDの投稿を返します。
	Get(ctx context.Context, id uint) (*entity.Post, error)
	// Create は入力を検証して新しい投稿を作成します。
	Create(ctx context.Context, in usecase.PostInput, requesterID uint) (*entity.Post, error)
	// Replace は投稿の編集可能フィールドを完全置換します。
	Replace(ctx context.Context, id uint, in usecase.PostInput, requesterID uint) (*entity.Post, error)
	// Delete は投稿者本人による投稿の削除を行います。
	Delete(ctx context.Context, id, requesterID uint) error
	// SweepPast は当日より前の投稿をすべて削除し、件数を返します。
	SweepPast(ctx context.Context) (int64, error)
}

// PostHandler は投稿操作のHTTPリクエストを処理します。
type PostHandler struct {
	uc PostUsecase
}

// NewPostHandler は指定されたusecaseでPostHandlerの新しいインスタンスを生成します。
func NewPostHandler(uc PostUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

// List は投稿一覧・検索APIを処理します。
//
// エンドポイント例:
// GET /posts?q=2025-10-01+フェス&prefecture=東京都
func (h *PostHandler) List(c *gin.Context) {
	query := c.Query("q")
	prefecture := c.Query("prefecture")

	posts, err := h.uc.List(c.Request.Context(), query, prefecture)
	if err != nil {
		slog.Error("post search failed", "error", err, "query", query)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch posts"})
		return
	}

	out := make([]dto.PostItem, 0, len(posts))
	for _, p := range posts {
		out = append(out, toItem(&p))
	}
	c.JSON(http.StatusOK, out)
}

// Get は投稿1件の取得APIを処理します。認証不要です。
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	post, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItem(post))
}

// Create は投稿の作成APIを処理します。
// - リクエストJSONをPostReqにバインド
// - バリデーションエラー時は400を返却
// - 成功時は作成された投稿とともに201を返却
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("post create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	post, err := h.uc.Create(c.Request.Context(), toInput(req), currentUserID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	slog.Info("post created", "post_id", post.ID, "user_id", post.UserID)
	c.JSON(http.StatusCreated, toItem(post))
}

// Replace は投稿の更新APIを処理します。
// 投稿者以外からのリクエストには403を返します。
func (h *PostHandler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("post update validation failed", "error", err, "post_id", id)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	post, err := h.uc.Replace(c.Request.Context(), id, toInput(req), currentUserID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItem(post))
}

// Delete は投稿の削除APIを処理します。
// 投稿者以外からのリクエストには403を返します。
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		h.renderError(c, err)
		return
	}
	slog.Info("post deleted", "post_id", id)
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// Sweep は過去の投稿をまとめて削除するcron用APIを処理します。
// スケジューラから定期的に呼び出され、削除件数を返します。
func (h *PostHandler) Sweep(c *gin.Context) {
	count, err := h.uc.SweepPast(c.Request.Context())
	if err != nil {
		slog.Error("past post sweep failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sweep failed"})
		return
	}
	slog.Info("past post sweep completed", "deleted_count", count)
	c.JSON(http.StatusOK, dto.SweepRes{DeletedCount: count})
}

// renderError はusecaseのエラー種別をHTTPステータスに対応付けます。
func (h *PostHandler) renderError(c *gin.Context, err error) {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fields", "fields": ve.Fields})
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your post"})
	default:
		slog.Error("post operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseID はパスパラメータの投稿IDを解析します。不正な場合は400を返します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return 0, false
	}
	return uint(id), true
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

func toInput(req dto.PostReq) usecase.PostInput {
	return usecase.PostInput{
		EventName:  req.EventName,
		ArtistName: req.ArtistName,
		Date:       req.Date,
		Time:       req.Time,
		Location:   req.Location,
		Prefecture: req.Prefecture,
		Website:    req.Website,
		Comment:    req.Comment,
	}
}

func toItem(p *entity.Post) dto.PostItem {
	return dto.PostItem{
		ID:         p.ID,
		EventName:  p.EventName,
		ArtistName: p.ArtistName,
		Date:       p.Date,
		Time:       p.Time,
		Location:   p.Location,
		Prefecture: p.Prefecture,
		Website:    p.Website,
		Comment:    p.Comment,
		UserID:     p.UserID,
		CreatedAt:  p.CreatedAt,
	}
}
