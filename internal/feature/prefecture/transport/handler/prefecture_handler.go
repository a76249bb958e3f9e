package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"liveboard_backend/internal/feature/prefecture/domain/entity"
	"liveboard_backend/internal/feature/prefecture/transport/http/dto"
)

// PrefectureUsecase は都道府県一覧のユースケースインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PrefectureUsecase interface {
	List(ctx context.Context) ([]entity.Prefecture, error)
}

// PrefectureHandler は都道府県一覧のHTTPリクエストを処理します。
type PrefectureHandler struct {
	uc PrefectureUsecase
}

// NewPrefectureHandler は新しい PrefectureHandler を作成します。
func NewPrefectureHandler(uc PrefectureUsecase) *PrefectureHandler {
	return &PrefectureHandler{uc: uc}
}

// List は47都道府県の一覧を表示順で返すAPIです。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *PrefectureHandler) List(c *gin.Context) {
	prefs, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("prefecture list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch prefectures"})
		return
	}
	out := make([]dto.PrefectureItem, 0, len(prefs))
	for _, p := range prefs {
		out = append(out, dto.PrefectureItem{ID: p.ID, Name: p.Name})
	}
	c.JSON(http.StatusOK, out)
}
