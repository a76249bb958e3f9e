// Package handler はcontactフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"liveboard_backend/internal/feature/contact/domain/entity"
	"liveboard_backend/internal/feature/contact/transport/http/dto"
	"liveboard_backend/internal/feature/contact/usecase"
)

// ContactUsecase はお問い合わせ受付のユースケースインターフェースを定義します。
type ContactUsecase interface {
	Submit(ctx context.Context, in usecase.ContactInput) (contact *entity.Contact, mailed bool, err error)
}

// ContactHandler はお問い合わせのHTTPリクエストを処理します。
type ContactHandler struct {
	uc ContactUsecase
}

// NewContactHandler は指定されたusecaseでContactHandlerの新しいインスタンスを生成します。
func NewContactHandler(uc ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Submit はお問い合わせ送信APIを処理します。
// 保存成功後のメール送信失敗は警告付きの成功として返します。
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("contact validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	contact, mailed, err := h.uc.Submit(c.Request.Context(), usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		slog.Error("contact submission failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit contact"})
		return
	}

	slog.Info("contact submitted", "contact_id", contact.ID, "mailed", mailed)
	if !mailed {
		c.JSON(http.StatusOK, gin.H{
			"message": "contact saved",
			"warning": "notification mail could not be sent",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "contact saved"})
}
