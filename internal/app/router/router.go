// Package router はAPIのルーティングを構成します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "liveboard_backend/internal/feature/auth/transport/handler"
	contacthandler "liveboard_backend/internal/feature/contact/transport/handler"
	posthandler "liveboard_backend/internal/feature/posts/transport/handler"
	prefecturehandler "liveboard_backend/internal/feature/prefecture/transport/handler"
	"liveboard_backend/internal/platform/http/handler"
	jwtmw "liveboard_backend/internal/platform/jwt"
)

// NewRouter はすべてのエンドポイントを登録したGinエンジンを生成します。
func NewRouter(auth *authhandler.AuthHandler, posts *posthandler.PostHandler,
	prefectures *prefecturehandler.PrefectureHandler, contact *contacthandler.ContactHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザのフロントエンドから呼ばれるためCORSを許可
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)
	// パスワードリセット（要求と更新）
	r.POST("/password-reset", auth.RequestReset)
	r.PUT("/password-reset", auth.ConfirmReset)
	// 投稿の閲覧・検索は未ログインでも可能
	r.GET("/posts", posts.List)
	r.GET("/posts/:id", posts.Get)
	// 都道府県の参照リスト
	r.GET("/prefectures", prefectures.List)
	// お問い合わせフォーム
	r.POST("/contact", contact.Submit)
	// 過去投稿の掃除（外部スケジューラから定期実行）
	r.GET("/cron/delete-past-posts", posts.Sweep)

	// 認証必須のルート
	authRequired := r.Group("/")
	authRequired.Use(jwtmw.AuthRequired())
	{
		authRequired.POST("/posts", posts.Create)
		authRequired.PUT("/posts/:id", posts.Replace)
		authRequired.DELETE("/posts/:id", posts.Delete)
		authRequired.GET("/users/me", auth.Me)
		authRequired.DELETE("/users/me", auth.DeleteMe)
	}

	return r
}
