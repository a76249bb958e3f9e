package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"liveboard_backend/internal/app/router"
	authadapters "liveboard_backend/internal/feature/auth/adapters"
	authhandler "liveboard_backend/internal/feature/auth/transport/handler"
	authusecase "liveboard_backend/internal/feature/auth/usecase"
	contactadapters "liveboard_backend/internal/feature/contact/adapters"
	contacthandler "liveboard_backend/internal/feature/contact/transport/handler"
	contactusecase "liveboard_backend/internal/feature/contact/usecase"
	postadapters "liveboard_backend/internal/feature/posts/adapters"
	posthandler "liveboard_backend/internal/feature/posts/transport/handler"
	postusecase "liveboard_backend/internal/feature/posts/usecase"
	prefadapters "liveboard_backend/internal/feature/prefecture/adapters"
	prefhandler "liveboard_backend/internal/feature/prefecture/transport/handler"
	prefusecase "liveboard_backend/internal/feature/prefecture/usecase"
	"liveboard_backend/internal/platform/cache"
	infradb "liveboard_backend/internal/platform/db"
	jwtmw "liveboard_backend/internal/platform/jwt"
	platformmail "liveboard_backend/internal/platform/mail"
	infraredis "liveboard_backend/internal/platform/redis"
	"liveboard_backend/internal/shared/ratelimiter"
)

func main() {
	// .env（存在すれば読み込み、無ければ環境変数のみで動作）
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	postRepo := postadapters.NewPostMySQL(db)
	prefRepo := prefadapters.NewPrefectureMySQL(db)
	contactRepo := contactadapters.NewContactMySQL(db)

	// 検索結果をRedisキャッシュでラップ（日付の切り替わりで失効）
	ttl := cache.TimeUntilMidnight()
	cachedPostRepo := cache.NewCachingPostRepository(rdb, ttl, postRepo, "posts")

	// メール送信（SMTPサービスの送信上限に合わせてレート制限）
	mailLimiter := ratelimiter.NewRateLimiter(10, time.Minute)
	mailer := platformmail.NewSMTPMailer(platformmail.ConfigFromEnv(), mailLimiter)

	// JWT
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen, mailer)
	prefUC := prefusecase.NewPrefectureUsecase(prefRepo)
	postUC := postusecase.NewPostUsecase(cachedPostRepo, prefUC)
	contactUC := contactusecase.NewContactUsecase(contactRepo, mailer)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	postH := posthandler.NewPostHandler(postUC)
	prefH := prefhandler.NewPrefectureHandler(prefUC)
	contactH := contacthandler.NewContactHandler(contactUC)

	// ルータ生成
	router := router.NewRouter(authH, postH, prefH, contactH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
