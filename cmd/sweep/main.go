package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	postadapters "liveboard_backend/internal/feature/posts/adapters"
	postusecase "liveboard_backend/internal/feature/posts/usecase"
	prefadapters "liveboard_backend/internal/feature/prefecture/adapters"
	prefusecase "liveboard_backend/internal/feature/prefecture/usecase"
	infradb "liveboard_backend/internal/platform/db"
)

// 過去の日付になった投稿を削除するバッチです。
// cron等のスケジューラから定期的に起動されることを想定しています。
func main() {
	_ = godotenv.Load()

	db := infradb.OpenDB()
	postRepo := postadapters.NewPostMySQL(db)
	prefRepo := prefadapters.NewPrefectureMySQL(db)
	uc := postusecase.NewPostUsecase(postRepo, prefusecase.NewPrefectureUsecase(prefRepo))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	count, err := uc.SweepPast(ctx)
	if err != nil {
		log.Fatal("failed to sweep past posts:", err)
	}
	log.Printf("sweep ok: %d posts deleted", count)
}
