// Package db はGORMによるデータベース接続のライフサイクルを管理します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "liveboard_backend/internal/feature/auth/domain/entity"
	contactentity "liveboard_backend/internal/feature/contact/domain/entity"
	postentity "liveboard_backend/internal/feature/posts/domain/entity"
	prefadapters "liveboard_backend/internal/feature/prefecture/adapters"
	prefentity "liveboard_backend/internal/feature/prefecture/domain/entity"
)

const connectTimeout = 60 * time.Second

// Config はデータベース接続の設定値を保持します。
type Config struct {
	Driver   string // "mysql"（デフォルト）または "postgres"
	User     string
	Password string
	Name     string
	Host     string
	Port     string
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		Driver:   os.Getenv("DB_DRIVER"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
	}
}

// BuildDSN は設定からドライバー向けのDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
	}
	// clientFoundRows=true により更新のRowsAffectedは変更行数ではなく一致行数を
	// 返す。同値での全置換が行不在と誤判定されるのを防ぐために必須。
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local&clientFoundRows=true",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// ConnectWithRetry はopenerでの接続をタイムアウトまで3秒間隔でリトライします。
// コンテナ起動直後にDBの受け入れ準備が整っていないケースを吸収します。
func ConnectWithRetry(dsn string, timeout time.Duration, opener func(dsn string) (*gorm.DB, error)) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB は環境変数の設定でデータベースに接続し、接続ハンドルを返します。
// DB_DRIVER=postgres でPostgreSQL、それ以外はMySQLに接続します。
// 60秒以内に接続を確立できない場合は起動を中断します。
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()
	dsn := BuildDSN(cfg)

	opener := func(dsn string) (*gorm.DB, error) {
		if cfg.Driver == "postgres" {
			return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		}
		return gorm.Open(gmysql.Open(dsn), &gorm.Config{})
	}

	db, err := ConnectWithRetry(dsn, connectTimeout, opener)
	if err != nil {
		log.Fatal(err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Post, Contact, Prefecture）
		if err := db.AutoMigrate(
			&authentity.User{},
			&postentity.Post{},
			&contactentity.Contact{},
			&prefentity.Prefecture{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}

		// 47都道府県の参照データを投入（既存行はスキップ）
		if err := prefadapters.Seed(db); err != nil {
			log.Fatalf("failed to seed prefectures: %v", err)
		}
	}

	return db
}
