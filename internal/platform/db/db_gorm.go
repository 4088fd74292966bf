package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "ride_backend/internal/feature/auth/domain/entity"
	driverentity "ride_backend/internal/feature/driver/domain/entity"
	ratingentity "ride_backend/internal/feature/rating/domain/entity"
	rideentity "ride_backend/internal/feature/ride/domain/entity"
	tripentity "ride_backend/internal/feature/triphistory/domain/entity"
)

// OpenDB は環境変数からPostgreSQLへ接続し、gorm.DBを返します。
// 起動直後にDBがまだ立ち上がっていないケースに備え、60秒までリトライします。
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError: 一意制約違反をgorm.ErrDuplicatedKeyへ正規化し、
		// アダプタ層で構造化された409に変換できるようにする
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// スキーマ同期（マネージドマイグレーションではなくAutoMigrate）
		if err := db.AutoMigrate(
			&authentity.User{},
			&authentity.Credential{},
			&driverentity.Driver{},
			&rideentity.Ride{},
			&ratingentity.Rating{},
			&tripentity.TripHistory{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
