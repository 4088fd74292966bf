package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"ride_backend/internal/app/router"
	authadapters "ride_backend/internal/feature/auth/adapters"
	authhandler "ride_backend/internal/feature/auth/transport/handler"
	authusecase "ride_backend/internal/feature/auth/usecase"
	driveradapters "ride_backend/internal/feature/driver/adapters"
	driverhandler "ride_backend/internal/feature/driver/transport/handler"
	driverusecase "ride_backend/internal/feature/driver/usecase"
	profileadapters "ride_backend/internal/feature/profile/adapters"
	profilehandler "ride_backend/internal/feature/profile/transport/handler"
	profileusecase "ride_backend/internal/feature/profile/usecase"
	ratingadapters "ride_backend/internal/feature/rating/adapters"
	ratinghandler "ride_backend/internal/feature/rating/transport/handler"
	ratingusecase "ride_backend/internal/feature/rating/usecase"
	rideadapters "ride_backend/internal/feature/ride/adapters"
	ridehandler "ride_backend/internal/feature/ride/transport/handler"
	rideusecase "ride_backend/internal/feature/ride/usecase"
	tripadapters "ride_backend/internal/feature/triphistory/adapters"
	triphandler "ride_backend/internal/feature/triphistory/transport/handler"
	tripusecase "ride_backend/internal/feature/triphistory/usecase"
	"ride_backend/internal/platform/cache"
	"ride_backend/internal/platform/db"
	jwtmw "ride_backend/internal/platform/jwt"
	platformredis "ride_backend/internal/platform/redis"
)

const tokenExpiration = 24 * time.Hour

func main() {
	// .envがあれば読み込む（本番では環境変数をそのまま使う）
	_ = godotenv.Load()

	// db
	gormDB := db.OpenDB()

	// Redis（ドライバー一覧キャッシュ用。未接続でも起動は続行する）
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
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

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokenIssuer := jwtmw.NewGenerator(secret, tokenExpiration)

	// Repository
	userRepo := authadapters.NewUserGorm(gormDB)
	profileRepo := profileadapters.NewUserGorm(gormDB)
	driverRepo := driveradapters.NewDriverGorm(gormDB)
	rideRepo := rideadapters.NewRideGorm(gormDB)
	ratingRepo := ratingadapters.NewRatingGorm(gormDB)
	tripRepo := tripadapters.NewTripHistoryGorm(gormDB)

	// 公開されるドライバー一覧はRedisキャッシュでラップ
	cachedDriverRepo := cache.NewCachingDriverRepository(rdb, time.Minute, driverRepo, "drivers")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenIssuer)
	profileUC := profileusecase.NewProfileUsecase(profileRepo)
	driverUC := driverusecase.NewDriverUsecase(cachedDriverRepo)
	rideUC := rideusecase.NewRideUsecase(rideRepo)
	ratingUC := ratingusecase.NewRatingUsecase(ratingRepo, ratingRepo)
	tripUC := tripusecase.NewTripHistoryUsecase(tripRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	profileH := profilehandler.NewProfileHandler(profileUC)
	driverH := driverhandler.NewDriverHandler(driverUC)
	rideH := ridehandler.NewRideHandler(rideUC)
	ratingH := ratinghandler.NewRatingHandler(ratingUC)
	tripH := triphandler.NewTripHistoryHandler(tripUC)

	// ルータ生成
	r := router.NewRouter(authH, profileH, driverH, rideH, ratingH, tripH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
