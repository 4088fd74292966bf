package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "ride_backend/internal/feature/auth/transport/handler"
	driverhandler "ride_backend/internal/feature/driver/transport/handler"
	profilehandler "ride_backend/internal/feature/profile/transport/handler"
	ratinghandler "ride_backend/internal/feature/rating/transport/handler"
	ridehandler "ride_backend/internal/feature/ride/transport/handler"
	triphandler "ride_backend/internal/feature/triphistory/transport/handler"
	"ride_backend/internal/platform/http/handler"
	jwtmw "ride_backend/internal/platform/jwt"
)

// NewRouter はAPI全体のルートテーブルを構築します。
// ブラウザのフロントエンドから呼ばれるため、CORSを全体に適用します。
func NewRouter(
	authH *authhandler.AuthHandler,
	profileH *profilehandler.ProfileHandler,
	driverH *driverhandler.DriverHandler,
	rideH *ridehandler.RideHandler,
	ratingH *ratinghandler.RatingHandler,
	tripH *triphandler.TripHistoryHandler,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	api := r.Group("/api")

	// 新規ユーザー登録・ログイン（JWT発行）
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)

	// ドライバー一覧は元のAPIと同様に認証不要
	api.GET("/drivers/", driverH.List)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーにBearerトークンが必要になる
	auth := api.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/users/profile", profileH.GetProfile)
		auth.PUT("/users/profile", profileH.UpdateProfile)
		auth.GET("/users/user/:id", profileH.GetUserByID)

		auth.POST("/drivers/register", driverH.Register)
		auth.PUT("/drivers/:id/approve", driverH.Approve)
		auth.PUT("/drivers/:id/reject", driverH.Reject)
		auth.GET("/drivers/:id/history", tripH.ListByDriver)

		auth.POST("/rides/", rideH.Create)
		auth.GET("/rides/available", rideH.ListAvailable)
		auth.GET("/rides/:id", rideH.GetByID)
		auth.PUT("/rides/:id/book", rideH.Book)
		auth.PUT("/rides/:id/complete", rideH.Complete)

		auth.POST("/ratings/", ratingH.Create)
		auth.GET("/ratings/ride/:id", ratingH.ListByRide)
	}

	return r
}
