package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rahhal-app/tourism-api/internal/audit"
	"github.com/rahhal-app/tourism-api/internal/auth"
	"github.com/rahhal-app/tourism-api/internal/blob"
	"github.com/rahhal-app/tourism-api/internal/config"
	"github.com/rahhal-app/tourism-api/internal/handlers"
	infraRepo "github.com/rahhal-app/tourism-api/internal/infra/repository"
	"github.com/rahhal-app/tourism-api/internal/middleware"
	ucReservation "github.com/rahhal-app/tourism-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ------------------------------
	// Infra (singletons)
	// ------------------------------
	tokens := auth.New(cfg.RedisAddr, cfg.RedisPassword, cfg.JWTSecret)

	var driver blob.Driver
	if cfg.StorageDriver == "s3" {
		driver = blob.NewS3Driver(cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket)
	} else {
		driver = blob.NewDiskDriver(cfg.UploadDir)
	}
	blobs := blob.NewService(driver, cfg.MaxUploadBytes)

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	reservationRepo := infraRepo.NewReservationGormRepository(db)

	// ------------------------------
	// Use cases
	// ------------------------------
	reserveCarUC := ucReservation.NewReserveCar(reservationRepo, auditDispatcher)
	reserveHotelUC := ucReservation.NewReserveHotel(reservationRepo, auditDispatcher)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, tokens, blobs, auditDispatcher)
	placeHandler := handlers.NewPlaceHandler(db, blobs, auditDispatcher)
	hotelHandler := handlers.NewHotelHandler(db, blobs, auditDispatcher, reserveHotelUC)
	carHandler := handlers.NewCarHandler(db, blobs, auditDispatcher, reserveCarUC)
	entertainmentHandler := handlers.NewEntertainmentHandler(db, blobs, auditDispatcher)
	reservationHandler := handlers.NewReservationHandler(reservationRepo)

	// ------------------------------
	// Public
	// ------------------------------
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// ------------------------------
	// Protected
	// ------------------------------
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(tokens))
	{
		secured.POST("/auth/logout", authHandler.Logout)
		secured.PUT("/auth/update", authHandler.Update)
		secured.POST("/users", authHandler.ListUsers)

		// Places
		secured.POST("/addplacedata", placeHandler.Upload)
		secured.GET("/places", placeHandler.List)
		secured.GET("/places/:id", placeHandler.GetByID)
		secured.GET("/places/search/:name", placeHandler.Search)

		// Hotels
		secured.POST("/uploadhoteldata", hotelHandler.Upload)
		secured.GET("/hotels", hotelHandler.List)
		secured.GET("/hotels/:id", hotelHandler.GetByID)
		secured.GET("/hotels/search/:name", hotelHandler.Search)
		secured.GET("/hotels/nearby/:id", hotelHandler.Nearby)
		secured.POST("/hotels/:id/reserve", hotelHandler.Reserve)

		// Cars
		secured.POST("/cars/addcar", carHandler.AddCar)
		secured.POST("/cars/searchcar", carHandler.Reserve)

		// Entertainment (numeric key = id, otherwise category)
		secured.POST("/add-entertainment", entertainmentHandler.Upload)
		secured.GET("/entertainment/:key", entertainmentHandler.GetByKey)
		secured.GET("/entertainment/search/:name", entertainmentHandler.Search)

		// Reservations
		secured.GET("/reservations", reservationHandler.List)
	}
}
