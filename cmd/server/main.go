package main

import (
	"log"

	"parking_backend/internal/app/router"
	authadapters "parking_backend/internal/feature/auth/adapters"
	authhandler "parking_backend/internal/feature/auth/transport/handler"
	authusecase "parking_backend/internal/feature/auth/usecase"
	parkingadapters "parking_backend/internal/feature/parkinglot/adapters"
	parkinghandler "parking_backend/internal/feature/parkinglot/transport/handler"
	parkingusecase "parking_backend/internal/feature/parkinglot/usecase"
	"parking_backend/internal/platform/config"
	infradb "parking_backend/internal/platform/db"
	jwtmw "parking_backend/internal/platform/jwt"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	db := infradb.OpenDB(cfg)

	// Repositories
	userRepo := authadapters.NewUserRepository(db)
	lotRepo := parkingadapters.NewParkingLotRepository(db)
	spotRepo := parkingadapters.NewSpotRepository(db)

	// Usecases
	jwtGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	lotUC := parkingusecase.NewParkingLotUsecase(lotRepo, userRepo)
	spotUC := parkingusecase.NewSpotUsecase(spotRepo, lotRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	lotH := parkinghandler.NewParkingLotHandler(lotUC)
	spotH := parkinghandler.NewSpotHandler(spotUC)

	r := router.NewRouter(authH, lotH, spotH)

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal(err)
	}
}
