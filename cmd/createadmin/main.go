// Command createadmin creates a superuser account. Superusers are the only
// accounts allowed to create parking lots, and there is deliberately no HTTP
// endpoint for creating them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	authadapters "parking_backend/internal/feature/auth/adapters"
	authusecase "parking_backend/internal/feature/auth/usecase"
	"parking_backend/internal/platform/config"
	infradb "parking_backend/internal/platform/db"
	jwtmw "parking_backend/internal/platform/jwt"
)

func main() {
	emailFlag := flag.String("email", "", "Email address of the superuser")
	passwordFlag := flag.String("password", "", "Password of the superuser (min 8 characters)")
	flag.Parse()

	if *emailFlag == "" || *passwordFlag == "" {
		fmt.Println("Usage: createadmin -email <email> -password <password>")
		os.Exit(1)
	}

	cfg := config.Load()
	db := infradb.OpenDB(cfg)

	userRepo := authadapters.NewUserRepository(db)
	jwtGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)

	user, err := authUC.CreateSuperuser(context.Background(), *emailFlag, *passwordFlag)
	if err != nil {
		log.Fatalf("failed to create superuser: %v", err)
	}

	fmt.Printf("superuser %s created (id %d)\n", user.Email, user.ID)
}
