// Package router assembles the Gin route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "parking_backend/internal/feature/auth/transport/handler"
	parkinghandler "parking_backend/internal/feature/parkinglot/transport/handler"
	jwtmw "parking_backend/internal/platform/jwt"
	platformhandler "parking_backend/internal/platform/http/handler"
)

// NewRouter wires every route of the service. All /parkinglots and /spots
// routes require a valid bearer token; signup, login and the health check
// do not.
func NewRouter(auth *authhandler.AuthHandler, lots *parkinghandler.ParkingLotHandler,
	spots *parkinghandler.SpotHandler) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", platformhandler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// Authenticated routes
	g := r.Group("/")
	g.Use(jwtmw.AuthRequired())
	{
		g.GET("/parkinglots", lots.List)
		g.POST("/parkinglots", lots.Create)
		g.GET("/parkinglots/:id", lots.Get)
		g.PUT("/parkinglots/:id", lots.Update)
		g.PATCH("/parkinglots/:id", lots.Patch)
		g.DELETE("/parkinglots/:id", lots.Delete)

		g.GET("/parkinglots/:id/spots", spots.ListByLot)
		g.POST("/parkinglots/:id/spots", spots.Create)
		g.GET("/spots/:id", spots.Get)
		g.PATCH("/spots/:id", spots.Patch)
		g.DELETE("/spots/:id", spots.Delete)
	}

	return r
}
