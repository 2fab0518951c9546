package web

import (
	"net/http"
	"os"
	"time"

	"bitbucket.org/crgw/stayzen-backend/internal/api"
	"bitbucket.org/crgw/stayzen-backend/internal/bookings"
	"bitbucket.org/crgw/stayzen-backend/internal/rooms"
	"bitbucket.org/crgw/stayzen-backend/internal/tools/mongofactory"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func SetupRouter(log *zerolog.Logger, mongoFactory *mongofactory.Factory) *gin.Engine {
	startTime := time.Now()

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:5173"
	}

	router.
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery).
		Use(Metrics).
		Use(cors.New(cors.Config{
			AllowOrigins:     []string{corsOrigin},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
		}))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "stayzen backend is running")
	})

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pprof.Register(router)

	api.RegisterRoutes(
		router,
		rooms.New(mongoFactory.Rooms()),
		bookings.New(mongoFactory.Bookings()),
		os.Getenv("ACCESS_TOKEN_SECRET"),
	)

	return router
}
