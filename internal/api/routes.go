package api

import (
	"net/http"
	"time"

	"bitbucket.org/crgw/stayzen-backend/internal/auth"
	"bitbucket.org/crgw/stayzen-backend/internal/bookings"
	"bitbucket.org/crgw/stayzen-backend/internal/middleware"
	"bitbucket.org/crgw/stayzen-backend/internal/rooms"
	"bitbucket.org/crgw/stayzen-backend/internal/schema"
	"bitbucket.org/crgw/stayzen-backend/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// slowListThreshold flags unfiltered collection scans that take too long.
const slowListThreshold = time.Second

func RegisterRoutes(
	router *gin.Engine,
	roomService *rooms.Service,
	bookingService *bookings.Service,
	tokenSecret string,
) {
	router.POST("/jwt", func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		var payload map[string]any
		if err := ctx.ShouldBindJSON(&payload); err != nil {
			middleware.HandleError(ctx, http.StatusBadRequest, "Failed to bind token payload", err)
			return
		}

		token, err := auth.IssueToken(payload, tokenSecret)
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed to sign token", err)
			return
		}

		logger.Debug().Str("label", "token").Msg("session token issued")

		// Session cookie on purpose: the token itself carries the expiry.
		ctx.SetCookie(auth.CookieName, token, 0, "/", "", false, true)
		ctx.JSON(http.StatusOK, gin.H{"success": true})
	})

	router.GET("/rooms", func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		slowLog := slowlog.CreateLogger(logger, slowListThreshold)
		slowLog.Start("rooms:list")

		response, err := roomService.List(ctx.Request.Context(), logger)
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed listing rooms", err)
			return
		}

		ctx.JSON(http.StatusOK, response)

		slowLog.Stop("rooms:list")
	})

	router.GET("/rooms/:id", func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
		if err != nil {
			middleware.HandleError(ctx, http.StatusBadRequest, "invalid id", err)
			return
		}

		response, err := roomService.Get(ctx.Request.Context(), id, logger)
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed fetching room", err)
			return
		}

		// A miss responds 200 with a null body, which is what the frontend
		// already handles.
		ctx.JSON(http.StatusOK, response)
	})

	router.GET("/book/:id", func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
		if err != nil {
			middleware.HandleError(ctx, http.StatusBadRequest, "invalid id", err)
			return
		}

		response, err := roomService.BookingView(ctx.Request.Context(), id, logger)
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed fetching room", err)
			return
		}

		ctx.JSON(http.StatusOK, response)
	})

	router.GET("/bookings", auth.VerifyToken(tokenSecret), func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		claims := ctx.MustGet(auth.UserKey).(jwt.MapClaims)
		claimEmail, _ := claims["email"].(string)

		email := ctx.Query("email")
		if email != claimEmail {
			middleware.HandleError(ctx, http.StatusForbidden, "forbidden access", nil)
			return
		}

		response, err := bookingService.List(ctx.Request.Context(), email, logger)
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed listing bookings", err)
			return
		}

		ctx.JSON(http.StatusOK, response)
	})

	router.GET("/booking/:id", func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
		if err != nil {
			middleware.HandleError(ctx, http.StatusBadRequest, "invalid id", err)
			return
		}

		response, err := bookingService.Get(ctx.Request.Context(), id, logger)
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed fetching booking", err)
			return
		}

		ctx.JSON(http.StatusOK, response)
	})

	router.POST("/bookings", func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		var booking bson.M
		if err := ctx.ShouldBindJSON(&booking); err != nil {
			middleware.HandleError(ctx, http.StatusBadRequest, "Failed to bind booking", err)
			return
		}

		response, err := bookingService.Create(ctx.Request.Context(), booking, logger)
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed creating booking", err)
			return
		}

		ctx.JSON(http.StatusOK, response)
	})

	router.PUT("/booking/:id", func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
		if err != nil {
			middleware.HandleError(ctx, http.StatusBadRequest, "invalid id", err)
			return
		}

		var fields schema.BookingUpdate
		if err := ctx.ShouldBindJSON(&fields); err != nil {
			middleware.HandleError(ctx, http.StatusBadRequest, "Failed to bind booking fields", err)
			return
		}

		response, err := bookingService.Update(ctx.Request.Context(), id, fields, logger)
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed updating booking", err)
			return
		}

		ctx.JSON(http.StatusOK, response)
	})

	router.DELETE("/bookings/:id", func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
		if err != nil {
			middleware.HandleError(ctx, http.StatusBadRequest, "invalid id", err)
			return
		}

		response, err := bookingService.Delete(ctx.Request.Context(), id, logger)
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed deleting booking", err)
			return
		}

		ctx.JSON(http.StatusOK, response)
	})
}
