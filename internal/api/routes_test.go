package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bitbucket.org/crgw/stayzen-backend/internal/api"
	"bitbucket.org/crgw/stayzen-backend/internal/auth"
	"bitbucket.org/crgw/stayzen-backend/internal/bookings"
	"bitbucket.org/crgw/stayzen-backend/internal/rooms"
	"bitbucket.org/crgw/stayzen-backend/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testSecret = "test-secret"

func setupRouter(log *zerolog.Logger, mt *mtest.T) *gin.Engine {
	router := gin.New()
	router.Use(web.CorrelationId)
	router.Use(web.RegisterLogger(log))

	api.RegisterRoutes(router, rooms.New(mt.Coll), bookings.New(mt.Coll), testSecret)

	return router
}

func TestTokenRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	out := &bytes.Buffer{}
	log := zerolog.New(out)

	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("should set the session cookie and acknowledge", func(mt *mtest.T) {
		router := setupRouter(&log, mt)

		request, err := http.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"guest@stayzen.io"}`))
		assert.NoError(mt, err)
		request.Header.Set("Content-Type", "application/json")

		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(mt, http.StatusOK, response.Code)
		assert.JSONEq(mt, `{"success":true}`, response.Body.String())

		var token *http.Cookie
		for _, cookie := range response.Result().Cookies() {
			if cookie.Name == auth.CookieName {
				token = cookie
			}
		}
		assert.NotNil(mt, token)
		assert.NotEmpty(mt, token.Value)
		assert.True(mt, token.HttpOnly)
		assert.False(mt, token.Secure)
	})

	mt.Run("should reject a malformed payload", func(mt *mtest.T) {
		router := setupRouter(&log, mt)

		request, err := http.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":`))
		assert.NoError(mt, err)

		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(mt, http.StatusBadRequest, response.Code)
	})
}

func TestInvalidIds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	out := &bytes.Buffer{}
	log := zerolog.New(out)

	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("should reject malformed identifiers before any store call", func(mt *mtest.T) {
		// No mock responses registered: a store call would fail the test.
		router := setupRouter(&log, mt)

		tests := []struct {
			method string
			path   string
			body   string
		}{
			{http.MethodGet, "/rooms/not-a-hex-id", ""},
			{http.MethodGet, "/book/not-a-hex-id", ""},
			{http.MethodGet, "/booking/not-a-hex-id", ""},
			{http.MethodPut, "/booking/not-a-hex-id", `{}`},
			{http.MethodDelete, "/bookings/not-a-hex-id", ""},
		}

		for _, test := range tests {
			var body *strings.Reader
			if test.body != "" {
				body = strings.NewReader(test.body)
			} else {
				body = strings.NewReader("")
			}

			request, err := http.NewRequest(test.method, test.path, body)
			assert.NoError(mt, err)

			response := httptest.NewRecorder()
			router.ServeHTTP(response, request)

			assert.Equal(mt, http.StatusBadRequest, response.Code, test.path)
			assert.JSONEq(mt, `{"message":"invalid id"}`, response.Body.String())
		}
	})
}

func TestBookingsListAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	out := &bytes.Buffer{}
	log := zerolog.New(out)

	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("should reject a missing cookie before any store call", func(mt *mtest.T) {
		router := setupRouter(&log, mt)

		request, err := http.NewRequest(http.MethodGet, "/bookings?email=guest@stayzen.io", nil)
		assert.NoError(mt, err)

		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(mt, http.StatusUnauthorized, response.Code)
		assert.JSONEq(mt, `{"message":"not authorized"}`, response.Body.String())
	})

	mt.Run("should forbid querying another user's bookings", func(mt *mtest.T) {
		router := setupRouter(&log, mt)

		token, err := auth.IssueToken(map[string]any{"email": "other@stayzen.io"}, testSecret)
		assert.NoError(mt, err)

		request, err := http.NewRequest(http.MethodGet, "/bookings?email=guest@stayzen.io", nil)
		assert.NoError(mt, err)
		request.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(mt, http.StatusForbidden, response.Code)
		assert.JSONEq(mt, `{"message":"forbidden access"}`, response.Body.String())
	})

	mt.Run("should list bookings for the token owner", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "stayZen.bookings", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "email", Value: "guest@stayzen.io"},
				{Key: "room_name", Value: "Sea View Suite"},
			}),
		)

		router := setupRouter(&log, mt)

		token, err := auth.IssueToken(map[string]any{"email": "guest@stayzen.io"}, testSecret)
		assert.NoError(mt, err)

		request, err := http.NewRequest(http.MethodGet, "/bookings?email=guest@stayzen.io", nil)
		assert.NoError(mt, err)
		request.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(mt, http.StatusOK, response.Code)
		assert.Contains(mt, response.Body.String(), `"room_name":"Sea View Suite"`)
	})
}

func TestRoomRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	out := &bytes.Buffer{}
	log := zerolog.New(out)

	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("should list rooms", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "stayZen.rooms", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "name", Value: "Sea View Suite"},
			}),
		)

		router := setupRouter(&log, mt)

		request, err := http.NewRequest(http.MethodGet, "/rooms", nil)
		assert.NoError(mt, err)

		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(mt, http.StatusOK, response.Code)
		assert.Contains(mt, response.Body.String(), `"name":"Sea View Suite"`)
	})

	mt.Run("should answer a room miss with a null body", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "stayZen.rooms", mtest.FirstBatch),
		)

		router := setupRouter(&log, mt)

		request, err := http.NewRequest(http.MethodGet, "/rooms/"+primitive.NewObjectID().Hex(), nil)
		assert.NoError(mt, err)

		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(mt, http.StatusOK, response.Code)
		assert.Equal(mt, "null", response.Body.String())
	})
}

func TestBookingMutationRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	out := &bytes.Buffer{}
	log := zerolog.New(out)

	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("should create a booking and return the insert acknowledgement", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		router := setupRouter(&log, mt)

		body := `{"email":"guest@stayzen.io","room_name":"Sea View Suite","price":220}`
		request, err := http.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		assert.NoError(mt, err)
		request.Header.Set("Content-Type", "application/json")

		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(mt, http.StatusOK, response.Code)
		assert.Contains(mt, response.Body.String(), `"acknowledged":true`)
		assert.Contains(mt, response.Body.String(), `"insertedId"`)
	})

	mt.Run("should upsert on update of a missing booking", func(mt *mtest.T) {
		upsertedId := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{
				bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: upsertedId}},
			}},
		))

		router := setupRouter(&log, mt)

		body := `{"room_name":"Garden Room","price":140,"img":"x.jpg","cheakIn":"2026-09-10","cheakOut":"2026-09-12","number":2}`
		request, err := http.NewRequest(http.MethodPut, "/booking/"+primitive.NewObjectID().Hex(), strings.NewReader(body))
		assert.NoError(mt, err)
		request.Header.Set("Content-Type", "application/json")

		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(mt, http.StatusOK, response.Code)
		assert.Contains(mt, response.Body.String(), `"upsertedCount":1`)
		assert.Contains(mt, response.Body.String(), upsertedId.Hex())
	})

	mt.Run("should delete a booking and report the count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		router := setupRouter(&log, mt)

		request, err := http.NewRequest(http.MethodDelete, "/bookings/"+primitive.NewObjectID().Hex(), nil)
		assert.NoError(mt, err)

		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(mt, http.StatusOK, response.Code)
		assert.JSONEq(mt, `{"acknowledged":true,"deletedCount":1}`, response.Body.String())
	})
}
