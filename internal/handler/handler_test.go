package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/realestate-api/internal/handler"
	"github.com/realestate-api/internal/models"
	"github.com/realestate-api/internal/repository"
	"github.com/realestate-api/internal/service"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Property{}, &models.Booking{}))

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	router := gin.New()
	handler.NewUserHandler(service.NewUserService(userRepo)).RegisterRoutes(router)
	handler.NewPropertyHandler(service.NewPropertyService(propertyRepo)).RegisterRoutes(router)
	handler.NewBookingHandler(service.NewBookingService(bookingRepo, propertyRepo)).RegisterRoutes(router)

	return router, db
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response body: %s", w.Body.String())
	return body
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "response body: %s", w.Body.String())
}

func signupPayload() map[string]any {
	return map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}
}

func propertyPayload() map[string]any {
	return map[string]any{
		"title":       "Seaside Villa",
		"description": "Three bedroom villa with ocean view",
		"price":       450000,
		"bedrooms":    3,
		"bathrooms":   2,
		"location":    "Lisbon",
		"image_link":  "https://img.example.com/villa.jpg",
	}
}

func createProperty(t *testing.T, router *gin.Engine, payload map[string]any) uint {
	t.Helper()
	w := performRequest(router, http.MethodPost, "/create_property", payload)
	mustStatus(t, w, http.StatusCreated)
	body := decodeBody(t, w)
	return uint(body["id"].(float64))
}
