package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"bangrak/auth"
	"bangrak/database"
	"bangrak/model"
	"bangrak/route"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Restaurant{}))
	database.DB = db

	auth.Init("secret", "")

	router := gin.New()
	route.Routes(router)
	return router
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, ok := auth.Gate.Login("secret")
	require.True(t, ok)
	return token
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validRestaurant() map[string]any {
	return map[string]any{
		"nameTh":        "ร้านทดสอบ",
		"nameEn":        "Test Shop",
		"descriptionTh": "อร่อยที่สุดในย่าน",
		"category":      "THAI_RESTAURANT",
		"subDistrict":   "BANG_RAK",
		"googleMapsUrl": "https://maps.example/abc",
		"pinX":          10.5,
		"pinY":          20.5,
		"imageUrls":     []string{"https://img.example/1.jpg", "https://img.example/2.jpg"},
	}
}

func createRestaurant(t *testing.T, router *gin.Engine, token string) model.Restaurant {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/restaurants", token, validRestaurant())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data model.Restaurant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.Data.ID)
	return resp.Data
}

func TestCreateRequiresAdminToken(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/restaurants", "", validRestaurant())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/api/restaurants", "bogus-token", validRestaurant())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndGetRestaurant(t *testing.T) {
	router := setupRouter(t)
	created := createRestaurant(t, router, adminToken(t))

	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, model.StringList{"https://img.example/1.jpg", "https://img.example/2.jpg"}, created.ImageUrls)

	w := doJSON(router, http.MethodGet, fmt.Sprintf("/api/restaurants/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.Restaurant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.Data.ID)
	assert.Equal(t, "ร้านทดสอบ", resp.Data.NameTh)
	// imageUrls survive the column round trip with order intact
	assert.Equal(t, created.ImageUrls, resp.Data.ImageUrls)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	router := setupRouter(t)
	body := validRestaurant()
	body["category"] = "FOOD_TRUCK"

	w := doJSON(router, http.MethodPost, "/api/restaurants", adminToken(t), body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	router := setupRouter(t)
	body := validRestaurant()
	delete(body, "nameTh")

	w := doJSON(router, http.MethodPost, "/api/restaurants", adminToken(t), body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRestaurantsWithFilters(t *testing.T) {
	router := setupRouter(t)
	token := adminToken(t)

	createRestaurant(t, router, token)
	other := validRestaurant()
	other["category"] = "CAFE"
	other["subDistrict"] = "SILOM"
	w := doJSON(router, http.MethodPost, "/api/restaurants", token, other)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data []model.Restaurant `json:"data"`
	}

	w = doJSON(router, http.MethodGet, "/api/restaurants", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)

	w = doJSON(router, http.MethodGet, "/api/restaurants?category=CAFE", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, model.CategoryCafe, resp.Data[0].Category)

	w = doJSON(router, http.MethodGet, "/api/restaurants?category=CAFE&subDistrict=SILOM", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)

	w = doJSON(router, http.MethodGet, "/api/restaurants?category=NOT_A_CATEGORY", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRestaurant(t *testing.T) {
	router := setupRouter(t)
	token := adminToken(t)
	created := createRestaurant(t, router, token)

	update := validRestaurant()
	update["nameTh"] = "ชื่อใหม่"
	update["category"] = "BAR"

	w := doJSON(router, http.MethodPut, fmt.Sprintf("/api/restaurants/%d", created.ID), token, update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data model.Restaurant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.Data.ID)
	assert.Equal(t, "ชื่อใหม่", resp.Data.NameTh)
	assert.Equal(t, model.CategoryBar, resp.Data.Category)
	assert.WithinDuration(t, created.CreatedAt, resp.Data.CreatedAt, time.Second)
	assert.False(t, resp.Data.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateMissingRestaurant(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPut, "/api/restaurants/9999", adminToken(t), validRestaurant())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePinPosition(t *testing.T) {
	router := setupRouter(t)
	token := adminToken(t)
	created := createRestaurant(t, router, token)

	w := doJSON(router, http.MethodPatch, fmt.Sprintf("/api/restaurants/%d/pin", created.ID), token,
		map[string]any{"pinX": 33.25, "pinY": 78.0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data model.Restaurant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 33.25, resp.Data.PinX)
	assert.Equal(t, 78.0, resp.Data.PinY)
	// only the pin moved
	assert.Equal(t, created.NameTh, resp.Data.NameTh)
}

func TestUpdatePinPositionRequiresBothCoordinates(t *testing.T) {
	router := setupRouter(t)
	token := adminToken(t)
	created := createRestaurant(t, router, token)

	w := doJSON(router, http.MethodPatch, fmt.Sprintf("/api/restaurants/%d/pin", created.ID), token,
		map[string]any{"pinX": 33.25})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRestaurantThenFetch(t *testing.T) {
	router := setupRouter(t)
	token := adminToken(t)
	created := createRestaurant(t, router, token)

	w := doJSON(router, http.MethodDelete, fmt.Sprintf("/api/restaurants/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/restaurants/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/restaurants/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRestaurantBadID(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodGet, "/api/restaurants/not-a-number", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
