package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-delivery-app/controllers"
	"github.com/yeremiapane/food-delivery-app/middlewares"
	"github.com/yeremiapane/food-delivery-app/models"
	"github.com/yeremiapane/food-delivery-app/utils"
)

func setupTestDBForRestaurants(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:restaurants_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Restaurant{}, &models.MenuItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	for _, table := range []string{"menu_items", "restaurants", "users"} {
		db.Exec("DELETE FROM " + table)
	}
	db.Exec("DELETE FROM sqlite_sequence")

	db.Create(&models.User{Name: "Admin", Username: "admin", Email: "admin@example.com", Password: "x", Role: models.RoleAdmin})
	db.Create(&models.User{Name: "Budi", Username: "budi", Email: "budi@example.com", Password: "x", Role: models.RoleCustomer})
	return db
}

// setupCatalogRouter memakai middleware auth dan admin asli (token JWT).
func setupCatalogRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	restaurantCtrl := controllers.NewRestaurantController(db)
	menuItemCtrl := controllers.NewMenuItemController(db)

	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
		auth.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
		auth.GET("/restaurants/:restaurant_id/menu-items", menuItemCtrl.GetMenuItems)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.POST("/restaurants", restaurantCtrl.CreateRestaurant)
		admin.PATCH("/restaurants/:restaurant_id", restaurantCtrl.UpdateRestaurant)
		admin.DELETE("/restaurants/:restaurant_id", restaurantCtrl.DeleteRestaurant)
		admin.POST("/restaurants/:restaurant_id/menu-items", menuItemCtrl.CreateMenuItem)
		admin.PATCH("/menu-items/:menu_item_id", menuItemCtrl.UpdateMenuItem)
		admin.DELETE("/menu-items/:menu_item_id", menuItemCtrl.DeleteMenuItem)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRestaurantAdminCRUD(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRestaurants(t)
	r := setupCatalogRouter(db)

	adminToken, err := utils.GenerateToken(1, models.RoleAdmin)
	assert.NoError(t, err)

	// Create
	w := doJSON(t, r, http.MethodPost, "/admin/restaurants", adminToken, map[string]interface{}{
		"name":    "Warung Padang",
		"cuisine": "Padang",
		"rating":  4.5,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Tambah menu di bawah restoran
	w = doJSON(t, r, http.MethodPost, "/admin/restaurants/1/menu-items", adminToken, map[string]interface{}{
		"name":  "Rendang",
		"price": 10.00,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Update overwrite seluruh field
	w = doJSON(t, r, http.MethodPatch, "/admin/restaurants/1", adminToken, map[string]interface{}{
		"name":    "Warung Padang Baru",
		"cuisine": "Minang",
		"rating":  4.8,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var restaurant models.Restaurant
	assert.NoError(t, db.First(&restaurant, 1).Error)
	assert.Equal(t, "Warung Padang Baru", restaurant.Name)
	assert.Equal(t, "Minang", restaurant.Cuisine)

	// Restoran tak dikenal -> 404
	w = doJSON(t, r, http.MethodPatch, "/admin/restaurants/99", adminToken, map[string]interface{}{
		"name": "X",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRestaurantCascadesMenuItems(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRestaurants(t)
	r := setupCatalogRouter(db)

	db.Create(&models.Restaurant{Name: "Warung Padang", Cuisine: "Padang", Rating: 4.5})
	db.Create(&models.MenuItem{RestaurantID: 1, Name: "Rendang", Price: 10.00})
	db.Create(&models.MenuItem{RestaurantID: 1, Name: "Sayur Nangka", Price: 5.50})

	adminToken, _ := utils.GenerateToken(1, models.RoleAdmin)
	w := doJSON(t, r, http.MethodDelete, "/admin/restaurants/1", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var restaurantCount, menuCount int64
	db.Model(&models.Restaurant{}).Count(&restaurantCount)
	db.Model(&models.MenuItem{}).Count(&menuCount)
	assert.Equal(t, int64(0), restaurantCount)
	assert.Equal(t, int64(0), menuCount)
}

func TestNonAdminCannotModifyCatalog(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRestaurants(t)
	r := setupCatalogRouter(db)

	db.Create(&models.Restaurant{Name: "Warung Padang", Cuisine: "Padang", Rating: 4.5})
	db.Create(&models.MenuItem{RestaurantID: 1, Name: "Rendang", Price: 10.00})

	customerToken, _ := utils.GenerateToken(2, models.RoleCustomer)

	// Customer tetap bisa membaca katalog
	w := doJSON(t, r, http.MethodGet, "/restaurants", customerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, "/restaurants/1/menu-items", customerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Tapi semua operasi tulis ditolak
	w = doJSON(t, r, http.MethodPost, "/admin/restaurants", customerToken, map[string]interface{}{
		"name": "Ilegal",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/admin/restaurants/1", customerToken, map[string]interface{}{
		"name": "Ilegal",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/admin/menu-items/1", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Tanpa token sama sekali -> 401
	w = doJSON(t, r, http.MethodPost, "/admin/restaurants", "", map[string]interface{}{
		"name": "Ilegal",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Tidak ada data yang berubah
	var restaurant models.Restaurant
	assert.NoError(t, db.First(&restaurant, 1).Error)
	assert.Equal(t, "Warung Padang", restaurant.Name)
	var menuCount int64
	db.Model(&models.MenuItem{}).Count(&menuCount)
	assert.Equal(t, int64(1), menuCount)
}
