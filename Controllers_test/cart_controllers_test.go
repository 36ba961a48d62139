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
	"github.com/yeremiapane/food-delivery-app/models"
	"github.com/yeremiapane/food-delivery-app/utils"
)

func setupTestDBForCarts(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:carts_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.Restaurant{}, &models.MenuItem{},
		&models.Cart{}, &models.CartItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	for _, table := range []string{"cart_items", "carts", "menu_items", "restaurants", "users"} {
		db.Exec("DELETE FROM " + table)
	}
	// Reset autoincrement supaya seed selalu mulai dari id 1
	db.Exec("DELETE FROM sqlite_sequence")

	db.Create(&models.User{Name: "Budi", Username: "budi", Email: "budi@example.com", Password: "x", Role: models.RoleCustomer})
	db.Create(&models.Restaurant{Name: "Warung Padang", Cuisine: "Padang", Rating: 4.5})
	db.Create(&models.MenuItem{RestaurantID: 1, Name: "Rendang", Price: 10.00, IsVeg: false})
	db.Create(&models.MenuItem{RestaurantID: 1, Name: "Sayur Nangka", Price: 5.50, IsVeg: true})
	return db
}

// fakeAuth meniru AuthMiddleware untuk test handler langsung.
func fakeAuth(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func setupCartRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(fakeAuth(userID, models.RoleCustomer))
	cartCtrl := controllers.NewCartController(db)
	r.POST("/cart/items/:menu_item_id", cartCtrl.AddToCart)
	r.GET("/cart", cartCtrl.GetCart)
	r.PATCH("/cart/items/:item_id", cartCtrl.UpdateCartItem)
	r.DELETE("/cart/items/:item_id", cartCtrl.RemoveCartItem)
	return r
}

func addToCart(t *testing.T, r *gin.Engine, menuItemID string, quantity interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if quantity != nil {
		b, err := json.Marshal(map[string]interface{}{"quantity": quantity})
		assert.NoError(t, err)
		body.Write(b)
	}
	req := httptest.NewRequest(http.MethodPost, "/cart/items/"+menuItemID, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCartMergesQuantity(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCarts(t)
	r := setupCartRouter(db, 1)

	// Tambah item yang sama dua kali: qty 2 lalu qty 3
	w := addToCart(t, r, "1", 2)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "added to your cart")

	w = addToCart(t, r, "1", 3)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "Updated")

	// Harus tepat satu baris dengan quantity 5, bukan dua baris
	var lines []models.CartItem
	assert.NoError(t, db.Find(&lines).Error)
	assert.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)

	// Dan tetap satu cart untuk user tersebut
	var cartCount int64
	db.Model(&models.Cart{}).Where("user_id = ?", 1).Count(&cartCount)
	assert.Equal(t, int64(1), cartCount)
}

func TestAddToCartInvalidQuantityDefaultsToOne(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCarts(t)
	r := setupCartRouter(db, 1)

	// Tanpa body
	w := addToCart(t, r, "1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Quantity negatif
	w = addToCart(t, r, "2", -4)
	assert.Equal(t, http.StatusOK, w.Code)

	var lines []models.CartItem
	assert.NoError(t, db.Order("menu_item_id").Find(&lines).Error)
	assert.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestAddToCartUnknownMenuItem(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCarts(t)
	r := setupCartRouter(db, 1)

	w := addToCart(t, r, "999", 1)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var cartCount int64
	db.Model(&models.Cart{}).Count(&cartCount)
	assert.Equal(t, int64(0), cartCount)
}

func TestGetCartComputesLiveTotal(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCarts(t)
	r := setupCartRouter(db, 1)

	assert.Equal(t, http.StatusOK, addToCart(t, r, "1", 2).Code) // 2 x 10.00
	assert.Equal(t, http.StatusOK, addToCart(t, r, "2", 1).Code) // 1 x 5.50

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.InDelta(t, 25.50, data["total_price"].(float64), 0.001)

	// Total mengikuti harga katalog terkini, bukan nilai tersimpan
	db.Model(&models.MenuItem{}).Where("id = ?", 1).Update("price", 12.00)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.InDelta(t, 29.50, data["total_price"].(float64), 0.001)
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCarts(t)
	r := setupCartRouter(db, 1)

	assert.Equal(t, http.StatusOK, addToCart(t, r, "1", 2).Code)

	var line models.CartItem
	assert.NoError(t, db.First(&line).Error)

	// Set quantity eksplisit
	body, _ := json.Marshal(map[string]int{"quantity": 7})
	req := httptest.NewRequest(http.MethodPatch, "/cart/items/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.NoError(t, db.First(&line, line.ID).Error)
	assert.Equal(t, 7, line.Quantity)

	// Hapus baris
	req = httptest.NewRequest(http.MethodDelete, "/cart/items/1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
