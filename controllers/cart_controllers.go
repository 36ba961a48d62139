package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-delivery-app/models"
	"github.com/yeremiapane/food-delivery-app/services"
	"github.com/yeremiapane/food-delivery-app/utils"
)

type CartController struct {
	DB      *gorm.DB
	Service *services.CartService
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db, Service: services.NewCartService(db)}
}

// AddToCart -> POST /cart/items/:menu_item_id
// Quantity opsional dari form/JSON, input tidak valid dianggap 1.
func (cc *CartController) AddToCart(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	menuItemID, _ := strconv.Atoi(c.Param("menu_item_id"))

	var req struct {
		Quantity int `json:"quantity" form:"quantity"`
	}
	// Body kosong atau quantity tidak valid jatuh ke default 1 di service.
	_ = c.ShouldBind(&req)

	result, err := cc.Service.AddItem(userID, uint(menuItemID), req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	message := fmt.Sprintf("%s added to your cart", result.Item.MenuItem.Name)
	if !result.Created {
		message = fmt.Sprintf("Updated %s quantity in your cart", result.Item.MenuItem.Name)
	}

	utils.RespondJSON(c, http.StatusOK, message, result.Item)
}

// GetCart -> isi cart + total live dari harga katalog saat ini
func (cc *CartController) GetCart(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	cart, total, err := cc.Service.GetCart(userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}

	utils.RespondJSON(c, http.StatusOK, "Cart contents", gin.H{
		"items":           items,
		"total_price":     total,
		"total_formatted": utils.FormatCurrency(total),
	})
}

// UpdateCartItem -> PATCH /cart/items/:item_id  (quantity <= 0 menghapus baris)
func (cc *CartController) UpdateCartItem(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	itemID, _ := strconv.Atoi(c.Param("item_id"))

	var req struct {
		Quantity int `json:"quantity" form:"quantity" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Service.UpdateQuantity(userID, uint(itemID), req.Quantity); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart updated", gin.H{"item_id": itemID})
}

// RemoveCartItem -> DELETE /cart/items/:item_id
func (cc *CartController) RemoveCartItem(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	itemID, _ := strconv.Atoi(c.Param("item_id"))

	if err := cc.Service.RemoveItem(userID, uint(itemID)); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", gin.H{"item_id": itemID})
}
