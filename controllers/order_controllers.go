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

type OrderController struct {
	DB       *gorm.DB
	Checkout *services.CheckoutService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Checkout: services.NewCheckoutService(db)}
}

// CheckoutCart -> POST /checkout
// Konversi atomik cart -> order; cart kosong ditolak tanpa write.
func (oc *OrderController) CheckoutCart(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	order, err := oc.Checkout.Checkout(userID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.ErrorLogger.Printf("Checkout failed for user %d: %v", userID, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order #%d confirmed for user %d (total=%s)",
		order.ID, userID, utils.FormatCurrency(order.TotalPrice))

	utils.RespondJSON(c, http.StatusCreated,
		fmt.Sprintf("Thank you! Your order #%d has been confirmed", order.ID),
		gin.H{
			"order_id":    order.ID,
			"reference":   order.Reference,
			"total_price": order.TotalPrice,
			"status":      order.Status,
		})
}

// GetOrderHistory -> semua order milik user, terbaru dulu
func (oc *OrderController) GetOrderHistory(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	var orders []models.Order
	if err := oc.DB.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order history", orders)
}

// GetOrderByID -> detail 1 order, hanya pemiliknya (atau admin)
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("order_id"))

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if order.UserID != userID && utils.CurrentRole(c) != models.RoleAdmin {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetAllOrders (admin) -> semua order beserta items
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// UpdateOrderStatus (admin) -> Confirmed => Delivered/Cancelled.
// Total dan items order tidak pernah berubah setelah checkout.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid status: %s", req.Status))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if order.Status != models.OrderStatusConfirmed {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("order already %s", order.Status))
		return
	}

	order.Status = req.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
