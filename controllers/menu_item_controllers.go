package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-delivery-app/models"
	"github.com/yeremiapane/food-delivery-app/utils"
)

type MenuItemController struct {
	DB *gorm.DB
}

func NewMenuItemController(db *gorm.DB) *MenuItemController {
	return &MenuItemController{DB: db}
}

type menuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	IsVeg       bool    `json:"is_veg"`
	ImageURL    string  `json:"image_url"`
}

// CreateMenuItem (admin) -> tambah menu di bawah satu restoran
func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	restaurantID, _ := strconv.Atoi(c.Param("restaurant_id"))

	var restaurant models.Restaurant
	if err := mc.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	var req menuItemRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menuItem := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		IsVeg:        req.IsVeg,
		ImageURL:     req.ImageURL,
	}

	if err := mc.DB.Create(&menuItem).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", menuItem)
}

// GetMenuItems -> menu satu restoran (halaman customer-menu)
func (mc *MenuItemController) GetMenuItems(c *gin.Context) {
	restaurantID, _ := strconv.Atoi(c.Param("restaurant_id"))

	var restaurant models.Restaurant
	if err := mc.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	var menuItems []models.MenuItem
	if err := mc.DB.Where("restaurant_id = ?", restaurant.ID).Find(&menuItems).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menu items", gin.H{
		"restaurant": restaurant,
		"menu_items": menuItems,
	})
}

// GetMenuItemByID
func (mc *MenuItemController) GetMenuItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("menu_item_id"))

	var menuItem models.MenuItem
	if err := mc.DB.First(&menuItem, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item detail", menuItem)
}

// UpdateMenuItem (admin) -> overwrite seluruh field mutable
func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("menu_item_id"))

	var menuItem models.MenuItem
	if err := mc.DB.First(&menuItem, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	var req menuItemRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menuItem.Name = req.Name
	menuItem.Description = req.Description
	menuItem.Price = req.Price
	menuItem.IsVeg = req.IsVeg
	menuItem.ImageURL = req.ImageURL

	if err := mc.DB.Save(&menuItem).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", menuItem)
}

// DeleteMenuItem (admin)
func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("menu_item_id"))

	var menuItem models.MenuItem
	if err := mc.DB.First(&menuItem, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	if err := mc.DB.Delete(&menuItem).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{
		"menu_item_id":  menuItem.ID,
		"restaurant_id": menuItem.RestaurantID,
	})
}
