package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/food-delivery-app/models"
)

type CartService struct {
	DB *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{DB: db}
}

// AddResult membedakan baris baru vs penambahan quantity,
// supaya handler bisa menampilkan pesan konfirmasi yang berbeda.
type AddResult struct {
	Item    models.CartItem
	Created bool
}

// AddItem menambahkan menu item ke cart milik user.
// Quantity tidak valid (< 1) dipaksa jadi 1. Kalau item sudah ada di cart,
// quantity lama ditambah, tidak ditimpa. Tanpa batas atas quantity.
func (s *CartService) AddItem(userID, menuItemID uint, quantity int) (*AddResult, error) {
	if quantity < 1 {
		quantity = 1
	}

	var menuItem models.MenuItem
	if err := s.DB.First(&menuItem, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	var out AddResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := getOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		var line models.CartItem
		err = tx.Where("cart_id = ? AND menu_item_id = ?", cart.ID, menuItem.ID).First(&line).Error
		switch {
		case err == nil:
			line.Quantity += quantity
			if err := tx.Save(&line).Error; err != nil {
				return err
			}
			out = AddResult{Item: line, Created: false}
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = models.CartItem{
				CartID:     cart.ID,
				MenuItemID: menuItem.ID,
				Quantity:   quantity,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			out = AddResult{Item: line, Created: true}
		default:
			return err
		}

		out.Item.MenuItem = menuItem
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCart mengembalikan cart beserta total harga live dari katalog.
// User tanpa cart mendapat cart kosong, bukan error.
func (s *CartService) GetCart(userID uint) (*models.Cart, float64, error) {
	var cart models.Cart
	err := s.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Cart{UserID: userID}, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}

	return &cart, CartTotal(&cart), nil
}

// CartTotal menjumlahkan harga katalog saat ini x quantity.
// Total tidak pernah disimpan, selalu dihitung saat dibaca.
func CartTotal(cart *models.Cart) float64 {
	var total float64
	for _, it := range cart.Items {
		total += it.Subtotal()
	}
	return total
}

// UpdateQuantity mengganti quantity satu baris cart; <= 0 berarti hapus.
func (s *CartService) UpdateQuantity(userID, itemID uint, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(userID, itemID)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := cartItemForUser(tx, userID, itemID)
		if err != nil {
			return err
		}
		line.Quantity = quantity
		return tx.Save(line).Error
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := cartItemForUser(tx, userID, itemID)
		if err != nil {
			return err
		}
		return tx.Delete(line).Error
	})
}

func getOrCreateCart(tx *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := tx.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{UserID: userID}
	if err := tx.Create(&cart).Error; err != nil {
		// Request paralel bisa kalah race pada unique index user_id,
		// ambil cart yang sudah terlanjur dibuat.
		var existing models.Cart
		if lookupErr := tx.Where("user_id = ?", userID).First(&existing).Error; lookupErr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &cart, nil
}

func cartItemForUser(tx *gorm.DB, userID, itemID uint) (*models.CartItem, error) {
	var line models.CartItem
	err := tx.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}
