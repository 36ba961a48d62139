package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/food-delivery-app/models"
)

type CheckoutService struct {
	DB *gorm.DB
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{DB: db}
}

// Checkout mengubah cart user menjadi order dalam satu transaksi:
//  1. cart tanpa item (atau tidak ada cart) -> ErrEmptyCart, tanpa write
//  2. total dihitung dari harga katalog saat ini dan dibekukan di order
//  3. setiap baris cart disalin ke OrderItem (harga + nama di-snapshot)
//  4. cart dihapus lewat guarded delete; RowsAffected 0 berarti checkout
//     paralel sudah memproses cart yang sama dan request ini kalah
//
// Gagal di tengah -> rollback, cart tetap utuh dan tidak ada order parsial.
func (s *CheckoutService) Checkout(userID uint) (*models.Order, error) {
	var out models.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "mysql" {
			// Serialisasi checkout per cart dengan row lock.
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var cart models.Cart
		err := q.Where("user_id = ?", userID).
			Preload("Items").
			Preload("Items.MenuItem").
			First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmptyCart
		}
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		order := models.Order{
			UserID:     userID,
			Reference:  uuid.NewString(),
			TotalPrice: CartTotal(&cart),
			Status:     models.OrderStatusConfirmed,
			CreatedAt:  time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range cart.Items {
			item := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				ItemName:   line.MenuItem.Name,
				Quantity:   line.Quantity,
				Price:      line.MenuItem.Price,
				CreatedAt:  order.CreatedAt,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}

		res := tx.Where("id = ?", cart.ID).Delete(&models.Cart{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrEmptyCart
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
