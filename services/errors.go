package services

import "errors"

var (
	// ErrEmptyCart dikembalikan checkout jika user tidak punya cart,
	// cart kosong, atau cart sudah diproses checkout lain.
	ErrEmptyCart = errors.New("your cart is empty")

	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)
