package service

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"shopmart/internal/errors"
	"shopmart/internal/model"
	"shopmart/internal/repository"
)

// CartService applies quantity changes to a user's cart. Every mutation is
// a read-modify-write of the full cart document, executed inside a
// transaction with the user row locked so concurrent updates cannot lose
// increments.
type CartService interface {
	AddItem(ctx context.Context, userID uint, slot int) error
	RemoveItem(ctx context.Context, userID uint, slot int) error
	GetCart(ctx context.Context, userID uint) (model.CartData, error)
}

type cartService struct {
	users repository.UserRepository
}

// NewCartService creates a cart service over the user repository.
func NewCartService(users repository.UserRepository) CartService {
	return &cartService{users: users}
}

// AddItem increments a slot by one. A slot the cart has never seen counts
// as zero. There is no upper bound.
func (s *cartService) AddItem(ctx context.Context, userID uint, slot int) error {
	if slot < 0 || slot >= model.CartSlots {
		return errors.ErrInvalidSlot
	}
	return s.users.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		user, err := repo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrUserNotFound
			}
			return fmt.Errorf("load cart: %w", err)
		}
		cart := user.CartData
		if cart == nil {
			cart = model.CartData{}
		}
		cart[strconv.Itoa(slot)]++
		return repo.UpdateCart(ctx, userID, cart)
	})
}

// RemoveItem decrements a slot by one, but never below zero. Removing from
// an empty slot still persists the (unchanged) cart, as adding does.
func (s *cartService) RemoveItem(ctx context.Context, userID uint, slot int) error {
	if slot < 0 || slot >= model.CartSlots {
		return errors.ErrInvalidSlot
	}
	return s.users.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		user, err := repo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrUserNotFound
			}
			return fmt.Errorf("load cart: %w", err)
		}
		cart := user.CartData
		if cart == nil {
			cart = model.CartData{}
		}
		key := strconv.Itoa(slot)
		if cart[key] > 0 {
			cart[key]--
		}
		return repo.UpdateCart(ctx, userID, cart)
	})
}

// GetCart returns the stored mapping verbatim.
func (s *cartService) GetCart(ctx context.Context, userID uint) (model.CartData, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return user.CartData, nil
}
