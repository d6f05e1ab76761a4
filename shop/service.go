package shop

import (
	"github.com/dentalshop/config"
	"gorm.io/gorm"
)

// Service implements the order lifecycle: cart materialization, status
// transitions and dashboard aggregation. Plain catalog CRUD stays in the
// handlers.
type Service struct {
	db    *gorm.DB
	cfg   config.ShopConfig
	carts CartStore
}

// NewService creates the shop service with the configured cart backend.
func NewService(db *gorm.DB, cfg config.ShopConfig) (*Service, error) {
	carts, err := NewCartStore(cfg.CartBackend, db)
	if err != nil {
		return nil, err
	}
	return &Service{db: db, cfg: cfg, carts: carts}, nil
}

// Carts exposes the session cart store.
func (s *Service) Carts() CartStore {
	return s.carts
}

// DeliveryFee returns the configured per-order delivery fee.
func (s *Service) DeliveryFee() int64 {
	return s.cfg.DeliveryFee
}
