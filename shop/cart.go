package shop

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dentalshop/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartLine is one entry of a shopping session's cart.
type CartLine struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CartStore holds session-scoped carts. The backend is a deployment
// choice: in-process memory or the cart_items table.
type CartStore interface {
	Get(sessionID string) ([]CartLine, error)
	Add(sessionID string, productID uint, quantity int) error
	Update(sessionID string, productID uint, quantity int) error
	Remove(sessionID string, productID uint) error
	Clear(sessionID string) error
}

// NewCartStore returns the cart store for the configured backend.
func NewCartStore(backend string, db *gorm.DB) (CartStore, error) {
	switch backend {
	case "memory":
		return NewMemoryCartStore(), nil
	case "db":
		return &DBCartStore{db: db}, nil
	}
	return nil, fmt.Errorf("unknown cart backend %q", backend)
}

// MemoryCartStore keeps carts in process memory. Carts are lost on
// restart, which matches the original client-local behavior.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]map[uint]int
}

// NewMemoryCartStore creates an empty in-memory cart store.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]map[uint]int)}
}

func (s *MemoryCartStore) Get(sessionID string) ([]CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := s.carts[sessionID]
	lines := make([]CartLine, 0, len(cart))
	for productID, qty := range cart {
		lines = append(lines, CartLine{ProductID: productID, Quantity: qty})
	}
	// Map iteration order is random; keep the response stable.
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	return lines, nil
}

func (s *MemoryCartStore) Add(sessionID string, productID uint, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		cart = make(map[uint]int)
		s.carts[sessionID] = cart
	}
	cart[productID] += quantity
	return nil
}

func (s *MemoryCartStore) Update(sessionID string, productID uint, quantity int) error {
	if quantity <= 0 {
		return s.Remove(sessionID, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok || cart[productID] == 0 {
		return fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	cart[productID] = quantity
	return nil
}

func (s *MemoryCartStore) Remove(sessionID string, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[sessionID]; ok {
		delete(cart, productID)
	}
	return nil
}

func (s *MemoryCartStore) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

// DBCartStore keeps carts in the cart_items table so sessions survive
// restarts and can be shared across instances.
type DBCartStore struct {
	db *gorm.DB
}

func (s *DBCartStore) Get(sessionID string) ([]CartLine, error) {
	var items []models.CartItem
	err := s.db.
		Where("session_id = ?", sessionID).
		Order("product_id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return lines, nil
}

func (s *DBCartStore) Add(sessionID string, productID uint, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("cart_items.quantity + ?", quantity)}),
	}).Create(&models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}).Error
}

func (s *DBCartStore) Update(sessionID string, productID uint, quantity int) error {
	if quantity <= 0 {
		return s.Remove(sessionID, productID)
	}

	result := s.db.Model(&models.CartItem{}).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	return nil
}

func (s *DBCartStore) Remove(sessionID string, productID uint) error {
	return s.db.
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Delete(&models.CartItem{}).Error
}

func (s *DBCartStore) Clear(sessionID string) error {
	return s.db.
		Where("session_id = ?", sessionID).
		Delete(&models.CartItem{}).Error
}
