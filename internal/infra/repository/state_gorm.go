package repository

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// key→JSON のスロットテーブル。ファイルストアと同じ意味論をDBに置くだけ。
type StateSlot struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

type GormStateStore struct {
	db *gorm.DB
}

// DI
func NewGormStateStore(db *gorm.DB) (*GormStateStore, error) {
	if err := db.AutoMigrate(&StateSlot{}); err != nil {
		return nil, err
	}
	return &GormStateStore{db: db}, nil
}

func (s *GormStateStore) load(key string, v any) bool {
	var slot StateSlot
	err := s.db.Where("key = ?", key).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}
	if err != nil {
		log.Printf("state store: read %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(slot.Value), v); err != nil {
		log.Printf("state store: corrupt slot %s, falling back to default: %v", key, err)
		return false
	}
	return true
}

// スロット単位のupsert（last-write-wins）。
func (s *GormStateStore) save(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	slot := StateSlot{Key: key, Value: string(b)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
}

func (s *GormStateStore) LoadCart() []model.CartItem {
	var items []model.CartItem
	if !s.load(repo.SlotCart, &items) || items == nil {
		return []model.CartItem{}
	}
	return items
}

func (s *GormStateStore) SaveCart(items []model.CartItem) error {
	return s.save(repo.SlotCart, items)
}

func (s *GormStateStore) LoadAddress() (model.ShippingAddress, bool) {
	var addr model.ShippingAddress
	ok := s.load(repo.SlotAddress, &addr)
	return addr, ok
}

func (s *GormStateStore) SaveAddress(addr model.ShippingAddress) error {
	return s.save(repo.SlotAddress, addr)
}

func (s *GormStateStore) LoadOrders() []model.Order {
	var orders []model.Order
	if !s.load(repo.SlotOrderHistory, &orders) || orders == nil {
		return []model.Order{}
	}
	return orders
}

func (s *GormStateStore) AppendOrder(o model.Order) error {
	orders := s.LoadOrders()
	orders = append(orders, o)
	return s.save(repo.SlotOrderHistory, orders)
}
