package repository

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// FileStateStore はスロットごとに <key>.json を1ファイル置くストア。
// ブラウザのlocalStorage相当：1プロファイル専用、調停なしのlast-write-wins。
type FileStateStore struct {
	dir string
}

// DI
func NewFileStateStore(dir string) (*FileStateStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStateStore{dir: dir}, nil
}

func (s *FileStateStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// 読み出し。スロット無しは正常（空デフォルト）。壊れたJSONはログして空デフォルト。
func (s *FileStateStore) load(key string, v any) bool {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	if err != nil {
		log.Printf("state store: read %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		log.Printf("state store: corrupt slot %s, falling back to default: %v", key, err)
		return false
	}
	return true
}

// 書き込みはミューテーションの都度（write-through、バッチなし）。
func (s *FileStateStore) save(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), b, 0o644)
}

func (s *FileStateStore) LoadCart() []model.CartItem {
	var items []model.CartItem
	if !s.load(repo.SlotCart, &items) || items == nil {
		return []model.CartItem{}
	}
	return items
}

func (s *FileStateStore) SaveCart(items []model.CartItem) error {
	return s.save(repo.SlotCart, items)
}

func (s *FileStateStore) LoadAddress() (model.ShippingAddress, bool) {
	var addr model.ShippingAddress
	ok := s.load(repo.SlotAddress, &addr)
	return addr, ok
}

func (s *FileStateStore) SaveAddress(addr model.ShippingAddress) error {
	return s.save(repo.SlotAddress, addr)
}

func (s *FileStateStore) LoadOrders() []model.Order {
	var orders []model.Order
	if !s.load(repo.SlotOrderHistory, &orders) || orders == nil {
		return []model.Order{}
	}
	return orders
}

// 注文履歴は読み直してから追記。作成後の注文は書き換えない。
func (s *FileStateStore) AppendOrder(o model.Order) error {
	orders := s.LoadOrders()
	orders = append(orders, o)
	return s.save(repo.SlotOrderHistory, orders)
}
