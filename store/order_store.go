package store

import (
	"context"
	"errors"
	"time"

	"github.com/jaskaran778/grind-fuel/model"

	"gorm.io/gorm"
)

type OrderStore struct {
	DB *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{DB: db}
}

func (s *OrderStore) Create(ctx context.Context, order *model.Order) error {
	return s.DB.WithContext(ctx).Create(order).Error
}

func (s *OrderStore) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := s.DB.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus overwrites the status field. Reapplying the same status
// is a no-op by construction, which keeps webhook redelivery safe.
func (s *OrderStore) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return s.DB.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (s *OrderStore) ListAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.DB.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) DeleteByOwner(ctx context.Context, userID string) (int64, error) {
	res := s.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Order{})
	return res.RowsAffected, res.Error
}
