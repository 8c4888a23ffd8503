package store

import (
	"context"
	"errors"
	"time"

	"github.com/jaskaran778/grind-fuel/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CartStore struct {
	DB *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{DB: db}
}

func (s *CartStore) GetByOwner(ctx context.Context, ownerID string) (*model.Cart, error) {
	var cart model.Cart
	if err := s.DB.WithContext(ctx).First(&cart, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (s *CartStore) Save(ctx context.Context, cart *model.Cart) error {
	return s.DB.WithContext(ctx).Save(cart).Error
}

// ClearByOwner empties the cart's product list. A missing cart row is
// not an error; there is simply nothing to clear.
func (s *CartStore) ClearByOwner(ctx context.Context, ownerID string) error {
	return s.DB.WithContext(ctx).Model(&model.Cart{}).
		Where("owner_id = ?", ownerID).
		Updates(map[string]interface{}{
			"products":   datatypes.JSON("[]"),
			"updated_at": time.Now(),
		}).Error
}

func (s *CartStore) DeleteByOwner(ctx context.Context, ownerID string) error {
	return s.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.Cart{}).Error
}
